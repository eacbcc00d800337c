package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent"
)

// OpenSQLite opens (or creates) a local SQLite store and migrates the schema.
// The batch CLI uses this so it can run without a Postgres instance.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*ent.Client, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		logger.Error("repository.sqlite.open_failed", "path", path, "error", err)
		return nil, err
	}
	// modernc sqlite is single-writer; avoid SQLITE_BUSY under concurrency
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		logger.Error("repository.sqlite.migrate_failed", "path", path, "error", err)
		return nil, err
	}
	logger.Info("repository.sqlite.open.ok", "path", path)
	return client, nil
}
