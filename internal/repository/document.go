package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent"
	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent/document"
)

// DocumentRepository persists ingested statement files.
type DocumentRepository interface {
	// Upsert registers a file, returning the existing row when the content
	// hash was seen before.
	Upsert(ctx context.Context, sourcePath, filename, fileExt string, fileSize int, contentHash []byte) (*ent.Document, bool, error)
	Get(ctx context.Context, id uuid.UUID) (*ent.Document, error)
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) Upsert(ctx context.Context, sourcePath, filename, fileExt string, fileSize int, contentHash []byte) (*ent.Document, bool, error) {
	existing, err := r.ent.Document.
		Query().
		Where(document.ContentHash(contentHash)).
		Only(ctx)
	if err == nil {
		r.log.Info("document.dedup_hit", "document_id", existing.ID, "filename", filename)
		return existing, true, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, err
	}

	doc, err := r.ent.Document.
		Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(fileExt).
		SetFileSize(fileSize).
		SetContentHash(contentHash).
		Save(ctx)
	if err != nil {
		r.log.Error("document.create_failed", "filename", filename, "err", err)
		return nil, false, err
	}
	r.log.Info("document.created", "document_id", doc.ID, "filename", filename)
	return doc, false, nil
}

func (r *documentRepo) Get(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return r.ent.Document.Get(ctx, id)
}
