// Package ingest registers statement files from the local filesystem,
// deduplicating by content hash.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Shubh2310-developer/cc-statement-parser/constants"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/repository"
)

// Result summarizes one ingested file.
type Result struct {
	DocumentID   string
	SourcePath   string
	FileExt      string
	HashHex      string
	Deduplicated bool
	UploadedAt   time.Time
}

// FSIngestor reads from the local filesystem.
type FSIngestor struct {
	DocsRepo repository.DocumentRepository
	Logger   *slog.Logger
}

func NewFSIngestor(docs repository.DocumentRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{DocsRepo: docs, Logger: logger}
}

// IngestPath hashes and registers one file. Re-ingesting the same content
// returns the existing document.
func (i *FSIngestor) IngestPath(ctx context.Context, path string) (Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Result{}, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if constants.MapExtToFormat(ext) == "" {
		return Result{}, fmt.Errorf("unsupported extension %q", ext)
	}

	f, err := os.Open(abs)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return Result{}, err
	}
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return Result{}, err
	}
	sum := h.Sum(nil)

	row, dedup, err := i.DocsRepo.Upsert(ctx, abs, filepath.Base(abs), ext, int(st.Size()), sum)
	if err != nil {
		return Result{}, err
	}
	i.Logger.InfoContext(ctx, "ingest.file.ok",
		"document_id", row.ID, "path", abs, "dedup", dedup)

	return Result{
		DocumentID:   row.ID.String(),
		SourcePath:   row.SourcePath,
		FileExt:      row.FileExt,
		HashHex:      hex.EncodeToString(sum),
		Deduplicated: dedup,
		UploadedAt:   row.UploadedAt,
	}, nil
}
