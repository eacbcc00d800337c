// Package pipeline coordinates the two-stage parse flow: decode the PDF into
// positioned text runs, then run the extraction engine and persist validated
// output.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Shubh2310-developer/cc-statement-parser/constants"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/common"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/decode"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/repository"
)

// DecodeStage starts a parse job for a document and recovers its text runs.
type DecodeStage struct {
	DocsRepo repository.DocumentRepository
	JobsRepo repository.ParseJobRepository
	Decoder  decode.Decoder
	Logger   *slog.Logger
}

func NewDecodeStage(docs repository.DocumentRepository, jobs repository.ParseJobRepository, dec decode.Decoder, logger *slog.Logger) *DecodeStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &DecodeStage{DocsRepo: docs, JobsRepo: jobs, Decoder: dec, Logger: logger}
}

// CreateJob records a QUEUED parse job for the document. Decoding happens
// later, in Run, possibly on another goroutine.
func (s *DecodeStage) CreateJob(ctx context.Context, documentID uuid.UUID) (uuid.UUID, error) {
	doc, err := s.DocsRepo.Get(ctx, documentID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get document: %w", err)
	}

	format := constants.MapExtToFormat(doc.FileExt)
	if format == "" {
		return uuid.Nil, common.NewInputError(common.ReasonBadFormat,
			fmt.Errorf("unsupported format: %s", doc.FileExt))
	}

	job, err := s.JobsRepo.Create(ctx, doc.ID, format)
	if err != nil {
		return uuid.Nil, err
	}
	return job.ID, nil
}

// Run moves the job to RUNNING, decodes the document, and records the decode
// outcome. The decoded runs are returned in memory for the parse stage; only
// their provenance is persisted.
func (s *DecodeStage) Run(ctx context.Context, documentID, jobID uuid.UUID) (decode.Result, error) {
	doc, err := s.DocsRepo.Get(ctx, documentID)
	if err != nil {
		return decode.Result{}, fmt.Errorf("get document: %w", err)
	}

	if err := s.JobsRepo.MarkRunning(ctx, jobID); err != nil {
		return decode.Result{}, err
	}

	res, err := s.Decoder.Decode(ctx, doc.SourcePath)
	if err != nil {
		_ = s.JobsRepo.MarkFailed(ctx, jobID, err.Error())
		return decode.Result{}, err
	}

	if err := s.JobsRepo.MarkDecoded(ctx, jobID, res.Method, res.Pages, res.OCRConfidence); err != nil {
		return res, err
	}
	s.Logger.InfoContext(ctx, "pipeline.decode.ok",
		"job_id", jobID,
		"document_id", documentID,
		"method", res.Method,
		"pages", res.Pages,
		"runs", len(res.Document.Runs))
	return res, nil
}
