package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/extraction"
)

// Processor chains both stages for one document.
type Processor struct {
	Decode *DecodeStage
	Parse  *ParseStage
	Logger *slog.Logger
}

func NewProcessor(decodeStage *DecodeStage, parseStage *ParseStage, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Decode: decodeStage, Parse: parseStage, Logger: logger}
}

// Submit records a QUEUED job for the document and returns its ID. The
// caller decides whether to run it inline or hand it to the worker queue.
func (p *Processor) Submit(ctx context.Context, documentID uuid.UUID) (uuid.UUID, error) {
	return p.Decode.CreateJob(ctx, documentID)
}

// Process decodes and parses one submitted job, returning the stored result
// row and the in-memory engine result.
func (p *Processor) Process(ctx context.Context, documentID, jobID uuid.UUID) (*ent.ParseResult, *extraction.Result, error) {
	decoded, err := p.Decode.Run(ctx, documentID, jobID)
	if err != nil {
		p.Logger.WarnContext(ctx, "processor.decode.failed", "document_id", documentID, "job_id", jobID, "error", err)
		return nil, nil, err
	}

	row, res, err := p.Parse.Run(ctx, jobID, decoded.Document)
	if err != nil {
		p.Logger.WarnContext(ctx, "processor.parse.failed", "job_id", jobID, "error", err)
		return nil, res, err
	}
	return row, res, nil
}
