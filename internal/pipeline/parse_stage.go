package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/extraction"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/model"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/repository"
)

// ParseStage runs the extraction engine over decoded runs and persists the
// schema-validated result.
type ParseStage struct {
	JobsRepo    repository.ParseJobRepository
	ResultsRepo repository.ParseResultRepository
	Engine      *extraction.Engine
	Logger      *slog.Logger
}

func NewParseStage(jobs repository.ParseJobRepository, results repository.ParseResultRepository, engine *extraction.Engine, logger *slog.Logger) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{JobsRepo: jobs, ResultsRepo: results, Engine: engine, Logger: logger}
}

// Run executes the engine for a decoded job. Engine input errors mark the job
// FAILED; everything else marks it PARSED with a stored result row.
func (s *ParseStage) Run(ctx context.Context, jobID uuid.UUID, doc model.Document) (*ent.ParseResult, *extraction.Result, error) {
	res, err := s.Engine.Run(ctx, doc)
	if err != nil {
		_ = s.JobsRepo.MarkFailed(ctx, jobID, err.Error())
		return nil, res, err
	}

	fields, err := json.Marshal(res.Fields)
	if err != nil {
		return nil, res, fmt.Errorf("marshal fields: %w", err)
	}
	transactions, err := json.Marshal(res.Transactions)
	if err != nil {
		return nil, res, fmt.Errorf("marshal transactions: %w", err)
	}
	envelope, err := json.Marshal(map[string]json.RawMessage{
		"fields":       orEmptyArray(fields),
		"transactions": orEmptyArray(transactions),
	})
	if err != nil {
		return nil, res, fmt.Errorf("marshal envelope: %w", err)
	}
	if err := validateAgainst(resultSchema(), envelope); err != nil {
		_ = s.JobsRepo.MarkFailed(ctx, jobID, err.Error())
		return nil, res, err
	}

	row, err := s.ResultsRepo.Save(ctx, jobID, res.Issuer, res.IssuerConfidence, res.OverallConfidence,
		orEmptyArray(fields), orEmptyArray(transactions))
	if err != nil {
		return nil, res, err
	}
	if err := s.JobsRepo.MarkParsed(ctx, jobID); err != nil {
		return row, res, err
	}

	s.Logger.InfoContext(ctx, "pipeline.parse.ok",
		"job_id", jobID,
		"issuer", res.Issuer,
		"fields", len(res.Fields),
		"transactions", len(res.Transactions),
		"overall", res.OverallConfidence)
	return row, res, nil
}

// orEmptyArray maps a marshalled nil slice ("null") to "[]" so the stored
// JSON is always an array.
func orEmptyArray(b json.RawMessage) json.RawMessage {
	if string(b) == "null" {
		return json.RawMessage("[]")
	}
	return b
}
