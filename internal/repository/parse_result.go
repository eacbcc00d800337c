package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent"
	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent/parseresult"
)

// ParseResultRepository persists and queries validated parse output.
type ParseResultRepository interface {
	Save(ctx context.Context, jobID uuid.UUID, issuer string, issuerConf, overallConf float64, fields, transactions json.RawMessage) (*ent.ParseResult, error)
	GetByJob(ctx context.Context, jobID uuid.UUID) (*ent.ParseResult, error)
	ListByIssuer(ctx context.Context, issuer string, limit int) ([]*ent.ParseResult, error)
	List(ctx context.Context, limit int) ([]*ent.ParseResult, error)
}

type parseResultRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewParseResultRepository(entc *ent.Client, log *slog.Logger) ParseResultRepository {
	return &parseResultRepo{ent: entc, log: log}
}

func (r *parseResultRepo) Save(ctx context.Context, jobID uuid.UUID, issuer string, issuerConf, overallConf float64, fields, transactions json.RawMessage) (*ent.ParseResult, error) {
	res, err := r.ent.ParseResult.
		Create().
		SetJobID(jobID).
		SetIssuer(issuer).
		SetIssuerConfidence(issuerConf).
		SetOverallConfidence(overallConf).
		SetFields(fields).
		SetTransactions(transactions).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_result.save_failed", "job_id", jobID, "err", err)
		return nil, err
	}
	r.log.Info("parse_result.saved", "result_id", res.ID, "job_id", jobID, "issuer", issuer)
	return res, nil
}

func (r *parseResultRepo) GetByJob(ctx context.Context, jobID uuid.UUID) (*ent.ParseResult, error) {
	return r.ent.ParseResult.
		Query().
		Where(parseresult.JobID(jobID)).
		Only(ctx)
}

func (r *parseResultRepo) ListByIssuer(ctx context.Context, issuer string, limit int) ([]*ent.ParseResult, error) {
	q := r.ent.ParseResult.
		Query().
		Where(parseresult.Issuer(issuer)).
		Order(ent.Desc(parseresult.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.All(ctx)
}

func (r *parseResultRepo) List(ctx context.Context, limit int) ([]*ent.ParseResult, error) {
	q := r.ent.ParseResult.
		Query().
		Order(ent.Desc(parseresult.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.All(ctx)
}
