package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Shubh2310-developer/cc-statement-parser/constants"
	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent"
)

// ParseJobRepository tracks the lifecycle of one parse attempt. Jobs are
// created QUEUED at submission and move to RUNNING when a worker picks
// them up.
type ParseJobRepository interface {
	Create(ctx context.Context, documentID uuid.UUID, format string) (*ent.ParseJob, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID) error
	MarkDecoded(ctx context.Context, jobID uuid.UUID, method string, pages int, ocrConfidence float64) error
	MarkParsed(ctx context.Context, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, message string) error
	Get(ctx context.Context, jobID uuid.UUID) (*ent.ParseJob, error)
}

type parseJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewParseJobRepository(entc *ent.Client, log *slog.Logger) ParseJobRepository {
	return &parseJobRepo{ent: entc, log: log}
}

func (r *parseJobRepo) Create(ctx context.Context, documentID uuid.UUID, format string) (*ent.ParseJob, error) {
	job, err := r.ent.ParseJob.
		Create().
		SetDocumentID(documentID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job.create_failed", "document_id", documentID, "err", err)
		return nil, err
	}
	r.log.Info("parse_job.queued", "job_id", job.ID, "document_id", documentID)
	return job, nil
}

func (r *parseJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job.mark_running_failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job.running", "job_id", jobID)
	return nil
}

func (r *parseJobRepo) MarkDecoded(ctx context.Context, jobID uuid.UUID, method string, pages int, ocrConfidence float64) error {
	upd := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusDecoded)).
		SetDecodeMethod(method).
		SetPages(pages)
	if ocrConfidence > 0 {
		upd.SetOcrConfidence(ocrConfidence)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("parse_job.mark_decoded_failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *parseJobRepo) MarkParsed(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusParsed)).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job.mark_parsed_failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job.finished", "job_id", jobID, "status", constants.JobStatusParsed)
	return nil
}

func (r *parseJobRepo) MarkFailed(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetFinishedAt(time.Now()).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job.mark_failed_failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("parse_job.finished", "job_id", jobID, "status", constants.JobStatusFailed, "error", message)
	return nil
}

func (r *parseJobRepo) Get(ctx context.Context, jobID uuid.UUID) (*ent.ParseJob, error) {
	return r.ent.ParseJob.Get(ctx, jobID)
}
