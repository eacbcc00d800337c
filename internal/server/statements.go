// Package server implements the StatementsService gRPC surface.
package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Shubh2310-developer/cc-statement-parser/constants"
	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent"
	statementspb "github.com/Shubh2310-developer/cc-statement-parser/gen/proto/statements/v1"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/async"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/common"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/export"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/ingest"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/pipeline"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/repository"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/utils"
)

const defaultListLimit = 50

type StatementsService struct {
	statementspb.UnimplementedStatementsServiceServer
	ingestor    *ingest.FSIngestor
	processor   *pipeline.Processor
	queue       async.Queue
	jobsRepo    repository.ParseJobRepository
	resultsRepo repository.ParseResultRepository
	exporter    *export.Service
	logger      *slog.Logger
}

func NewStatementsService(
	ingestor *ingest.FSIngestor,
	processor *pipeline.Processor,
	queue async.Queue,
	jobs repository.ParseJobRepository,
	results repository.ParseResultRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *StatementsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatementsService{
		ingestor:    ingestor,
		processor:   processor,
		queue:       queue,
		jobsRepo:    jobs,
		resultsRepo: results,
		exporter:    exporter,
		logger:      logger,
	}
}

func (s *StatementsService) ParseStatement(ctx context.Context, req *statementspb.ParseStatementRequest) (*statementspb.ParseStatementResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	ing, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		s.logger.Error("server.ingest.failed", "path", path, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	documentID, err := uuid.Parse(ing.DocumentID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "document id: %v", err)
	}

	jobID, err := s.processor.Submit(ctx, documentID)
	if err != nil {
		if common.IsInputError(err) {
			return nil, status.Errorf(codes.InvalidArgument, "submit: %v", err)
		}
		s.logger.Error("server.submit.failed", "document_id", documentID, "error", err)
		return nil, status.Errorf(codes.Internal, "submit: %v", err)
	}

	if req.GetAsync() && s.queue != nil {
		job := async.Job{DocumentID: documentID, JobID: jobID, SubmittedAt: time.Now()}
		if err := s.queue.Enqueue(ctx, job); err != nil {
			return nil, status.Errorf(codes.Unavailable, "enqueue: %v", err)
		}
		return &statementspb.ParseStatementResponse{
			DocumentId:   ing.DocumentID,
			JobId:        jobID.String(),
			Deduplicated: ing.Deduplicated,
			Status:       string(constants.JobStatusQueued),
		}, nil
	}

	row, _, err := s.processor.Process(ctx, documentID, jobID)
	if err != nil {
		if common.IsInputError(err) {
			// the job row records the failure; surface it as a bad document
			return nil, status.Errorf(codes.InvalidArgument, "parse: %v", err)
		}
		s.logger.Error("server.parse.failed", "document_id", documentID, "error", err)
		return nil, status.Errorf(codes.Internal, "parse: %v", err)
	}

	pbResult, err := utils.ToPBResult(row)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode result: %v", err)
	}
	return &statementspb.ParseStatementResponse{
		DocumentId:   ing.DocumentID,
		JobId:        jobID.String(),
		Deduplicated: ing.Deduplicated,
		Result:       pbResult,
		Status:       string(constants.JobStatusParsed),
	}, nil
}

func (s *StatementsService) GetJob(ctx context.Context, req *statementspb.GetJobRequest) (*statementspb.GetJobResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.jobsRepo.Get(ctx, jobID)
	if err != nil {
		return nil, notFoundOrInternal(err, "job")
	}
	return &statementspb.GetJobResponse{Job: utils.ToPBJob(job)}, nil
}

func (s *StatementsService) GetResult(ctx context.Context, req *statementspb.GetResultRequest) (*statementspb.GetResultResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	row, err := s.resultsRepo.GetByJob(ctx, jobID)
	if err != nil {
		return nil, notFoundOrInternal(err, "result")
	}
	pb, err := utils.ToPBResult(row)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode result: %v", err)
	}
	return &statementspb.GetResultResponse{Result: pb}, nil
}

func (s *StatementsService) ListResults(ctx context.Context, req *statementspb.ListResultsRequest) (*statementspb.ListResultsResponse, error) {
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultListLimit
	}

	var err error
	var rows []*ent.ParseResult
	if issuer := strings.TrimSpace(req.GetIssuer()); issuer != "" {
		rows, err = s.resultsRepo.ListByIssuer(ctx, issuer, limit)
	} else {
		rows, err = s.resultsRepo.List(ctx, limit)
	}
	if err != nil {
		s.logger.Error("server.list_results.failed", "error", err)
		return nil, status.Errorf(codes.Internal, "list results: %v", err)
	}

	out := make([]*statementspb.ParseResult, 0, len(rows))
	for _, row := range rows {
		pb, err := utils.ToPBResult(row)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "encode result: %v", err)
		}
		out = append(out, pb)
	}
	return &statementspb.ListResultsResponse{Results: out}, nil
}

func (s *StatementsService) ExportTransactions(ctx context.Context, req *statementspb.ExportTransactionsRequest) (*statementspb.ExportTransactionsResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	xlsx, err := s.exporter.TransactionsXLSX(ctx, jobID)
	if err != nil {
		s.logger.Error("server.export.failed", "job_id", jobID, "error", err)
		return nil, notFoundOrInternal(err, "result")
	}
	return &statementspb.ExportTransactionsResponse{Xlsx: xlsx}, nil
}

func notFoundOrInternal(err error, what string) error {
	if ent.IsNotFound(err) {
		return status.Errorf(codes.NotFound, "%s not found", what)
	}
	return status.Errorf(codes.Internal, "load %s: %v", what, err)
}

func parseJobID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "job_id is required")
	}
	jobID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	return jobID, nil
}
