package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	statementspb "github.com/Shubh2310-developer/cc-statement-parser/gen/proto/statements/v1"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/async"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/classify"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/common"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/decode"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/export"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/extraction"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/ingest"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/pipeline"
	repo "github.com/Shubh2310-developer/cc-statement-parser/internal/repository"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/score"
	svc "github.com/Shubh2310-developer/cc-statement-parser/internal/server"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/template"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	registry, err := buildRegistry(cfg.Templates, logger)
	if err != nil {
		logger.Error("failed to build template registry", "error", err)
		os.Exit(1)
	}

	engine := extraction.NewEngine(
		classify.New(classify.BuiltinSignatures()),
		registry,
		score.NewScorer(score.DefaultConfig()),
		logger,
	)
	decoder := decode.NewPDFDecoder(cfg.Decoder, nil, logger)

	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)
	resultsRepo := repo.NewParseResultRepository(entc, logger)

	processor := pipeline.NewProcessor(
		pipeline.NewDecodeStage(docsRepo, jobsRepo, decoder, logger),
		pipeline.NewParseStage(jobsRepo, resultsRepo, engine, logger),
		logger,
	)
	ingestor := ingest.NewFSIngestor(docsRepo, logger)
	exporter := export.NewService(resultsRepo, logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithJobTimeout(3*time.Minute),
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	statementspb.RegisterStatementsServiceServer(grpcServer,
		svc.NewStatementsService(ingestor, processor, queue, jobsRepo, resultsRepo, exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("statementd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(drainCtx)
}

// buildRegistry compiles the shipped template sets, applying the YAML
// override file when TEMPLATES_FILE is set.
func buildRegistry(cfg common.TemplateConfig, logger *slog.Logger) (*template.Registry, error) {
	sets := template.BuiltinSets()
	if cfg.OverridePath != "" {
		overrides, err := template.LoadFile(cfg.OverridePath)
		if err != nil {
			return nil, err
		}
		sets = template.MergeOverrides(sets, overrides)
		logger.Info("template overrides applied", "path", cfg.OverridePath, "sets", len(overrides))
	}
	return template.NewRegistry(sets...)
}
