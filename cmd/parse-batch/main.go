// parse-batch parses statement PDFs from the command line against a local
// SQLite store, without needing the gRPC daemon or Postgres.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/Shubh2310-developer/cc-statement-parser/internal/classify"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/common"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/decode"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/entity"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/export"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/extraction"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/ingest"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/pipeline"
	repo "github.com/Shubh2310-developer/cc-statement-parser/internal/repository"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/score"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/template"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/utils"
)

func main() {
	dbPath := flag.String("db", "statements.db", "path to the SQLite store")
	xlsxDir := flag.String("xlsx", "", "directory to write per-statement transaction workbooks (optional)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: parse-batch [-db file] [-xlsx dir] statement.pdf...")
		os.Exit(2)
	}

	// .env is optional; flags and the environment win.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	ctx := context.Background()

	entc, err := repo.OpenSQLite(ctx, *dbPath, logger)
	if err != nil {
		logger.Error("open store failed", "error", err)
		os.Exit(1)
	}
	defer entc.Close()

	sets := template.BuiltinSets()
	if cfg.Templates.OverridePath != "" {
		overrides, err := template.LoadFile(cfg.Templates.OverridePath)
		if err != nil {
			logger.Error("load template overrides failed", "error", err)
			os.Exit(1)
		}
		sets = template.MergeOverrides(sets, overrides)
	}
	registry, err := template.NewRegistry(sets...)
	if err != nil {
		logger.Error("build registry failed", "error", err)
		os.Exit(1)
	}

	engine := extraction.NewEngine(
		classify.New(classify.BuiltinSignatures()),
		registry,
		score.NewScorer(score.DefaultConfig()),
		logger,
	)

	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)
	resultsRepo := repo.NewParseResultRepository(entc, logger)

	processor := pipeline.NewProcessor(
		pipeline.NewDecodeStage(docsRepo, jobsRepo, decode.NewPDFDecoder(cfg.Decoder, nil, logger), logger),
		pipeline.NewParseStage(jobsRepo, resultsRepo, engine, logger),
		logger,
	)
	ingestor := ingest.NewFSIngestor(docsRepo, logger)
	exporter := export.NewService(resultsRepo, logger)

	failures := 0
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	deps := &batchDeps{
		ingestor:  ingestor,
		processor: processor,
		docsRepo:  docsRepo,
		jobsRepo:  jobsRepo,
		exporter:  exporter,
		xlsxDir:   *xlsxDir,
	}
	for _, path := range flag.Args() {
		summary, err := deps.parseOne(ctx, path)
		if err != nil {
			logger.Error("parse failed", "path", path, "error", err)
			failures++
			continue
		}
		if err := enc.Encode(summary); err != nil {
			logger.Error("encode summary failed", "error", err)
			failures++
		}
	}
	if failures > 0 {
		os.Exit(1)
	}
}

type batchDeps struct {
	ingestor  *ingest.FSIngestor
	processor *pipeline.Processor
	docsRepo  repo.DocumentRepository
	jobsRepo  repo.ParseJobRepository
	exporter  *export.Service
	xlsxDir   string
}

// summary is one line of stdout per statement: the stored rows as transfer
// DTOs plus any sanity warnings the engine raised.
type summary struct {
	Path     string               `json:"path"`
	Document *entity.Document     `json:"document"`
	Job      *entity.ParseJob     `json:"job"`
	Result   *entity.ParseResult  `json:"result"`
	Warnings []extraction.Warning `json:"warnings,omitempty"`
	Workbook string               `json:"workbook,omitempty"`
}

func (d *batchDeps) parseOne(ctx context.Context, path string) (*summary, error) {
	ing, err := d.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, err
	}
	documentID, err := uuid.Parse(ing.DocumentID)
	if err != nil {
		return nil, err
	}
	jobID, err := d.processor.Submit(ctx, documentID)
	if err != nil {
		return nil, err
	}
	row, res, err := d.processor.Process(ctx, documentID, jobID)
	if err != nil {
		return nil, err
	}

	docRow, err := d.docsRepo.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	jobRow, err := d.jobsRepo.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	out := &summary{
		Path:     path,
		Document: utils.ToDocument(docRow),
		Job:      utils.ToParseJob(jobRow),
		Result:   utils.ToParseResult(row),
		Warnings: res.Warnings,
	}

	if d.xlsxDir != "" && len(res.Transactions) > 0 {
		if err := os.MkdirAll(d.xlsxDir, 0o755); err != nil {
			return nil, err
		}
		xlsx, err := d.exporter.TransactionsXLSX(ctx, jobID)
		if err != nil {
			return nil, err
		}
		name := filepath.Join(d.xlsxDir, jobID.String()+".xlsx")
		if err := os.WriteFile(name, xlsx, 0o644); err != nil {
			return nil, err
		}
		out.Workbook = name
	}
	return out, nil
}
