// Package decode turns a statement PDF into positioned text runs. The
// embedded text layer is tried first; scanned statements fall through to
// rasterization plus OCR.
package decode

import (
	"context"
	"log/slog"
	"time"

	"github.com/Shubh2310-developer/cc-statement-parser/internal/common"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/model"
)

const (
	MethodTextLayer = "pdf-text"
	MethodOCR       = "pdf-ocr"

	// minTextRuns is the text-layer yield below which a PDF is treated as
	// scanned and sent to OCR.
	minTextRuns = 5
)

// Result carries the decoded document plus provenance for persistence.
type Result struct {
	Document      model.Document
	Pages         int
	Method        string
	OCRConfidence float64 // mean tesseract word confidence, 0 for text-layer
	Duration      time.Duration
}

// Decoder is the narrow surface the pipeline depends on.
type Decoder interface {
	Decode(ctx context.Context, path string) (Result, error)
}

// PDFDecoder shells out to poppler and tesseract binaries.
type PDFDecoder struct {
	cfg    common.DecoderConfig
	runner Runner
	logger *slog.Logger
}

func NewPDFDecoder(cfg common.DecoderConfig, runner Runner, logger *slog.Logger) *PDFDecoder {
	if logger == nil {
		logger = slog.Default()
	}
	if runner == nil {
		runner = NewExecRunner(logger)
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &PDFDecoder{cfg: cfg, runner: runner, logger: logger}
}

// Decode extracts positioned text from the PDF at path. Failures of the
// underlying binaries surface as input errors: a PDF we cannot read is a bad
// document, not a broken service.
func (d *PDFDecoder) Decode(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	runs, pages, err := d.popplerTextRuns(ctx, path)
	if err != nil {
		return Result{}, common.NewInputError(common.ReasonDecodeFailed, err)
	}
	if len(runs) >= minTextRuns {
		d.logger.InfoContext(ctx, "decode.text_layer.ok", "path", path, "pages", pages, "runs", len(runs))
		return Result{
			Document: model.Document{Runs: runs},
			Pages:    pages,
			Method:   MethodTextLayer,
			Duration: time.Since(start),
		}, nil
	}

	d.logger.InfoContext(ctx, "decode.text_layer.sparse", "path", path, "runs", len(runs))
	runs, pages, conf, err := d.ocrTextRuns(ctx, path)
	if err != nil {
		return Result{}, common.NewInputError(common.ReasonDecodeFailed, err)
	}
	d.logger.InfoContext(ctx, "decode.ocr.ok", "path", path, "pages", pages, "runs", len(runs), "confidence", conf)
	return Result{
		Document:      model.Document{Runs: runs},
		Pages:         pages,
		Method:        MethodOCR,
		OCRConfidence: conf,
		Duration:      time.Since(start),
	}, nil
}
