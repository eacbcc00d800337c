package decode

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Shubh2310-developer/cc-statement-parser/internal/model"
)

// ocrTextRuns rasterizes the PDF with pdftoppm and runs tesseract in TSV mode
// on each page image. Word boxes sharing a (block, paragraph, line) triple are
// merged into one run; pixel coordinates are rescaled to PDF points so both
// decode paths feed the extractor in the same unit.
func (d *PDFDecoder) ocrTextRuns(ctx context.Context, path string) ([]model.TextRun, int, float64, error) {
	if d.cfg.ArtifactCacheDir != "" {
		if err := os.MkdirAll(d.cfg.ArtifactCacheDir, 0o755); err != nil {
			return nil, 0, 0, err
		}
	}
	tmpDir, err := os.MkdirTemp(d.cfg.ArtifactCacheDir, "ccsp-pp-*")
	if err != nil {
		return nil, 0, 0, err
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	_, errb, err := d.runner.Run(ctx, d.cfg.Pdftoppm, "-r", strconv.Itoa(d.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("pdftoppm: %w: %s", err, capString(string(errb), 512))
	}

	images, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(images)
	if d.cfg.MaxPages > 0 && len(images) > d.cfg.MaxPages {
		images = images[:d.cfg.MaxPages]
	}
	if len(images) == 0 {
		return nil, 0, 0, fmt.Errorf("pdftoppm produced no images")
	}

	scale := 72.0 / float64(d.cfg.DPI)
	var runs []model.TextRun
	var confSum float64
	var confN int

	for pi, img := range images {
		out, errb, err := d.runner.Run(ctx, d.cfg.Tesseract, img, "stdout", "-l", d.cfg.TesseractLang, "tsv")
		if err != nil {
			return nil, 0, 0, fmt.Errorf("tesseract %s: %w: %s", filepath.Base(img), err, capString(string(errb), 512))
		}
		pageRuns, sum, n := parseTesseractTSV(out, pi, scale)
		runs = append(runs, pageRuns...)
		confSum += sum
		confN += n
	}

	var meanConf float64
	if confN > 0 {
		meanConf = confSum / float64(confN) / 100.0
	}
	return runs, len(images), meanConf, nil
}

// tsvWord is one level-5 row of tesseract TSV output.
type tsvWord struct {
	block, par, line         int
	left, top, width, height float64
	conf                     float64
	text                     string
}

// parseTesseractTSV groups word rows into line runs. TSV columns:
// level page block par line word left top width height conf text.
func parseTesseractTSV(raw []byte, page int, scale float64) ([]model.TextRun, float64, int) {
	var words []tsvWord
	var confSum float64
	var confN int

	for i, ln := range strings.Split(string(raw), "\n") {
		if i == 0 || ln == "" {
			continue // header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		level, _ := strconv.Atoi(cols[0])
		if level != 5 {
			continue
		}
		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf < 0 {
			continue
		}
		text := strings.TrimSpace(cols[11])
		if text == "" {
			continue
		}
		w := tsvWord{text: text, conf: conf}
		w.block, _ = strconv.Atoi(cols[2])
		w.par, _ = strconv.Atoi(cols[3])
		w.line, _ = strconv.Atoi(cols[4])
		w.left, _ = strconv.ParseFloat(cols[6], 64)
		w.top, _ = strconv.ParseFloat(cols[7], 64)
		w.width, _ = strconv.ParseFloat(cols[8], 64)
		w.height, _ = strconv.ParseFloat(cols[9], 64)
		words = append(words, w)
		confSum += conf
		confN++
	}

	var runs []model.TextRun
	var cur []tsvWord
	flush := func() {
		if len(cur) == 0 {
			return
		}
		runs = append(runs, mergeLine(cur, page, scale))
		cur = nil
	}
	for _, w := range words {
		if len(cur) > 0 {
			last := cur[len(cur)-1]
			if w.block != last.block || w.par != last.par || w.line != last.line {
				flush()
			}
		}
		cur = append(cur, w)
	}
	flush()
	return runs, confSum, confN
}

func mergeLine(words []tsvWord, page int, scale float64) model.TextRun {
	box := model.BBox{
		X0: words[0].left, Y0: words[0].top,
		X1: words[0].left + words[0].width, Y1: words[0].top + words[0].height,
	}
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, w.text)
		if w.left < box.X0 {
			box.X0 = w.left
		}
		if w.top < box.Y0 {
			box.Y0 = w.top
		}
		if r := w.left + w.width; r > box.X1 {
			box.X1 = r
		}
		if b := w.top + w.height; b > box.Y1 {
			box.Y1 = b
		}
	}
	return model.TextRun{
		Text: strings.Join(parts, " "),
		BBox: model.BBox{X0: box.X0 * scale, Y0: box.Y0 * scale, X1: box.X1 * scale, Y1: box.Y1 * scale},
		Page: page,
	}
}
