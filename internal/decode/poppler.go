package decode

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/Shubh2310-developer/cc-statement-parser/internal/model"
)

// bbox-layout XML shapes emitted by pdftotext. Word boxes are grouped into
// lines; a line is the run granularity the extractor works with.
type bboxHTML struct {
	Doc bboxDoc `xml:"body>doc"`
}

type bboxDoc struct {
	Pages []bboxPage `xml:"page"`
}

type bboxPage struct {
	Width  float64    `xml:"width,attr"`
	Height float64    `xml:"height,attr"`
	Flows  []bboxFlow `xml:"flow"`
}

type bboxFlow struct {
	Blocks []bboxBlock `xml:"block"`
}

type bboxBlock struct {
	Lines []bboxLine `xml:"line"`
}

type bboxLine struct {
	XMin  float64    `xml:"xMin,attr"`
	YMin  float64    `xml:"yMin,attr"`
	XMax  float64    `xml:"xMax,attr"`
	YMax  float64    `xml:"yMax,attr"`
	Words []bboxWord `xml:"word"`
}

type bboxWord struct {
	Text string `xml:",chardata"`
}

// popplerTextRuns extracts the embedded text layer with positions via
// `pdftotext -bbox-layout`. Scanned PDFs come back with few or no runs;
// the caller falls through to OCR in that case.
func (d *PDFDecoder) popplerTextRuns(ctx context.Context, path string) ([]model.TextRun, int, error) {
	out, errb, err := d.runner.Run(ctx, d.cfg.Pdftotext, "-bbox-layout", "-enc", "UTF-8", path, "-")
	if err != nil {
		return nil, 0, fmt.Errorf("pdftotext: %w: %s", err, capString(string(errb), 512))
	}
	return parseBBoxLayout(out)
}

func parseBBoxLayout(raw []byte) ([]model.TextRun, int, error) {
	var doc bboxHTML
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, 0, fmt.Errorf("bbox-layout parse: %w", err)
	}

	var runs []model.TextRun
	for pi, page := range doc.Doc.Pages {
		for _, flow := range page.Flows {
			for _, block := range flow.Blocks {
				for _, line := range block.Lines {
					text := joinWords(line.Words)
					if text == "" {
						continue
					}
					runs = append(runs, model.TextRun{
						Text: text,
						BBox: model.BBox{X0: line.XMin, Y0: line.YMin, X1: line.XMax, Y1: line.YMax},
						Page: pi,
					})
				}
			}
		}
	}
	return runs, len(doc.Doc.Pages), nil
}

func joinWords(words []bboxWord) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if t := strings.TrimSpace(w.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
