// Package spatial locates field values on a page using label-anchored search
// over positioned text runs. Extraction is pure: a failed field lookup yields
// absence, never an error; only structurally invalid input is fatal.
package spatial

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/Shubh2310-developer/cc-statement-parser/internal/common"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/model"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/template"
)

// Candidate is one located field value plus the strategy metadata the scorer
// consumes.
type Candidate struct {
	FieldID  string
	RawValue string // pattern match within the run
	Snippet  string // full run text
	Strategy template.Strategy
	Distance float64 // anchor-to-value center distance (PROXIMITY)
	Misalign float64 // horizontal center misalignment (COLUMN)
}

// RowRecord is one logical table row keyed by header label.
type RowRecord struct {
	Cells map[string]string
	Page  int
	Y     float64
}

// Extraction is the raw output of one extractor pass, before normalization
// and scoring.
type Extraction struct {
	Fields map[string]Candidate
	Rows   []RowRecord
}

// Extract applies every template in the set to the document. Fields that
// cannot be located are simply missing from the result map.
func Extract(doc model.Document, set template.TemplateSet) (Extraction, error) {
	if doc.Empty() {
		return Extraction{}, common.NewInputError(common.ReasonEmptyInput, nil)
	}
	if len(set.Fields) == 0 {
		return Extraction{}, common.NewInputError(common.ReasonNoTemplates, nil)
	}

	runs := make([]model.TextRun, len(doc.Runs))
	copy(runs, doc.Runs)
	model.SortReadingOrder(runs)

	out := Extraction{Fields: make(map[string]Candidate)}
	for _, ft := range set.Fields {
		switch ft.Strategy {
		case template.StrategyProximity:
			if c, ok := byProximity(runs, ft); ok {
				out.Fields[ft.FieldID] = c
			}
		case template.StrategyColumn:
			if c, ok := byColumn(runs, ft); ok {
				out.Fields[ft.FieldID] = c
			}
		case template.StrategyTable:
			out.Rows = append(out.Rows, byTable(runs, ft)...)
		}
	}
	return out, nil
}

// maxLabelEditDistance tolerates light OCR damage in anchor labels
// ("Paymenl Due Date"). Exact containment is always tried first.
const maxLabelEditDistance = 2

func anchorMatches(runText, label string) bool {
	rt := strings.ToLower(strings.TrimSpace(runText))
	lb := strings.ToLower(label)
	if containsWord(rt, lb) {
		return true
	}
	// Fuzzy fallback only when the run is roughly label-sized; a short run
	// can never contain the label and a long one is some other sentence.
	if len(rt) < len(lb)-maxLabelEditDistance || len(rt) > len(lb)+maxLabelEditDistance+2 {
		return false
	}
	return fuzzy.LevenshteinDistance(rt, lb) <= maxLabelEditDistance
}

// containsWord reports whether sub occurs in s at word boundaries. Plain
// containment would let a short label like "To" hit inside "Total Amount
// Due".
func containsWord(s, sub string) bool {
	for from := 0; ; {
		i := strings.Index(s[from:], sub)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(sub)
		if (start == 0 || !isWordByte(s[start-1])) && (end == len(s) || !isWordByte(s[end])) {
			return true
		}
		from = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
