// Package template holds the declarative, per-issuer description of how to
// locate each target field on a statement page. Adding an issuer means adding
// data here (or in a YAML override file), not extraction code.
package template

import (
	"fmt"
	"regexp"

	"github.com/Shubh2310-developer/cc-statement-parser/internal/common"
)

// Strategy selects how a field's value is located relative to its anchors.
type Strategy string

const (
	// StrategyProximity finds the pattern-matching run closest to an anchor
	// label, bounded by vertical distance and horizontal misalignment.
	StrategyProximity Strategy = "PROXIMITY"
	// StrategyColumn finds the first pattern-matching run horizontally
	// aligned under a header label, regardless of vertical distance.
	StrategyColumn Strategy = "COLUMN"
	// StrategyTable decomposes a header row plus row bands into one logical
	// record per row. Used only for the multi-valued transactions field.
	StrategyTable Strategy = "TABLE"
)

// Postprocess names the normalizer applied to a raw extracted value.
type Postprocess string

const (
	PostprocessDate     Postprocess = "DATE"
	PostprocessCurrency Postprocess = "CURRENCY"
	PostprocessCardTail Postprocess = "CARD_TAIL"
	PostprocessRaw      Postprocess = "RAW"
)

// FieldTemplate declares where one field lives and what its value looks like.
// The coordinate thresholds are per-issuer empirical constants; they are data
// so they can be tuned and tested independently of the extraction logic.
type FieldTemplate struct {
	FieldID      string
	Strategy     Strategy
	AnchorLabels []string // tried in order, first hit wins
	MaxYDistance float64
	MaxXMisalign float64
	ValuePattern *regexp.Regexp
	Postprocess  Postprocess
}

// TemplateSet is the ordered collection of field templates for one issuer.
// Immutable once loaded.
type TemplateSet struct {
	IssuerID string
	Fields   []FieldTemplate
}

// Validate checks the structural invariants: unique field IDs, non-negative
// distances, a strategy and pattern on every template.
func (s TemplateSet) Validate() error {
	seen := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if f.FieldID == "" {
			return common.NewAppError("TEMPLATE_ERROR", "field id must not be empty", common.ErrValidation)
		}
		if _, dup := seen[f.FieldID]; dup {
			return common.NewAppError("TEMPLATE_ERROR",
				fmt.Sprintf("duplicate field id %q in set %q", f.FieldID, s.IssuerID), common.ErrValidation)
		}
		seen[f.FieldID] = struct{}{}
		switch f.Strategy {
		case StrategyProximity, StrategyColumn, StrategyTable:
		default:
			return common.NewAppError("TEMPLATE_ERROR",
				fmt.Sprintf("field %q: unknown strategy %q", f.FieldID, f.Strategy), common.ErrValidation)
		}
		if f.MaxYDistance < 0 {
			return common.NewAppError("TEMPLATE_ERROR",
				fmt.Sprintf("field %q: negative max_y_distance", f.FieldID), common.ErrValidation)
		}
		if f.MaxXMisalign < 0 {
			return common.NewAppError("TEMPLATE_ERROR",
				fmt.Sprintf("field %q: negative max_x_misalign", f.FieldID), common.ErrValidation)
		}
		if len(f.AnchorLabels) == 0 {
			return common.NewAppError("TEMPLATE_ERROR",
				fmt.Sprintf("field %q: no anchor labels", f.FieldID), common.ErrValidation)
		}
		if f.ValuePattern == nil && f.Strategy != StrategyTable {
			return common.NewAppError("TEMPLATE_ERROR",
				fmt.Sprintf("field %q: missing value pattern", f.FieldID), common.ErrValidation)
		}
	}
	return nil
}
