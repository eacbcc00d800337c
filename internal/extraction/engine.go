// Package extraction runs the full statement parse: classify the issuer,
// extract fields with the issuer's templates, normalize raw values and score
// everything. It owns the document state machine.
package extraction

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/Shubh2310-developer/cc-statement-parser/internal/classify"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/model"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/normalize"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/score"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/spatial"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/template"
)

// Engine wires the classifier, template registry and scorer into one
// pipeline. All collaborators are injected and immutable after construction.
type Engine struct {
	classifier *classify.Classifier
	registry   *template.Registry
	scorer     *score.Scorer
	logger     *slog.Logger
}

func NewEngine(c *classify.Classifier, r *template.Registry, s *score.Scorer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{classifier: c, registry: r, scorer: s, logger: logger}
}

// Run parses one decoded document end to end. Structurally invalid input
// (an empty run sequence) fails the document; a statement where no field
// could be located is a successful parse with an empty field list.
func (e *Engine) Run(ctx context.Context, doc model.Document) (*Result, error) {
	res := &Result{State: StateReceived}

	issuer, issuerConf := e.classifier.Classify(doc)
	res.Issuer = issuer
	res.IssuerConfidence = issuerConf
	res.State = StateClassified
	e.logger.InfoContext(ctx, "engine.classify.ok", "issuer", issuer, "confidence", issuerConf)

	set := e.registry.ForIssuer(issuer)
	ext, err := spatial.Extract(doc, set)
	if err != nil {
		res.State = StateFailed
		res.FailureReason = err.Error()
		e.logger.WarnContext(ctx, "engine.extract.failed", "error", err)
		return res, err
	}
	res.State = StateExtracted
	e.logger.InfoContext(ctx, "engine.extract.ok", "fields", len(ext.Fields), "rows", len(ext.Rows))

	fields := e.normalizeFields(set, ext)
	res.State = StateNormalized

	var confs []float64
	for i := range fields {
		fields[i].Confidence = e.scorer.Field(ext.Fields[fields[i].FieldID], fields[i].Normalized)
		confs = append(confs, fields[i].Confidence)
	}
	res.Fields = fields
	res.Transactions = e.buildTransactions(ext.Rows)
	res.OverallConfidence = e.scorer.Overall(confs)
	res.State = StateScored

	res.Warnings = checkResult(res, time.Now())
	if len(res.Warnings) > 0 {
		e.logger.WarnContext(ctx, "engine.validate.warnings", "count", len(res.Warnings))
	}

	res.State = StateDone
	e.logger.InfoContext(ctx, "engine.run.done",
		"issuer", issuer,
		"fields", len(res.Fields),
		"transactions", len(res.Transactions),
		"warnings", len(res.Warnings),
		"overall", res.OverallConfidence)
	return res, nil
}

// normalizeFields applies each template's postprocess rule to its candidate.
// Fields come back in template declaration order so output is deterministic.
func (e *Engine) normalizeFields(set template.TemplateSet, ext spatial.Extraction) []Field {
	var out []Field
	for _, ft := range set.Fields {
		c, ok := ext.Fields[ft.FieldID]
		if !ok {
			continue
		}
		value, normalized := applyPostprocess(ft.Postprocess, c.RawValue)
		out = append(out, Field{
			FieldID:    ft.FieldID,
			RawValue:   c.RawValue,
			Value:      value,
			Normalized: normalized,
			Strategy:   c.Strategy,
			Snippet:    c.Snippet,
		})
	}
	return out
}

// applyPostprocess canonicalizes a raw value. When normalization fails the
// raw value is carried through and the caller docks confidence.
func applyPostprocess(pp template.Postprocess, raw string) (string, bool) {
	switch pp {
	case template.PostprocessDate:
		if iso, ok := normalize.Date(raw); ok {
			return iso, true
		}
		if iso, ok := normalize.DateInText(raw); ok {
			return iso, true
		}
		return raw, false
	case template.PostprocessCurrency:
		if d, ok := normalize.Currency(raw); ok {
			return d.String(), true
		}
		if d, ok := normalize.CurrencyInText(raw); ok {
			return d.String(), true
		}
		return raw, false
	case template.PostprocessCardTail:
		if tail, ok := normalize.CardTail(raw); ok {
			return tail, true
		}
		return raw, false
	default:
		return strings.TrimSpace(raw), true
	}
}

// buildTransactions turns table rows into line items. A row must yield a date
// and an amount to count; anything else is layout noise.
func (e *Engine) buildTransactions(rows []spatial.RowRecord) []Transaction {
	var out []Transaction
	for _, row := range rows {
		rawDate, rawDesc, rawAmount := splitRow(row.Cells)
		if rawDate == "" || rawAmount == "" {
			continue
		}
		date, dateOK := normalize.Date(rawDate)
		if !dateOK {
			date, dateOK = normalize.DateInText(rawDate)
		}
		amount, amountOK := normalize.Currency(rawAmount)
		if !dateOK || !amountOK {
			continue
		}
		out = append(out, Transaction{
			Date:        date,
			Description: strings.TrimSpace(rawDesc),
			Amount:      amount,
			Credit:      amount.IsNegative(),
			Confidence:  e.scorer.Row(),
			Page:        row.Page,
		})
	}
	return out
}

// splitRow assigns cells to the date, description and amount roles by header
// label. Statement tables name these columns inconsistently across issuers.
// Labels are visited in sorted order so ambiguous rows resolve the same way
// every run.
func splitRow(cells map[string]string) (date, desc, amount string) {
	labels := make([]string, 0, len(cells))
	for label := range cells {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		l, v := strings.ToLower(label), cells[label]
		switch {
		case strings.Contains(l, "date") && date == "":
			date = v
		case (strings.Contains(l, "amount") || strings.Contains(l, "debit") || strings.Contains(l, "credit")) && amount == "":
			amount = v
		case descLabel(l) && desc == "":
			desc = v
		}
	}
	if desc == "" {
		for _, label := range labels {
			l := strings.ToLower(label)
			if !strings.Contains(l, "date") && !strings.Contains(l, "amount") &&
				!strings.Contains(l, "debit") && !strings.Contains(l, "credit") {
				desc = cells[label]
				break
			}
		}
	}
	return date, desc, amount
}

func descLabel(l string) bool {
	for _, kw := range []string{"detail", "description", "particular", "transaction", "merchant", "narration"} {
		if strings.Contains(l, kw) {
			return true
		}
	}
	return false
}
