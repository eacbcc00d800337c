package extraction

import (
	"github.com/shopspring/decimal"

	"github.com/Shubh2310-developer/cc-statement-parser/internal/template"
)

// State tracks how far a document travelled through the engine.
type State string

const (
	StateReceived   State = "RECEIVED"
	StateClassified State = "CLASSIFIED"
	StateExtracted  State = "EXTRACTED"
	StateNormalized State = "NORMALIZED"
	StateScored     State = "SCORED"
	StateDone       State = "DONE"
	StateFailed     State = "FAILED"
)

// Field is one extracted statement field after normalization and scoring.
type Field struct {
	FieldID    string            `json:"field_id"`
	RawValue   string            `json:"raw_value"`
	Value      string            `json:"value"`
	Normalized bool              `json:"normalized"`
	Confidence float64           `json:"confidence"`
	Strategy   template.Strategy `json:"strategy"`
	Snippet    string            `json:"snippet,omitempty"`
}

// Transaction is one normalized statement line item. Amount is signed:
// credits are negative.
type Transaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Credit      bool            `json:"credit"`
	Confidence  float64         `json:"confidence"`
	Page        int             `json:"page"`
}

// Warning flags a suspicious but non-fatal extraction outcome: a value that
// breaks a statement-level sanity rule or a field scored too low to trust.
type Warning struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Result is the engine's final output for one document.
type Result struct {
	State             State         `json:"state"`
	Issuer            string        `json:"issuer"`
	IssuerConfidence  float64       `json:"issuer_confidence"`
	Fields            []Field       `json:"fields"`
	Transactions      []Transaction `json:"transactions"`
	OverallConfidence float64       `json:"overall_confidence"`
	Warnings          []Warning     `json:"warnings,omitempty"`
	FailureReason     string        `json:"failure_reason,omitempty"`
}

// FieldByID returns the named field if it was extracted.
func (r *Result) FieldByID(id string) (Field, bool) {
	for _, f := range r.Fields {
		if f.FieldID == id {
			return f, true
		}
	}
	return Field{}, false
}
