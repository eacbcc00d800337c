package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubh2310-developer/cc-statement-parser/constants"
)

func amountField(id, value string, confidence float64) Field {
	return Field{FieldID: id, RawValue: value, Value: value, Normalized: true, Confidence: confidence}
}

func warningsFor(res *Result, field string) []Warning {
	var out []Warning
	for _, w := range res.Warnings {
		if w.Field == field {
			out = append(out, w)
		}
	}
	return out
}

func TestCheckResult_CleanStatement(t *testing.T) {
	now := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	res := &Result{Fields: []Field{
		{FieldID: constants.FieldPaymentDueDate, Value: "2025-11-05", Normalized: true, Confidence: 0.95},
		amountField(constants.FieldTotalDue, "125430.5", 0.92),
		amountField(constants.FieldMinimumDue, "6272", 0.9),
	}}
	assert.Empty(t, checkResult(res, now))
}

func TestCheckResult_MinimumExceedsTotal(t *testing.T) {
	res := &Result{Fields: []Field{
		amountField(constants.FieldTotalDue, "100", 0.9),
		amountField(constants.FieldMinimumDue, "250", 0.9),
	}}
	res.Warnings = checkResult(res, time.Now())

	ws := warningsFor(res, constants.FieldMinimumDue)
	require.Len(t, ws, 1)
	assert.Equal(t, "minimum due exceeds total due", ws[0].Message)
	assert.Equal(t, severityHigh, ws[0].Severity)
}

func TestCheckResult_NegativeAmountDue(t *testing.T) {
	res := &Result{Fields: []Field{
		amountField(constants.FieldTotalDue, "-500", 0.9),
	}}
	res.Warnings = checkResult(res, time.Now())

	ws := warningsFor(res, constants.FieldTotalDue)
	require.Len(t, ws, 1)
	assert.Equal(t, "amount due is negative", ws[0].Message)
}

func TestCheckResult_DueDateWindow(t *testing.T) {
	now := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  string
		warn bool
	}{
		{"two weeks out", "2025-11-05", false},
		{"89 days back", "2025-07-24", false},
		{"half a year out", "2026-04-20", true},
		{"a year back", "2024-10-20", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &Result{Fields: []Field{
				{FieldID: constants.FieldPaymentDueDate, Value: tt.due, Normalized: true, Confidence: 0.95},
			}}
			ws := warningsFor(&Result{Warnings: checkResult(res, now)}, constants.FieldPaymentDueDate)
			if tt.warn {
				require.Len(t, ws, 1)
				assert.Equal(t, severityMedium, ws[0].Severity)
			} else {
				assert.Empty(t, ws)
			}
		})
	}
}

func TestCheckResult_UnnormalizedDueDateIsIgnored(t *testing.T) {
	// A value that failed normalization cannot support a plausibility check.
	res := &Result{Fields: []Field{
		{FieldID: constants.FieldPaymentDueDate, Value: "99/99/9999", Normalized: false, Confidence: 0.6},
	}}
	assert.Empty(t, checkResult(res, time.Now()))
}

func TestCheckResult_LowConfidenceFields(t *testing.T) {
	res := &Result{Fields: []Field{
		{FieldID: constants.FieldCardLast4, Value: "4321", Normalized: true, Confidence: 0.32},
		{FieldID: constants.FieldCardVariant, Value: "Regalia", Normalized: true, Confidence: 0.95},
	}}
	res.Warnings = checkResult(res, time.Now())

	ws := warningsFor(res, constants.FieldCardLast4)
	require.Len(t, ws, 1)
	assert.Contains(t, ws[0].Message, "low confidence")
	assert.Empty(t, warningsFor(res, constants.FieldCardVariant))
	assert.Empty(t, warningsFor(res, "overall"))
}

func TestCheckResult_ManyWeakFieldsFlagStatement(t *testing.T) {
	res := &Result{Fields: []Field{
		{FieldID: constants.FieldCardLast4, Confidence: 0.65},
		{FieldID: constants.FieldTotalDue, Confidence: 0.62},
		{FieldID: constants.FieldMinimumDue, Confidence: 0.6},
		{FieldID: constants.FieldCreditLimit, Confidence: 0.55},
	}}
	res.Warnings = checkResult(res, time.Now())

	ws := warningsFor(res, "overall")
	require.Len(t, ws, 1)
	assert.Equal(t, severityHigh, ws[0].Severity)
	assert.Contains(t, ws[0].Message, "4 fields")
}
