package extraction

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Shubh2310-developer/cc-statement-parser/constants"
)

const (
	severityMedium = "medium"
	severityHigh   = "high"

	// dueDateWindowDays bounds how far a payment due date may sit from the
	// parse time before it looks like a misread.
	dueDateWindowDays = 90

	// lowFieldConfidence flags an individual field; weakFieldConfidence
	// feeds the statement-wide count.
	lowFieldConfidence  = 0.5
	weakFieldConfidence = 0.7
	maxWeakFields       = 3
)

// checkResult applies statement-level sanity rules after scoring. A
// violation never fails the parse; it rides along as a warning for the
// caller to surface.
func checkResult(res *Result, now time.Time) []Warning {
	var out []Warning

	if f, ok := res.FieldByID(constants.FieldPaymentDueDate); ok && f.Normalized {
		if due, err := time.Parse("2006-01-02", f.Value); err == nil {
			days := due.Sub(now).Hours() / 24
			if days < -dueDateWindowDays || days > dueDateWindowDays {
				out = append(out, Warning{
					Field:    constants.FieldPaymentDueDate,
					Message:  fmt.Sprintf("due date %s is more than %d days from the parse date", f.Value, dueDateWindowDays),
					Severity: severityMedium,
				})
			}
		}
	}

	for _, id := range []string{constants.FieldTotalDue, constants.FieldMinimumDue} {
		if amt, ok := fieldAmount(res, id); ok && amt.IsNegative() {
			out = append(out, Warning{
				Field:    id,
				Message:  "amount due is negative",
				Severity: severityHigh,
			})
		}
	}

	if minDue, ok := fieldAmount(res, constants.FieldMinimumDue); ok {
		if total, ok := fieldAmount(res, constants.FieldTotalDue); ok && minDue.GreaterThan(total) {
			out = append(out, Warning{
				Field:    constants.FieldMinimumDue,
				Message:  "minimum due exceeds total due",
				Severity: severityHigh,
			})
		}
	}

	weak := 0
	for _, f := range res.Fields {
		if f.Confidence < weakFieldConfidence {
			weak++
		}
		if f.Confidence < lowFieldConfidence {
			out = append(out, Warning{
				Field:    f.FieldID,
				Message:  fmt.Sprintf("low confidence (%.2f)", f.Confidence),
				Severity: severityMedium,
			})
		}
	}
	if weak > maxWeakFields {
		out = append(out, Warning{
			Field:    "overall",
			Message:  fmt.Sprintf("%d fields below confidence %.2f", weak, weakFieldConfidence),
			Severity: severityHigh,
		})
	}

	return out
}

// fieldAmount returns the decimal value of a normalized currency field.
func fieldAmount(res *Result, id string) (decimal.Decimal, bool) {
	f, ok := res.FieldByID(id)
	if !ok || !f.Normalized {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(f.Value)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
