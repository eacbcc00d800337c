package template

import (
	"regexp"

	"github.com/Shubh2310-developer/cc-statement-parser/constants"
)

// Registry is the process-wide, read-only collection of template sets. It is
// constructed once at startup and handed to the orchestrator explicitly;
// concurrent reads need no synchronization.
type Registry struct {
	sets     map[string]TemplateSet
	fallback TemplateSet
}

// NewRegistry validates and indexes the given sets. A set registered for
// constants.IssuerUnknown becomes the generic fallback.
func NewRegistry(sets ...TemplateSet) (*Registry, error) {
	r := &Registry{sets: make(map[string]TemplateSet, len(sets))}
	for _, s := range sets {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if s.IssuerID == constants.IssuerUnknown {
			r.fallback = s
			continue
		}
		r.sets[s.IssuerID] = s
	}
	return r, nil
}

// ForIssuer returns the template set for an issuer, or the generic fallback
// when the issuer has no registered set.
func (r *Registry) ForIssuer(issuerID string) TemplateSet {
	if s, ok := r.sets[issuerID]; ok {
		return s
	}
	return r.fallback
}

// Issuers returns the issuer IDs with a registered (non-fallback) set.
func (r *Registry) Issuers() []string {
	out := make([]string, 0, len(r.sets))
	for id := range r.sets {
		out = append(out, id)
	}
	return out
}

// Shared value patterns. An amount-shaped run is anchored at its end so a
// dotted date ("25.12.2023") can never satisfy it, and a date never looks
// like a grouped or symbol-prefixed amount. The two shapes stay mutually
// exclusive within one row.
var (
	datePattern = regexp.MustCompile(`(?i)\b\d{1,2}[-/. ]([a-z]{3,9}|\d{1,2})[-/. ]?,?\s?\d{2,4}\b|\b\d{4}-\d{2}-\d{2}\b`)

	amountPattern = regexp.MustCompile(`(?i)((₹|\$|€|£|rs\.?|inr)\s?\d[\d,]*(\.\d{1,2})?|\d{1,3}(,\d{2,3})+(\.\d{1,2})?|\d+\.\d{2})\s?(cr|dr|db)?$`)

	cardPattern = regexp.MustCompile(`(?i)([x*•]{2,}[ -]?)+\d{4,5}\b|\b\d{4}([ -]\d{4}){3}\b|(ending|card no|membership number)\D*\d{4,5}\b`)

	namePattern = regexp.MustCompile(`^[A-Z][A-Z .]{2,39}$`)
)

// BuiltinSets returns the shipped per-issuer template sets plus the generic
// fallback. Thresholds are empirical, recovered from representative sample
// statements per issuer, and overridable via a YAML file (see LoadFile).
func BuiltinSets() []TemplateSet {
	return []TemplateSet{
		hdfcSet(),
		iciciSet(),
		axisSet(),
		sbiSet(),
		amexSet(),
		fallbackSet(),
	}
}

func hdfcSet() TemplateSet {
	variant := regexp.MustCompile(`(?i)(regalia|millennia|moneyback|diners club|platinum|freedom|titanium|indianoil)`)
	return TemplateSet{
		IssuerID: constants.IssuerHDFC,
		Fields: []FieldTemplate{
			{FieldID: constants.FieldCardLast4, Strategy: StrategyProximity,
				AnchorLabels: []string{"Card No", "Card Number", "Card ending"},
				MaxYDistance: 30, MaxXMisalign: 320, ValuePattern: cardPattern, Postprocess: PostprocessCardTail},
			{FieldID: constants.FieldCardVariant, Strategy: StrategyProximity,
				AnchorLabels: []string{"Credit Card", "Card Type"},
				MaxYDistance: 30, MaxXMisalign: 320, ValuePattern: variant, Postprocess: PostprocessRaw},
			{FieldID: constants.FieldCardholderName, Strategy: StrategyProximity,
				AnchorLabels: []string{"Name", "Card Member"},
				MaxYDistance: 25, MaxXMisalign: 320, ValuePattern: namePattern, Postprocess: PostprocessRaw},
			{FieldID: constants.FieldPeriodStart, Strategy: StrategyProximity,
				AnchorLabels: []string{"Statement Period", "Billing Period", "From"},
				MaxYDistance: 40, MaxXMisalign: 320, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldPeriodEnd, Strategy: StrategyProximity,
				AnchorLabels: []string{"Statement Date", "To"},
				MaxYDistance: 40, MaxXMisalign: 320, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldPaymentDueDate, Strategy: StrategyProximity,
				AnchorLabels: []string{"Payment Due Date", "Due Date", "Pay By"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldTotalDue, Strategy: StrategyProximity,
				AnchorLabels: []string{"Total Amount Due", "Total Dues", "Amount Payable"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldMinimumDue, Strategy: StrategyProximity,
				AnchorLabels: []string{"Minimum Amount Due", "Minimum Payment"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldCreditLimit, Strategy: StrategyProximity,
				AnchorLabels: []string{"Credit Limit", "Sanctioned Limit"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldAvailableCredit, Strategy: StrategyProximity,
				AnchorLabels: []string{"Available Credit Limit", "Available Credit"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldTransactions, Strategy: StrategyTable,
				AnchorLabels: []string{"Date", "Transaction Description", "Amount"},
				MaxYDistance: 8, MaxXMisalign: 120},
		},
	}
}

func iciciSet() TemplateSet {
	variant := regexp.MustCompile(`(?i)(coral|rubyx|sapphiro|emeralde|amazon pay|platinum)`)
	return TemplateSet{
		IssuerID: constants.IssuerICICI,
		Fields: []FieldTemplate{
			{FieldID: constants.FieldCardLast4, Strategy: StrategyProximity,
				AnchorLabels: []string{"Card Number", "Card No"},
				MaxYDistance: 30, MaxXMisalign: 320, ValuePattern: cardPattern, Postprocess: PostprocessCardTail},
			{FieldID: constants.FieldCardVariant, Strategy: StrategyProximity,
				AnchorLabels: []string{"Credit Card"},
				MaxYDistance: 30, MaxXMisalign: 320, ValuePattern: variant, Postprocess: PostprocessRaw},
			{FieldID: constants.FieldCardholderName, Strategy: StrategyProximity,
				AnchorLabels: []string{"Name", "Dear"},
				MaxYDistance: 25, MaxXMisalign: 320, ValuePattern: namePattern, Postprocess: PostprocessRaw},
			{FieldID: constants.FieldPeriodStart, Strategy: StrategyProximity,
				AnchorLabels: []string{"Statement Period", "From"},
				MaxYDistance: 40, MaxXMisalign: 320, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldPeriodEnd, Strategy: StrategyProximity,
				AnchorLabels: []string{"Statement Date", "To"},
				MaxYDistance: 40, MaxXMisalign: 320, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldPaymentDueDate, Strategy: StrategyProximity,
				AnchorLabels: []string{"Payment Due Date", "Due Date"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldTotalDue, Strategy: StrategyProximity,
				AnchorLabels: []string{"Total Amount Due", "Total Amount due"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldMinimumDue, Strategy: StrategyProximity,
				AnchorLabels: []string{"Minimum Amount Due", "Minimum Amount due"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldCreditLimit, Strategy: StrategyProximity,
				AnchorLabels: []string{"Credit Limit"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldAvailableCredit, Strategy: StrategyProximity,
				AnchorLabels: []string{"Available Credit"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldTransactions, Strategy: StrategyTable,
				AnchorLabels: []string{"Date", "Transaction Details", "Amount"},
				MaxYDistance: 8, MaxXMisalign: 120},
		},
	}
}

func axisSet() TemplateSet {
	variant := regexp.MustCompile(`(?i)(my zone|magnus|privilege|select|ace|flipkart)`)
	return TemplateSet{
		IssuerID: constants.IssuerAxis,
		Fields: []FieldTemplate{
			{FieldID: constants.FieldCardLast4, Strategy: StrategyProximity,
				AnchorLabels: []string{"Card No", "Card Number"},
				MaxYDistance: 30, MaxXMisalign: 320, ValuePattern: cardPattern, Postprocess: PostprocessCardTail},
			{FieldID: constants.FieldCardVariant, Strategy: StrategyProximity,
				AnchorLabels: []string{"Credit Card", "Card"},
				MaxYDistance: 30, MaxXMisalign: 320, ValuePattern: variant, Postprocess: PostprocessRaw},
			{FieldID: constants.FieldCardholderName, Strategy: StrategyProximity,
				AnchorLabels: []string{"Name"},
				MaxYDistance: 25, MaxXMisalign: 320, ValuePattern: namePattern, Postprocess: PostprocessRaw},
			{FieldID: constants.FieldPeriodStart, Strategy: StrategyProximity,
				AnchorLabels: []string{"Statement Period", "From"},
				MaxYDistance: 40, MaxXMisalign: 320, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldPeriodEnd, Strategy: StrategyProximity,
				AnchorLabels: []string{"Statement Date", "To"},
				MaxYDistance: 40, MaxXMisalign: 320, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldPaymentDueDate, Strategy: StrategyProximity,
				AnchorLabels: []string{"Payment Due Date", "Due Date"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldTotalDue, Strategy: StrategyProximity,
				AnchorLabels: []string{"Total Amount Due", "Total Due", "Outstanding"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldMinimumDue, Strategy: StrategyProximity,
				AnchorLabels: []string{"Minimum Amount Due", "Minimum Payment"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldCreditLimit, Strategy: StrategyProximity,
				AnchorLabels: []string{"Credit Limit"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldAvailableCredit, Strategy: StrategyProximity,
				AnchorLabels: []string{"Available Credit"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldTransactions, Strategy: StrategyTable,
				AnchorLabels: []string{"Date", "Transaction Details", "Merchant Category", "Amount"},
				MaxYDistance: 8, MaxXMisalign: 120},
		},
	}
}

// SBI prints its summary strip as headers with values directly beneath, so
// the amount and date fields use the COLUMN strategy with a tight alignment
// tolerance instead of free proximity search.
func sbiSet() TemplateSet {
	variant := regexp.MustCompile(`(?i)(simplyclick|simplysave|elite|prime|pulse|cashback)`)
	return TemplateSet{
		IssuerID: constants.IssuerSBI,
		Fields: []FieldTemplate{
			{FieldID: constants.FieldCardLast4, Strategy: StrategyProximity,
				AnchorLabels: []string{"Credit Card Number", "Card Number"},
				MaxYDistance: 30, MaxXMisalign: 320, ValuePattern: cardPattern, Postprocess: PostprocessCardTail},
			{FieldID: constants.FieldCardVariant, Strategy: StrategyProximity,
				AnchorLabels: []string{"SBI Card"},
				MaxYDistance: 30, MaxXMisalign: 320, ValuePattern: variant, Postprocess: PostprocessRaw},
			{FieldID: constants.FieldCardholderName, Strategy: StrategyProximity,
				AnchorLabels: []string{"Name"},
				MaxYDistance: 25, MaxXMisalign: 320, ValuePattern: namePattern, Postprocess: PostprocessRaw},
			{FieldID: constants.FieldPeriodStart, Strategy: StrategyProximity,
				AnchorLabels: []string{"Statement Period", "From"},
				MaxYDistance: 40, MaxXMisalign: 320, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldPeriodEnd, Strategy: StrategyColumn,
				AnchorLabels: []string{"Statement Date"},
				MaxXMisalign: 45, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldPaymentDueDate, Strategy: StrategyColumn,
				AnchorLabels: []string{"Payment Due Date", "Due Date"},
				MaxXMisalign: 45, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldTotalDue, Strategy: StrategyColumn,
				AnchorLabels: []string{"Total Amount Due", "*Total Amount Due"},
				MaxXMisalign: 45, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldMinimumDue, Strategy: StrategyColumn,
				AnchorLabels: []string{"Minimum Amount Due", "**Minimum Amount Due"},
				MaxXMisalign: 45, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldCreditLimit, Strategy: StrategyColumn,
				AnchorLabels: []string{"Credit Limit"},
				MaxXMisalign: 45, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldAvailableCredit, Strategy: StrategyColumn,
				AnchorLabels: []string{"Available Credit Limit", "Available Credit"},
				MaxXMisalign: 45, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldTransactions, Strategy: StrategyTable,
				AnchorLabels: []string{"Date", "Transaction Details", "Amount"},
				MaxYDistance: 8, MaxXMisalign: 120},
		},
	}
}

func amexSet() TemplateSet {
	variant := regexp.MustCompile(`(?i)(platinum travel|platinum|gold|membership rewards)`)
	return TemplateSet{
		IssuerID: constants.IssuerAmex,
		Fields: []FieldTemplate{
			// Amex membership numbers expose five trailing digits.
			{FieldID: constants.FieldCardLast4, Strategy: StrategyProximity,
				AnchorLabels: []string{"Membership Number", "Card ending"},
				MaxYDistance: 30, MaxXMisalign: 320, ValuePattern: cardPattern, Postprocess: PostprocessCardTail},
			{FieldID: constants.FieldCardVariant, Strategy: StrategyProximity,
				AnchorLabels: []string{"American Express", "Credit Card"},
				MaxYDistance: 30, MaxXMisalign: 320, ValuePattern: variant, Postprocess: PostprocessRaw},
			{FieldID: constants.FieldCardholderName, Strategy: StrategyProximity,
				AnchorLabels: []string{"Prepared for", "Name"},
				MaxYDistance: 25, MaxXMisalign: 320, ValuePattern: namePattern, Postprocess: PostprocessRaw},
			{FieldID: constants.FieldPeriodStart, Strategy: StrategyProximity,
				AnchorLabels: []string{"Statement Period", "From"},
				MaxYDistance: 40, MaxXMisalign: 320, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldPeriodEnd, Strategy: StrategyProximity,
				AnchorLabels: []string{"Statement Date", "Closing Date"},
				MaxYDistance: 40, MaxXMisalign: 320, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldPaymentDueDate, Strategy: StrategyProximity,
				AnchorLabels: []string{"Payment Due Date", "Please pay by"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldTotalDue, Strategy: StrategyProximity,
				AnchorLabels: []string{"Total Amount Due", "New Balance", "Closing Balance"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldMinimumDue, Strategy: StrategyProximity,
				AnchorLabels: []string{"Minimum Payment", "Minimum Amount Due"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldCreditLimit, Strategy: StrategyProximity,
				AnchorLabels: []string{"Credit Limit"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldAvailableCredit, Strategy: StrategyProximity,
				AnchorLabels: []string{"Available Credit"},
				MaxYDistance: 50, MaxXMisalign: 320, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldTransactions, Strategy: StrategyTable,
				AnchorLabels: []string{"Date", "Description", "Amount"},
				MaxYDistance: 8, MaxXMisalign: 120},
		},
	}
}

// fallbackSet is used when classification yields the unknown sentinel. Only
// the labels common across issuers are tried, with generous tolerances.
func fallbackSet() TemplateSet {
	return TemplateSet{
		IssuerID: constants.IssuerUnknown,
		Fields: []FieldTemplate{
			{FieldID: constants.FieldCardLast4, Strategy: StrategyProximity,
				AnchorLabels: []string{"Card Number", "Card No", "Card ending"},
				MaxYDistance: 40, MaxXMisalign: 360, ValuePattern: cardPattern, Postprocess: PostprocessCardTail},
			{FieldID: constants.FieldPaymentDueDate, Strategy: StrategyProximity,
				AnchorLabels: []string{"Payment Due Date", "Due Date", "Pay By"},
				MaxYDistance: 60, MaxXMisalign: 360, ValuePattern: datePattern, Postprocess: PostprocessDate},
			{FieldID: constants.FieldTotalDue, Strategy: StrategyProximity,
				AnchorLabels: []string{"Total Amount Due", "Total Due", "New Balance"},
				MaxYDistance: 60, MaxXMisalign: 360, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldMinimumDue, Strategy: StrategyProximity,
				AnchorLabels: []string{"Minimum Amount Due", "Minimum Payment"},
				MaxYDistance: 60, MaxXMisalign: 360, ValuePattern: amountPattern, Postprocess: PostprocessCurrency},
			{FieldID: constants.FieldTransactions, Strategy: StrategyTable,
				AnchorLabels: []string{"Date", "Description", "Amount"},
				MaxYDistance: 8, MaxXMisalign: 120},
		},
	}
}
