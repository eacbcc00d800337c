package constants

// Target field IDs extracted from a statement. Stable values (stored in
// result JSON and returned over the API).
const (
	FieldCardLast4       = "card_last4"
	FieldCardVariant     = "card_variant"
	FieldCardholderName  = "cardholder_name"
	FieldPeriodStart     = "statement_period_start"
	FieldPeriodEnd       = "statement_period_end"
	FieldPaymentDueDate  = "payment_due_date"
	FieldTotalDue        = "total_due"
	FieldMinimumDue      = "minimum_due"
	FieldCreditLimit     = "credit_limit"
	FieldAvailableCredit = "available_credit"
	FieldTransactions    = "transactions"
)

// TargetFields lists every single-valued field a template set may extract.
// FieldTransactions is multi-valued and handled by the TABLE strategy.
var TargetFields = []string{
	FieldCardLast4,
	FieldCardVariant,
	FieldCardholderName,
	FieldPeriodStart,
	FieldPeriodEnd,
	FieldPaymentDueDate,
	FieldTotalDue,
	FieldMinimumDue,
	FieldCreditLimit,
	FieldAvailableCredit,
}
