package extraction

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubh2310-developer/cc-statement-parser/constants"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/classify"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/common"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/model"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/score"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/template"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	reg, err := template.NewRegistry(template.BuiltinSets()...)
	require.NoError(t, err)
	return NewEngine(
		classify.New(classify.BuiltinSignatures()),
		reg,
		score.NewScorer(score.Config{}),
		slog.New(slog.DiscardHandler),
	)
}

func run(text string, x0, y0, x1, y1 float64) model.TextRun {
	return model.TextRun{Text: text, BBox: model.BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}}
}

func TestRun_EmptyDocumentFails(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.Run(context.Background(), model.Document{})
	require.Error(t, err)
	assert.True(t, common.IsInputError(err))
	assert.Equal(t, StateFailed, res.State)
	assert.NotEmpty(t, res.FailureReason)
}

func TestRun_SingleInlineDueDateRun(t *testing.T) {
	e := newTestEngine(t)
	doc := model.Document{Runs: []model.TextRun{
		run("Payment Due Date: 05 Nov 2025", 10, 10, 200, 20),
	}}

	res, err := e.Run(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, StateDone, res.State)
	assert.Equal(t, constants.IssuerUnknown, res.Issuer)

	require.Len(t, res.Fields, 1)
	f := res.Fields[0]
	assert.Equal(t, constants.FieldPaymentDueDate, f.FieldID)
	assert.Equal(t, "2025-11-05", f.Value)
	assert.True(t, f.Normalized)
	assert.Equal(t, template.StrategyProximity, f.Strategy)
	// one field extracted means the overall score is that field's score
	assert.Equal(t, f.Confidence, res.OverallConfidence)
}

func TestRun_NothingExtractableStillSucceeds(t *testing.T) {
	e := newTestEngine(t)
	doc := model.Document{Runs: []model.TextRun{
		run("Thank you for banking with us", 10, 10, 250, 22),
	}}

	res, err := e.Run(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, StateDone, res.State)
	assert.Empty(t, res.Fields)
	assert.Empty(t, res.Transactions)
	assert.Equal(t, 0.0, res.OverallConfidence)
}

func TestRun_FullStatement(t *testing.T) {
	e := newTestEngine(t)
	doc := model.Document{Runs: []model.TextRun{
		// Page-one issuer markers.
		run("HDFC Bank Credit Card Statement", 50, 20, 350, 34),
		run("www.hdfcbank.com", 400, 20, 520, 34),
		// Summary block: anchor and value side by side.
		run("Payment Due Date", 40, 80, 150, 92),
		run("05/11/2025", 250, 80, 330, 92),
		run("Total Amount Due", 40, 110, 155, 122),
		run("1,25,430.50", 250, 110, 330, 122),
		run("Minimum Amount Due", 40, 140, 170, 152),
		run("6,272.00", 250, 140, 330, 152),
		run("Card No", 40, 170, 95, 182),
		run("XXXX XXXX XXXX 4321", 250, 170, 390, 182),
		// Transactions table.
		run("Date", 40, 240, 70, 252),
		run("Transaction Description", 160, 240, 320, 252),
		run("Amount", 440, 240, 490, 252),
		run("12/10/2025", 35, 270, 100, 282),
		run("AMAZON RETAIL INDIA", 160, 270, 310, 282),
		run("1,299.00", 435, 270, 495, 282),
		run("15/10/2025", 35, 290, 100, 302),
		run("PAYMENT RECEIVED", 160, 290, 290, 302),
		run("10,000.00 CR", 425, 290, 500, 302),
	}}

	res, err := e.Run(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, StateDone, res.State)
	assert.Equal(t, constants.IssuerHDFC, res.Issuer)
	assert.GreaterOrEqual(t, res.IssuerConfidence, 0.30)

	due, ok := res.FieldByID(constants.FieldPaymentDueDate)
	require.True(t, ok)
	assert.Equal(t, "2025-11-05", due.Value)

	total, ok := res.FieldByID(constants.FieldTotalDue)
	require.True(t, ok)
	assert.Equal(t, "125430.5", total.Value)

	min, ok := res.FieldByID(constants.FieldMinimumDue)
	require.True(t, ok)
	assert.Equal(t, "6272", min.Value)

	card, ok := res.FieldByID(constants.FieldCardLast4)
	require.True(t, ok)
	assert.Equal(t, "4321", card.Value)

	require.Len(t, res.Transactions, 2)
	purchase, payment := res.Transactions[0], res.Transactions[1]
	assert.Equal(t, "2025-10-12", purchase.Date)
	assert.Equal(t, "AMAZON RETAIL INDIA", purchase.Description)
	assert.Equal(t, "1299", purchase.Amount.String())
	assert.False(t, purchase.Credit)

	assert.Equal(t, "2025-10-15", payment.Date)
	assert.Equal(t, "PAYMENT RECEIVED", payment.Description)
	assert.Equal(t, "-10000", payment.Amount.String())
	assert.True(t, payment.Credit)

	assert.Greater(t, res.OverallConfidence, 0.0)
	assert.LessOrEqual(t, res.OverallConfidence, 0.99)
	for _, f := range res.Fields {
		assert.GreaterOrEqual(t, f.Confidence, 0.05)
		assert.LessOrEqual(t, f.Confidence, 0.99)
	}
}

func TestRun_UnnormalizableValueKeptWithLowerConfidence(t *testing.T) {
	e := newTestEngine(t)
	// Two docs that differ only in whether the due-date value parses.
	good := model.Document{Runs: []model.TextRun{
		run("Due Date", 10, 100, 60, 110),
		run("05/11/2025", 120, 100, 190, 110),
	}}
	bad := model.Document{Runs: []model.TextRun{
		run("Due Date", 10, 100, 60, 110),
		run("99/99/9999", 120, 100, 190, 110),
	}}

	goodRes, err := e.Run(context.Background(), good)
	require.NoError(t, err)
	badRes, err := e.Run(context.Background(), bad)
	require.NoError(t, err)

	gf, ok := goodRes.FieldByID(constants.FieldPaymentDueDate)
	require.True(t, ok)
	bf, ok := badRes.FieldByID(constants.FieldPaymentDueDate)
	require.True(t, ok)

	assert.True(t, gf.Normalized)
	assert.False(t, bf.Normalized)
	assert.Equal(t, "99/99/9999", bf.Value, "raw value carried through")
	assert.Less(t, bf.Confidence, gf.Confidence)
}

func TestSplitRow(t *testing.T) {
	date, desc, amount := splitRow(map[string]string{
		"Date":                "12/10/2025",
		"Transaction Details": "AMAZON",
		"Amount":              "1,299.00",
	})
	assert.Equal(t, "12/10/2025", date)
	assert.Equal(t, "AMAZON", desc)
	assert.Equal(t, "1,299.00", amount)

	// extra non-descriptive column does not displace the real description
	_, desc, _ = splitRow(map[string]string{
		"Date":          "12/10/2025",
		"Reward Points": "25",
		"Particulars":   "IRCTC",
		"Amount":        "850.00",
	})
	assert.Equal(t, "IRCTC", desc)
}

func TestRun_TransactionsWithoutDateOrAmountAreDropped(t *testing.T) {
	e := newTestEngine(t)
	doc := model.Document{Runs: []model.TextRun{
		run("Date", 40, 100, 70, 112),
		run("Description", 160, 100, 240, 112),
		run("Amount", 440, 100, 490, 112),
		// carried-forward banner row: description and amount, no date
		run("OPENING BALANCE", 160, 130, 280, 142),
		run("5,000.00", 435, 130, 495, 142),
		// complete row
		run("14/10/2025", 35, 150, 100, 162),
		run("GROCERY MART", 160, 150, 260, 162),
		run("725.40", 440, 150, 490, 162),
	}}

	res, err := e.Run(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "2025-10-14", res.Transactions[0].Date)
}
