package spatial

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubh2310-developer/cc-statement-parser/internal/common"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/model"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/template"
)

var dateRe = regexp.MustCompile(`\d{2}/\d{2}/\d{4}|\d{1,2} [A-Za-z]{3} \d{4}`)

func run(text string, x0, y0, x1, y1 float64) model.TextRun {
	return model.TextRun{Text: text, BBox: model.BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}}
}

func proximityTemplate() template.FieldTemplate {
	return template.FieldTemplate{
		FieldID:      "payment_due_date",
		Strategy:     template.StrategyProximity,
		AnchorLabels: []string{"Payment Due Date", "Due Date"},
		MaxYDistance: 50,
		MaxXMisalign: 300,
		ValuePattern: dateRe,
		Postprocess:  template.PostprocessDate,
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	set := template.TemplateSet{IssuerID: "X", Fields: []template.FieldTemplate{proximityTemplate()}}

	_, err := Extract(model.Document{}, set)
	require.Error(t, err)
	assert.True(t, common.IsInputError(err))

	_, err = Extract(model.Document{Runs: []model.TextRun{run("", 0, 0, 1, 1)}}, set)
	require.Error(t, err)
	assert.True(t, common.IsInputError(err))
}

func TestExtract_EmptyTemplateSet(t *testing.T) {
	doc := model.Document{Runs: []model.TextRun{run("hello", 0, 0, 10, 10)}}
	_, err := Extract(doc, template.TemplateSet{IssuerID: "X"})
	require.Error(t, err)
	assert.True(t, common.IsInputError(err))
}

func TestProximity_ValueRightOfLabel(t *testing.T) {
	doc := model.Document{Runs: []model.TextRun{
		run("Payment Due Date", 10, 100, 120, 112),
		run("05/11/2025", 200, 100, 270, 112),
		run("some noise", 10, 300, 120, 312),
	}}
	set := template.TemplateSet{IssuerID: "X", Fields: []template.FieldTemplate{proximityTemplate()}}

	got, err := Extract(doc, set)
	require.NoError(t, err)
	c, ok := got.Fields["payment_due_date"]
	require.True(t, ok)
	assert.Equal(t, "05/11/2025", c.RawValue)
	assert.Equal(t, template.StrategyProximity, c.Strategy)
	assert.Greater(t, c.Distance, 0.0)
}

func TestProximity_InlineLabelAndValue(t *testing.T) {
	doc := model.Document{Runs: []model.TextRun{
		run("Payment Due Date: 05 Nov 2025", 10, 10, 200, 20),
	}}
	set := template.TemplateSet{IssuerID: "X", Fields: []template.FieldTemplate{proximityTemplate()}}

	got, err := Extract(doc, set)
	require.NoError(t, err)
	c, ok := got.Fields["payment_due_date"]
	require.True(t, ok)
	assert.Equal(t, "05 Nov 2025", c.RawValue)
	assert.Equal(t, 0.0, c.Distance)
}

func TestProximity_PrefersNearestCandidate(t *testing.T) {
	doc := model.Document{Runs: []model.TextRun{
		run("Due Date", 10, 100, 60, 110),
		run("01/01/2030", 10, 140, 80, 150), // 40 below
		run("05/11/2025", 10, 115, 80, 125), // 15 below: nearer
	}}
	set := template.TemplateSet{IssuerID: "X", Fields: []template.FieldTemplate{proximityTemplate()}}

	got, err := Extract(doc, set)
	require.NoError(t, err)
	assert.Equal(t, "05/11/2025", got.Fields["payment_due_date"].RawValue)
}

func TestProximity_TieBrokenByReadingOrder(t *testing.T) {
	// Two candidates the same distance above and below the anchor. The upper
	// one comes first in reading order and must win, repeatably.
	doc := model.Document{Runs: []model.TextRun{
		run("10/10/2030", 10, 70, 80, 80),
		run("Due Date", 10, 100, 80, 110),
		run("11/11/2031", 10, 130, 80, 140),
	}}
	set := template.TemplateSet{IssuerID: "X", Fields: []template.FieldTemplate{proximityTemplate()}}

	for i := 0; i < 25; i++ {
		got, err := Extract(doc, set)
		require.NoError(t, err)
		require.Equal(t, "10/10/2030", got.Fields["payment_due_date"].RawValue)
	}
}

func TestProximity_RespectsDistanceBox(t *testing.T) {
	doc := model.Document{Runs: []model.TextRun{
		run("Due Date", 10, 100, 60, 110),
		run("05/11/2025", 10, 400, 80, 410), // far outside MaxYDistance
	}}
	set := template.TemplateSet{IssuerID: "X", Fields: []template.FieldTemplate{proximityTemplate()}}

	got, err := Extract(doc, set)
	require.NoError(t, err)
	_, ok := got.Fields["payment_due_date"]
	assert.False(t, ok, "field must be absent, not guessed")
}

func TestProximity_IgnoresOtherPages(t *testing.T) {
	doc := model.Document{Runs: []model.TextRun{
		{Text: "Due Date", BBox: model.BBox{X0: 10, Y0: 100, X1: 60, Y1: 110}, Page: 0},
		{Text: "05/11/2025", BBox: model.BBox{X0: 10, Y0: 110, X1: 80, Y1: 120}, Page: 1},
	}}
	set := template.TemplateSet{IssuerID: "X", Fields: []template.FieldTemplate{proximityTemplate()}}

	got, err := Extract(doc, set)
	require.NoError(t, err)
	_, ok := got.Fields["payment_due_date"]
	assert.False(t, ok)
}

func TestProximity_FuzzyAnchorSurvivesOCRDamage(t *testing.T) {
	doc := model.Document{Runs: []model.TextRun{
		run("Paymenl Due Dale", 10, 100, 120, 112), // two damaged characters
		run("05/11/2025", 200, 100, 270, 112),
	}}
	set := template.TemplateSet{IssuerID: "X", Fields: []template.FieldTemplate{proximityTemplate()}}

	got, err := Extract(doc, set)
	require.NoError(t, err)
	c, ok := got.Fields["payment_due_date"]
	require.True(t, ok)
	assert.Equal(t, "05/11/2025", c.RawValue)
}

func TestColumn_ValueAlignedUnderHeader(t *testing.T) {
	amountRe := regexp.MustCompile(`\d{1,3}(,\d{2,3})*\.\d{2}`)
	doc := model.Document{Runs: []model.TextRun{
		run("Total Amount Due", 100, 50, 220, 62), // center 160
		run("unrelated", 400, 80, 500, 92),
		run("45,320.00", 130, 400, 195, 412), // center ~162, far below but aligned
	}}
	set := template.TemplateSet{IssuerID: "X", Fields: []template.FieldTemplate{{
		FieldID:      "total_due",
		Strategy:     template.StrategyColumn,
		AnchorLabels: []string{"Total Amount Due"},
		MaxXMisalign: 40,
		ValuePattern: amountRe,
		Postprocess:  template.PostprocessCurrency,
	}}}

	got, err := Extract(doc, set)
	require.NoError(t, err)
	c, ok := got.Fields["total_due"]
	require.True(t, ok)
	assert.Equal(t, "45,320.00", c.RawValue)
	assert.Equal(t, template.StrategyColumn, c.Strategy)
	assert.InDelta(t, 2.5, c.Misalign, 0.01)
}

func TestColumn_SkipsMisalignedValues(t *testing.T) {
	amountRe := regexp.MustCompile(`\d+\.\d{2}`)
	doc := model.Document{Runs: []model.TextRun{
		run("Minimum Amount Due", 100, 50, 220, 62),
		run("99.00", 400, 80, 440, 92), // aligned with nothing
	}}
	set := template.TemplateSet{IssuerID: "X", Fields: []template.FieldTemplate{{
		FieldID:      "minimum_due",
		Strategy:     template.StrategyColumn,
		AnchorLabels: []string{"Minimum Amount Due"},
		MaxXMisalign: 40,
		ValuePattern: amountRe,
	}}}

	got, err := Extract(doc, set)
	require.NoError(t, err)
	_, ok := got.Fields["minimum_due"]
	assert.False(t, ok)
}

func TestTable_RowsDecomposedByColumn(t *testing.T) {
	doc := model.Document{Runs: []model.TextRun{
		// Header band.
		run("Date", 20, 100, 50, 110),
		run("Transaction Details", 150, 100, 260, 110),
		run("Amount", 400, 100, 450, 110),
		// Row 1.
		run("12/07/2025", 15, 130, 70, 140),
		run("AMAZON RETAIL", 150, 130, 250, 140),
		run("1,299.00", 405, 130, 450, 140),
		// Row 2.
		run("15/07/2025", 15, 150, 70, 160),
		run("IRCTC", 160, 150, 200, 160),
		run("850.00 CR", 395, 150, 455, 160),
		// Footer far below, maps to nothing.
		run("Page 1 of 2", 200, 700, 280, 710),
	}}
	set := template.TemplateSet{IssuerID: "X", Fields: []template.FieldTemplate{{
		FieldID:      "transactions",
		Strategy:     template.StrategyTable,
		AnchorLabels: []string{"Date", "Transaction Details", "Amount"},
		MaxYDistance: 8,
		MaxXMisalign: 120,
	}}}

	got, err := Extract(doc, set)
	require.NoError(t, err)
	require.Len(t, got.Rows, 2)

	assert.Equal(t, "12/07/2025", got.Rows[0].Cells["Date"])
	assert.Equal(t, "AMAZON RETAIL", got.Rows[0].Cells["Transaction Details"])
	assert.Equal(t, "1,299.00", got.Rows[0].Cells["Amount"])

	assert.Equal(t, "15/07/2025", got.Rows[1].Cells["Date"])
	assert.Equal(t, "IRCTC", got.Rows[1].Cells["Transaction Details"])
	assert.Equal(t, "850.00 CR", got.Rows[1].Cells["Amount"])
}

func TestTable_NoHeaderMeansNoRows(t *testing.T) {
	doc := model.Document{Runs: []model.TextRun{
		run("just prose on a page", 10, 10, 200, 22),
	}}
	set := template.TemplateSet{IssuerID: "X", Fields: []template.FieldTemplate{{
		FieldID:      "transactions",
		Strategy:     template.StrategyTable,
		AnchorLabels: []string{"Date", "Amount"},
		MaxYDistance: 8,
		MaxXMisalign: 120,
	}}}

	got, err := Extract(doc, set)
	require.NoError(t, err)
	assert.Empty(t, got.Rows)
}

func TestTable_SummaryLineIsNotAHeader(t *testing.T) {
	// "Payment Due Date" and "Total Amount Due" contain the words Date and
	// Amount, but they are summary labels, not a table header.
	doc := model.Document{Runs: []model.TextRun{
		run("Payment Due Date", 20, 50, 130, 60),
		run("Total Amount Due", 300, 50, 420, 60),
		run("05/11/2025", 20, 70, 90, 80),
		run("45,320.00", 300, 70, 365, 80),
	}}
	set := template.TemplateSet{IssuerID: "X", Fields: []template.FieldTemplate{{
		FieldID:      "transactions",
		Strategy:     template.StrategyTable,
		AnchorLabels: []string{"Date", "Description", "Amount"},
		MaxYDistance: 8,
		MaxXMisalign: 120,
	}}}

	got, err := Extract(doc, set)
	require.NoError(t, err)
	assert.Empty(t, got.Rows)
}

func TestExtract_NeverPanicsOnWellFormedInput(t *testing.T) {
	set := template.TemplateSet{IssuerID: "X", Fields: []template.FieldTemplate{proximityTemplate()}}
	docs := []model.Document{
		{Runs: []model.TextRun{run("one lonely run", 5, 5, 50, 15)}},
		{Runs: []model.TextRun{run("Due Date", 5, 5, 50, 15)}},   // anchor, no value
		{Runs: []model.TextRun{run("05/11/2025", 5, 5, 50, 15)}}, // value, no anchor
	}
	for _, doc := range docs {
		got, err := Extract(doc, set)
		require.NoError(t, err)
		assert.NotNil(t, got.Fields)
	}
}
