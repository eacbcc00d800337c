package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubh2310-developer/cc-statement-parser/constants"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/model"
)

func docFromLines(lines ...string) model.Document {
	runs := make([]model.TextRun, 0, len(lines))
	for i, l := range lines {
		y := float64(10 * (i + 1))
		runs = append(runs, model.TextRun{
			Text: l,
			BBox: model.BBox{X0: 10, Y0: y, X1: 200, Y1: y + 10},
		})
	}
	return model.Document{Runs: runs}
}

func TestClassify_BuiltinIssuers(t *testing.T) {
	c := New(BuiltinSignatures())

	tests := []struct {
		name   string
		issuer string
		lines  []string
	}{
		{"hdfc", constants.IssuerHDFC, []string{"HDFC Bank Credit Card Statement", "visit hdfcbank.com"}},
		{"icici", constants.IssuerICICI, []string{"ICICI Bank Limited", "www.icicibank.com"}},
		{"axis", constants.IssuerAxis, []string{"Axis Bank MY ZONE credit card", "axisbank.com"}},
		{"sbi", constants.IssuerSBI, []string{"SBI Card statement", "sbicard.com", "GSTIN of SBI Card"}},
		{"amex", constants.IssuerAmex, []string{"American Express", "Membership Rewards summary"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, conf := c.Classify(docFromLines(tt.lines...))
			assert.Equal(t, tt.issuer, id)
			assert.GreaterOrEqual(t, conf, AcceptThreshold)
			assert.LessOrEqual(t, conf, 1.0)
		})
	}
}

func TestClassify_UnknownBelowThreshold(t *testing.T) {
	c := New(BuiltinSignatures())

	id, conf := c.Classify(docFromLines("Some Credit Union", "monthly statement"))
	assert.Equal(t, constants.IssuerUnknown, id)
	assert.Less(t, conf, AcceptThreshold)
}

func TestClassify_EmptyDocument(t *testing.T) {
	c := New(BuiltinSignatures())
	id, conf := c.Classify(model.Document{})
	assert.Equal(t, constants.IssuerUnknown, id)
	assert.Equal(t, 0.0, conf)
}

func TestClassify_TieBrokenByRegistrationOrder(t *testing.T) {
	sigs := []Signature{
		{IssuerID: "FIRST", MatchTerms: []string{"alpha bank"}, Weight: 1.0},
		{IssuerID: "SECOND", MatchTerms: []string{"alpha bank credit"}, Weight: 1.0},
	}
	c := New(sigs)

	// Both signatures score 1.0 on this document.
	for i := 0; i < 20; i++ {
		id, conf := c.Classify(docFromLines("alpha bank credit card statement"))
		require.Equal(t, "FIRST", id)
		require.Equal(t, 1.0, conf)
	}
}

func TestClassify_OnlyFirstPageCounts(t *testing.T) {
	c := New(BuiltinSignatures())

	doc := model.Document{Runs: []model.TextRun{
		{Text: "generic cover page", Page: 0, BBox: model.BBox{X0: 1, Y0: 1, X1: 2, Y1: 2}},
		{Text: "HDFC Bank hdfcbank.com", Page: 1, BBox: model.BBox{X0: 1, Y0: 1, X1: 2, Y1: 2}},
	}}
	id, _ := c.Classify(doc)
	assert.Equal(t, constants.IssuerUnknown, id)
}
