package template

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubh2310-developer/cc-statement-parser/constants"
)

func TestBuiltinSetsValidate(t *testing.T) {
	r, err := NewRegistry(BuiltinSets()...)
	require.NoError(t, err)

	for _, issuer := range constants.Issuers {
		set := r.ForIssuer(issuer)
		assert.Equal(t, issuer, set.IssuerID, "missing builtin set for %s", issuer)
	}

	// Unknown issuers fall back to the generic set.
	fb := r.ForIssuer("SOME_NEW_BANK")
	assert.Equal(t, constants.IssuerUnknown, fb.IssuerID)
	assert.NotEmpty(t, fb.Fields)
}

func TestTemplateSetValidate(t *testing.T) {
	pattern := regexp.MustCompile(`\d+`)

	t.Run("duplicate field ids rejected", func(t *testing.T) {
		s := TemplateSet{IssuerID: "X", Fields: []FieldTemplate{
			{FieldID: "a", Strategy: StrategyProximity, AnchorLabels: []string{"A"}, ValuePattern: pattern},
			{FieldID: "a", Strategy: StrategyProximity, AnchorLabels: []string{"B"}, ValuePattern: pattern},
		}}
		assert.Error(t, s.Validate())
	})

	t.Run("negative distance rejected", func(t *testing.T) {
		s := TemplateSet{IssuerID: "X", Fields: []FieldTemplate{
			{FieldID: "a", Strategy: StrategyProximity, AnchorLabels: []string{"A"},
				MaxYDistance: -1, ValuePattern: pattern},
		}}
		assert.Error(t, s.Validate())
	})

	t.Run("unknown strategy rejected", func(t *testing.T) {
		s := TemplateSet{IssuerID: "X", Fields: []FieldTemplate{
			{FieldID: "a", Strategy: "MAGIC", AnchorLabels: []string{"A"}, ValuePattern: pattern},
		}}
		assert.Error(t, s.Validate())
	})

	t.Run("table strategy needs no value pattern", func(t *testing.T) {
		s := TemplateSet{IssuerID: "X", Fields: []FieldTemplate{
			{FieldID: "tx", Strategy: StrategyTable, AnchorLabels: []string{"Date", "Amount"}},
		}}
		assert.NoError(t, s.Validate())
	})
}

func TestValuePatternSpecificity(t *testing.T) {
	// A same-row date and amount must never both satisfy one pattern.
	dates := []string{"25-12-2023", "25/12/2023", "25.12.2023", "05 Nov 2025", "2025-11-05"}
	amounts := []string{"1,234.50", "₹45,320.00", "Rs. 1,299.00", "999.95", "1,234.50 CR"}

	for _, d := range dates {
		assert.True(t, datePattern.MatchString(d), "date pattern must match %q", d)
		assert.False(t, amountPattern.MatchString(d), "amount pattern must not match %q", d)
	}
	for _, a := range amounts {
		assert.True(t, amountPattern.MatchString(a), "amount pattern must match %q", a)
		assert.False(t, datePattern.MatchString(a), "date pattern must not match %q", a)
	}
}

func TestLoadFileAndMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.yaml")
	yamlDoc := `
sets:
  - issuer: HDFC
    fields:
      - field: payment_due_date
        strategy: PROXIMITY
        anchors: ["Payment Due Date"]
        max_y_distance: 75
        max_x_misalign: 400
        value_pattern: '\d{2}/\d{2}/\d{4}'
        postprocess: DATE
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

	overrides, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, overrides, 1)

	builtinHDFC := hdfcSet()
	merged := MergeOverrides(BuiltinSets(), overrides)
	r, err := NewRegistry(merged...)
	require.NoError(t, err)

	// The override replaces the one field it names; every other builtin
	// field survives untouched.
	hdfc := r.ForIssuer(constants.IssuerHDFC)
	require.Len(t, hdfc.Fields, len(builtinHDFC.Fields))
	var f FieldTemplate
	found := false
	for _, ft := range hdfc.Fields {
		if ft.FieldID == constants.FieldPaymentDueDate {
			f, found = ft, true
		}
	}
	require.True(t, found)
	assert.Equal(t, 75.0, f.MaxYDistance)
	assert.True(t, f.ValuePattern.MatchString("05/11/2025"))

	totalDue := false
	for _, ft := range hdfc.Fields {
		if ft.FieldID == constants.FieldTotalDue {
			totalDue = true
			assert.Equal(t, 50.0, ft.MaxYDistance)
		}
	}
	assert.True(t, totalDue)

	// Other issuers keep their builtin sets.
	assert.Greater(t, len(r.ForIssuer(constants.IssuerSBI).Fields), 1)
}

func TestMergeOverrides_FieldLevel(t *testing.T) {
	base := []TemplateSet{{
		IssuerID: "A",
		Fields: []FieldTemplate{
			{FieldID: "x", Strategy: StrategyProximity, AnchorLabels: []string{"X"}, ValuePattern: datePattern, MaxYDistance: 10},
			{FieldID: "y", Strategy: StrategyProximity, AnchorLabels: []string{"Y"}, ValuePattern: datePattern, MaxYDistance: 20},
		},
	}}
	overrides := []TemplateSet{
		{
			IssuerID: "A",
			Fields: []FieldTemplate{
				{FieldID: "y", Strategy: StrategyProximity, AnchorLabels: []string{"Y2"}, ValuePattern: amountPattern, MaxYDistance: 99},
				{FieldID: "z", Strategy: StrategyProximity, AnchorLabels: []string{"Z"}, ValuePattern: cardPattern, MaxYDistance: 5},
			},
		},
		{
			IssuerID: "B",
			Fields: []FieldTemplate{
				{FieldID: "w", Strategy: StrategyProximity, AnchorLabels: []string{"W"}, ValuePattern: datePattern, MaxYDistance: 1},
			},
		},
	}

	merged := MergeOverrides(base, overrides)
	require.Len(t, merged, 2)

	a := merged[0]
	require.Equal(t, "A", a.IssuerID)
	require.Len(t, a.Fields, 3)
	assert.Equal(t, "x", a.Fields[0].FieldID)
	assert.Equal(t, 10.0, a.Fields[0].MaxYDistance)
	assert.Equal(t, "y", a.Fields[1].FieldID)
	assert.Equal(t, 99.0, a.Fields[1].MaxYDistance)
	assert.Equal(t, []string{"Y2"}, a.Fields[1].AnchorLabels)
	assert.Equal(t, "z", a.Fields[2].FieldID)

	// An issuer with no base set arrives whole.
	b := merged[1]
	assert.Equal(t, "B", b.IssuerID)
	require.Len(t, b.Fields, 1)
	assert.Equal(t, "w", b.Fields[0].FieldID)
}

func TestLoadFile_BadPattern(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sets:
  - issuer: HDFC
    fields:
      - field: total_due
        strategy: PROXIMITY
        anchors: ["Total"]
        value_pattern: '('
`), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
