package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shubh2310-developer/cc-statement-parser/internal/spatial"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/template"
)

func TestField_StrategyBases(t *testing.T) {
	s := NewScorer(Config{})

	prox := s.Field(spatial.Candidate{Strategy: template.StrategyProximity, Distance: 5}, true)
	col := s.Field(spatial.Candidate{Strategy: template.StrategyColumn}, true)
	tab := s.Field(spatial.Candidate{Strategy: template.StrategyTable}, true)

	assert.Equal(t, 0.95, prox)
	assert.Equal(t, 0.90, col)
	assert.Equal(t, 0.85, tab)
}

func TestField_DistancePenaltyIsMonotonic(t *testing.T) {
	s := NewScorer(Config{})
	prev := 1.0
	for _, d := range []float64{0, 10, 20, 40, 80, 160, 320, 10000} {
		c := s.Field(spatial.Candidate{Strategy: template.StrategyProximity, Distance: d}, true)
		assert.LessOrEqual(t, c, prev, "confidence must not rise with distance %v", d)
		prev = c
	}
	// within the free band the base is untouched
	assert.Equal(t, 0.95, s.Field(spatial.Candidate{Strategy: template.StrategyProximity, Distance: 20}, true))
	// far past it the floor holds
	assert.Equal(t, 0.05, s.Field(spatial.Candidate{Strategy: template.StrategyProximity, Distance: 1e6}, true))
}

func TestField_MisalignPenalty(t *testing.T) {
	s := NewScorer(Config{})
	aligned := s.Field(spatial.Candidate{Strategy: template.StrategyColumn, Misalign: 0}, true)
	skewed := s.Field(spatial.Candidate{Strategy: template.StrategyColumn, Misalign: 30}, true)
	assert.Equal(t, 0.90, aligned)
	assert.InDelta(t, 0.81, skewed, 1e-9)
}

func TestField_NormalizationFailureCostsConfidence(t *testing.T) {
	s := NewScorer(Config{})
	ok := s.Field(spatial.Candidate{Strategy: template.StrategyProximity}, true)
	bad := s.Field(spatial.Candidate{Strategy: template.StrategyProximity}, false)
	assert.InDelta(t, 0.25, ok-bad, 1e-9)
}

func TestField_ClampBounds(t *testing.T) {
	s := NewScorer(Config{Ceiling: 0.99, Floor: 0.05, ProximityBase: 5.0, TableBase: 0.01})
	assert.Equal(t, 0.99, s.Field(spatial.Candidate{Strategy: template.StrategyProximity}, true))
	assert.Equal(t, 0.05, s.Field(spatial.Candidate{Strategy: template.StrategyTable}, true))
}

func TestOverall(t *testing.T) {
	s := NewScorer(Config{})
	assert.Equal(t, 0.0, s.Overall(nil))
	assert.Equal(t, 0.0, s.Overall([]float64{}))
	assert.InDelta(t, 0.90, s.Overall([]float64{0.95, 0.85}), 1e-9)
	assert.InDelta(t, 0.95, s.Overall([]float64{0.95}), 1e-9)
}

func TestConfigDefaultsFillGaps(t *testing.T) {
	s := NewScorer(Config{ColumnBase: 0.5})
	assert.Equal(t, 0.5, s.Field(spatial.Candidate{Strategy: template.StrategyColumn}, true))
	// untouched knobs keep their defaults
	assert.Equal(t, 0.95, s.Field(spatial.Candidate{Strategy: template.StrategyProximity}, true))
}
