// Package score assigns per-field and overall confidence to extraction
// output. Scores reflect how the value was located, not how plausible it
// reads: a nearby proximity hit outranks a column hit, which outranks a
// table cell.
package score

import (
	"github.com/Shubh2310-developer/cc-statement-parser/internal/spatial"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/template"
)

// Config holds the scoring knobs. Zero values are replaced by defaults so
// callers can tune a single knob without restating the rest.
type Config struct {
	ProximityBase float64
	ColumnBase    float64
	TableBase     float64

	// FreeDistance is how far a proximity value may sit from its anchor
	// before the distance penalty starts accruing.
	FreeDistance float64
	// DistancePenalty is subtracted per point of distance past FreeDistance.
	DistancePenalty float64
	// MisalignPenalty is subtracted per point of horizontal misalignment for
	// column hits.
	MisalignPenalty float64
	// NormalizeFailPenalty is subtracted when the raw value resisted
	// normalization and is carried through as-is.
	NormalizeFailPenalty float64

	Floor   float64
	Ceiling float64
}

// DefaultConfig returns the tuning used in production.
func DefaultConfig() Config {
	return Config{
		ProximityBase:        0.95,
		ColumnBase:           0.90,
		TableBase:            0.85,
		FreeDistance:         20,
		DistancePenalty:      0.002,
		MisalignPenalty:      0.003,
		NormalizeFailPenalty: 0.25,
		Floor:                0.05,
		Ceiling:              0.99,
	}
}

// Scorer computes confidences from one immutable Config.
type Scorer struct {
	cfg Config
}

// NewScorer fills unset Config fields from DefaultConfig.
func NewScorer(cfg Config) *Scorer {
	def := DefaultConfig()
	if cfg.ProximityBase == 0 {
		cfg.ProximityBase = def.ProximityBase
	}
	if cfg.ColumnBase == 0 {
		cfg.ColumnBase = def.ColumnBase
	}
	if cfg.TableBase == 0 {
		cfg.TableBase = def.TableBase
	}
	if cfg.FreeDistance == 0 {
		cfg.FreeDistance = def.FreeDistance
	}
	if cfg.DistancePenalty == 0 {
		cfg.DistancePenalty = def.DistancePenalty
	}
	if cfg.MisalignPenalty == 0 {
		cfg.MisalignPenalty = def.MisalignPenalty
	}
	if cfg.NormalizeFailPenalty == 0 {
		cfg.NormalizeFailPenalty = def.NormalizeFailPenalty
	}
	if cfg.Floor == 0 {
		cfg.Floor = def.Floor
	}
	if cfg.Ceiling == 0 {
		cfg.Ceiling = def.Ceiling
	}
	return &Scorer{cfg: cfg}
}

// Field scores one located candidate. normalized reports whether
// postprocessing produced a canonical value.
func (s *Scorer) Field(c spatial.Candidate, normalized bool) float64 {
	var conf float64
	switch c.Strategy {
	case template.StrategyProximity:
		conf = s.cfg.ProximityBase
		if extra := c.Distance - s.cfg.FreeDistance; extra > 0 {
			conf -= extra * s.cfg.DistancePenalty
		}
	case template.StrategyColumn:
		conf = s.cfg.ColumnBase - c.Misalign*s.cfg.MisalignPenalty
	case template.StrategyTable:
		conf = s.cfg.TableBase
	default:
		conf = s.cfg.Floor
	}
	if !normalized {
		conf -= s.cfg.NormalizeFailPenalty
	}
	return s.clamp(conf)
}

// Row scores one table row; every cell shares the table base.
func (s *Scorer) Row() float64 {
	return s.clamp(s.cfg.TableBase)
}

// Overall is the arithmetic mean of the per-field confidences, or zero when
// nothing was extracted.
func (s *Scorer) Overall(fieldConfs []float64) float64 {
	if len(fieldConfs) == 0 {
		return 0
	}
	var sum float64
	for _, c := range fieldConfs {
		sum += c
	}
	return sum / float64(len(fieldConfs))
}

func (s *Scorer) clamp(v float64) float64 {
	if v < s.cfg.Floor {
		return s.cfg.Floor
	}
	if v > s.cfg.Ceiling {
		return s.cfg.Ceiling
	}
	return v
}
