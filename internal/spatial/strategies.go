package spatial

import (
	"math"
	"strings"

	"github.com/Shubh2310-developer/cc-statement-parser/internal/model"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/template"
)

// byProximity locates the pattern-matching run nearest to an anchor label.
// Anchor labels are tried in declared order; the first label that yields a
// pattern-matching candidate wins. When the anchor run itself carries the
// value ("Payment Due Date: 05 Nov 2025") it is used at distance zero.
func byProximity(runs []model.TextRun, ft template.FieldTemplate) (Candidate, bool) {
	for _, label := range ft.AnchorLabels {
		for ai, anchor := range runs {
			if !anchorMatches(anchor.Text, label) {
				continue
			}
			if c, ok := inlineValue(anchor, label, ft); ok {
				return c, true
			}
			if c, ok := nearestValue(runs, ai, ft); ok {
				return c, true
			}
		}
	}
	return Candidate{}, false
}

// inlineValue checks whether the anchor run text contains the value beyond
// the label itself.
func inlineValue(anchor model.TextRun, label string, ft template.FieldTemplate) (Candidate, bool) {
	lower := strings.ToLower(anchor.Text)
	rest := anchor.Text
	if idx := strings.Index(lower, strings.ToLower(label)); idx >= 0 {
		rest = anchor.Text[idx+len(label):]
	}
	m := ft.ValuePattern.FindString(rest)
	if m == "" {
		return Candidate{}, false
	}
	return Candidate{
		FieldID:  ft.FieldID,
		RawValue: m,
		Snippet:  anchor.Text,
		Strategy: template.StrategyProximity,
		Distance: 0,
	}, true
}

// nearestValue scans every other run on the anchor's page that falls inside
// the template's distance box and matches the value pattern, keeping the one
// with the smallest center-to-center distance. Exact distance ties resolve to
// the earlier run in reading order: runs arrive sorted, and only a strictly
// smaller distance replaces the current best.
func nearestValue(runs []model.TextRun, anchorIdx int, ft template.FieldTemplate) (Candidate, bool) {
	anchor := runs[anchorIdx]
	best := Candidate{}
	bestDist := math.Inf(1)

	for i, r := range runs {
		if i == anchorIdx || r.Page != anchor.Page {
			continue
		}
		if math.Abs(r.BBox.CenterY()-anchor.BBox.CenterY()) > ft.MaxYDistance {
			continue
		}
		if math.Abs(r.BBox.CenterX()-anchor.BBox.CenterX()) > ft.MaxXMisalign {
			continue
		}
		m := ft.ValuePattern.FindString(r.Text)
		if m == "" {
			continue
		}
		d := anchor.BBox.CenterDistance(r.BBox)
		if d < bestDist {
			bestDist = d
			best = Candidate{
				FieldID:  ft.FieldID,
				RawValue: m,
				Snippet:  r.Text,
				Strategy: template.StrategyProximity,
				Distance: d,
			}
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// byColumn locates a header run and returns the first pattern-matching run
// whose horizontal center aligns under it, scanning top to bottom. Vertical
// distance is unbounded: column layouts separate header and value by
// arbitrary whitespace.
func byColumn(runs []model.TextRun, ft template.FieldTemplate) (Candidate, bool) {
	for _, label := range ft.AnchorLabels {
		for _, header := range runs {
			if !anchorMatches(header.Text, label) {
				continue
			}
			hc := header.BBox.CenterX()
			// Runs are in reading order, so the first hit below the header is
			// the topmost aligned value.
			for _, r := range runs {
				if r.Page != header.Page || r.BBox.Y0 <= header.BBox.Y1 {
					continue
				}
				misalign := math.Abs(r.BBox.CenterX() - hc)
				if misalign > ft.MaxXMisalign {
					continue
				}
				m := ft.ValuePattern.FindString(r.Text)
				if m == "" {
					continue
				}
				return Candidate{
					FieldID:  ft.FieldID,
					RawValue: m,
					Snippet:  r.Text,
					Strategy: template.StrategyColumn,
					Misalign: misalign,
				}, true
			}
		}
	}
	return Candidate{}, false
}
