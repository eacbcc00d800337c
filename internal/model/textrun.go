// Package model holds the canonical representation of decoded page content:
// positioned text runs in page coordinate space (origin top-left, y increasing
// downward). Everything downstream of the PDF decoder consumes this shape.
package model

import (
	"math"
	"sort"
)

// BBox is an axis-aligned bounding box in page coordinates.
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

func (b BBox) Width() float64  { return b.X1 - b.X0 }
func (b BBox) Height() float64 { return b.Y1 - b.Y0 }

// CenterX returns the horizontal center of the box.
func (b BBox) CenterX() float64 { return (b.X0 + b.X1) / 2 }

// CenterY returns the vertical center of the box.
func (b BBox) CenterY() float64 { return (b.Y0 + b.Y1) / 2 }

// CenterDistance is the Euclidean distance between the centers of two boxes.
func (b BBox) CenterDistance(o BBox) float64 {
	dx := b.CenterX() - o.CenterX()
	dy := b.CenterY() - o.CenterY()
	return math.Hypot(dx, dy)
}

// VerticalGap is the distance between the top edges of two boxes.
// Positive when o sits below b.
func (b BBox) VerticalGap(o BBox) float64 { return o.Y0 - b.Y0 }

// TextRun is one decoded text fragment. Runs are immutable: they are produced
// once per document by the decoder and only read afterwards.
type TextRun struct {
	Text string `json:"text"`
	BBox BBox   `json:"bbox"`
	Page int    `json:"page"`
}

// Document is a finite ordered sequence of text runs grouped by page.
type Document struct {
	Runs []TextRun
}

// Empty reports whether the document carries no text at all.
func (d Document) Empty() bool {
	for _, r := range d.Runs {
		if r.Text != "" {
			return false
		}
	}
	return true
}

// PageRuns returns the runs belonging to the given zero-based page, in
// whatever order they currently hold.
func (d Document) PageRuns(page int) []TextRun {
	var out []TextRun
	for _, r := range d.Runs {
		if r.Page == page {
			out = append(out, r)
		}
	}
	return out
}

// PageCount returns 1 + the highest page index seen, or 0 for no runs.
func (d Document) PageCount() int {
	max := -1
	for _, r := range d.Runs {
		if r.Page > max {
			max = r.Page
		}
	}
	return max + 1
}

// SortReadingOrder sorts runs in place by page, then top-to-bottom, then
// left-to-right. The sort is stable so equal positions keep decoder order.
func SortReadingOrder(runs []TextRun) {
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Page != runs[j].Page {
			return runs[i].Page < runs[j].Page
		}
		if runs[i].BBox.Y0 != runs[j].BBox.Y0 {
			return runs[i].BBox.Y0 < runs[j].BBox.Y0
		}
		return runs[i].BBox.X0 < runs[j].BBox.X0
	})
}
