package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortReadingOrder(t *testing.T) {
	runs := []TextRun{
		{Text: "right", BBox: BBox{X0: 200, Y0: 10, X1: 250, Y1: 20}},
		{Text: "second-line", BBox: BBox{X0: 10, Y0: 40, X1: 80, Y1: 50}},
		{Text: "left", BBox: BBox{X0: 10, Y0: 10, X1: 60, Y1: 20}},
		{Text: "page-two", BBox: BBox{X0: 10, Y0: 5, X1: 60, Y1: 15}, Page: 1},
	}

	SortReadingOrder(runs)

	got := make([]string, 0, len(runs))
	for _, r := range runs {
		got = append(got, r.Text)
	}
	assert.Equal(t, []string{"left", "right", "second-line", "page-two"}, got)
}

func TestSortReadingOrder_StableOnTies(t *testing.T) {
	runs := []TextRun{
		{Text: "a", BBox: BBox{X0: 10, Y0: 10, X1: 20, Y1: 20}},
		{Text: "b", BBox: BBox{X0: 10, Y0: 10, X1: 20, Y1: 20}},
	}
	SortReadingOrder(runs)
	assert.Equal(t, "a", runs[0].Text)
	assert.Equal(t, "b", runs[1].Text)
}

func TestBBoxGeometry(t *testing.T) {
	b := BBox{X0: 0, Y0: 0, X1: 10, Y1: 20}
	assert.Equal(t, 5.0, b.CenterX())
	assert.Equal(t, 10.0, b.CenterY())
	assert.Equal(t, 10.0, b.Width())
	assert.Equal(t, 20.0, b.Height())

	o := BBox{X0: 3, Y0: 4, X1: 13, Y1: 24}
	// Both centers shift by (3,4): distance must be 5.
	assert.InDelta(t, 5.0, b.CenterDistance(o), 1e-9)
	assert.Equal(t, 4.0, b.VerticalGap(o))
}

func TestDocumentPages(t *testing.T) {
	doc := Document{Runs: []TextRun{
		{Text: "one", Page: 0},
		{Text: "two", Page: 1},
		{Text: "three", Page: 1},
	}}

	require.Equal(t, 2, doc.PageCount())
	assert.Len(t, doc.PageRuns(1), 2)
	assert.Len(t, doc.PageRuns(5), 0)
	assert.False(t, doc.Empty())
	assert.True(t, Document{}.Empty())
	assert.True(t, Document{Runs: []TextRun{{Text: ""}}}.Empty())
}
