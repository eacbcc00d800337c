package spatial

import (
	"math"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/Shubh2310-developer/cc-statement-parser/internal/model"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/template"
)

// column is one detected header cell.
type column struct {
	label   string
	centerX float64
}

// byTable finds a header band containing at least two of the template's
// column labels, then turns every subsequent band on the same page into a row
// record by mapping cells to the nearest header center. MaxYDistance acts as
// the band tolerance, MaxXMisalign bounds cell-to-column assignment.
func byTable(runs []model.TextRun, ft template.FieldTemplate) []RowRecord {
	bandTol := ft.MaxYDistance
	if bandTol <= 0 {
		bandTol = 8
	}

	for page := 0; ; page++ {
		pageRuns := runsOnPage(runs, page)
		if len(pageRuns) == 0 {
			if page > lastPage(runs) {
				return nil
			}
			continue
		}
		bands := bandByY(pageRuns, bandTol)
		headerIdx, cols := findHeaderBand(bands, ft.AnchorLabels)
		if headerIdx < 0 {
			continue
		}

		var rows []RowRecord
		for _, band := range bands[headerIdx+1:] {
			cells := make(map[string]string, len(cols))
			for _, r := range band {
				col, ok := nearestColumn(cols, r.BBox.CenterX(), ft.MaxXMisalign)
				if !ok {
					continue
				}
				if prev := cells[col.label]; prev != "" {
					cells[col.label] = prev + " " + strings.TrimSpace(r.Text)
				} else {
					cells[col.label] = strings.TrimSpace(r.Text)
				}
			}
			if len(cells) < 2 {
				continue
			}
			rows = append(rows, RowRecord{Cells: cells, Page: page, Y: band[0].BBox.Y0})
		}
		return rows
	}
}

func runsOnPage(runs []model.TextRun, page int) []model.TextRun {
	var out []model.TextRun
	for _, r := range runs {
		if r.Page == page {
			out = append(out, r)
		}
	}
	return out
}

func lastPage(runs []model.TextRun) int {
	max := 0
	for _, r := range runs {
		if r.Page > max {
			max = r.Page
		}
	}
	return max
}

// bandByY groups reading-ordered runs into horizontal bands: a run starts a
// new band when its top edge is more than tol below the band's first run.
func bandByY(runs []model.TextRun, tol float64) [][]model.TextRun {
	var bands [][]model.TextRun
	var current []model.TextRun
	var bandY float64

	for _, r := range runs {
		if len(current) == 0 {
			current = []model.TextRun{r}
			bandY = r.BBox.Y0
			continue
		}
		if r.BBox.Y0-bandY > tol {
			bands = append(bands, current)
			current = []model.TextRun{r}
			bandY = r.BBox.Y0
			continue
		}
		current = append(current, r)
	}
	if len(current) > 0 {
		bands = append(bands, current)
	}
	return bands
}

// findHeaderBand returns the first band where at least two of the expected
// column labels appear, together with the detected columns in label order.
// Header cells must match their label near-exactly: the loose containment
// used for anchors would mistake a summary line such as
// "Payment Due Date ... Total Amount Due" for a Date/Amount header.
func findHeaderBand(bands [][]model.TextRun, labels []string) (int, []column) {
	for bi, band := range bands {
		var cols []column
		for _, label := range labels {
			for _, r := range band {
				if headerCellMatches(r.Text, label) {
					cols = append(cols, column{label: label, centerX: r.BBox.CenterX()})
					break
				}
			}
		}
		if len(cols) >= 2 {
			return bi, cols
		}
	}
	return -1, nil
}

func headerCellMatches(cellText, label string) bool {
	ct := strings.ToLower(strings.TrimSpace(cellText))
	lb := strings.ToLower(label)
	if ct == lb {
		return true
	}
	if len(ct) < len(lb)-maxLabelEditDistance || len(ct) > len(lb)+maxLabelEditDistance+2 {
		return false
	}
	return fuzzy.LevenshteinDistance(ct, lb) <= maxLabelEditDistance
}

func nearestColumn(cols []column, centerX, maxMisalign float64) (column, bool) {
	best := column{}
	bestD := math.Inf(1)
	for _, c := range cols {
		d := math.Abs(c.centerX - centerX)
		if d < bestD {
			bestD = d
			best = c
		}
	}
	if math.IsInf(bestD, 1) || bestD > maxMisalign {
		return column{}, false
	}
	return best, true
}
