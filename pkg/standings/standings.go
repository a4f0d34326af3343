// Package standings extracts the official league table from the
// season page of an encyclopedia-style HTML document.
package standings

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Entry is one club in the official final table.
type Entry struct {
	Pos  int
	Team string
	Pts  int
}

// Columns is the header of the standings artifact.
var Columns = []string{"Pos", "Team", "Pts"}

var (
	annotationRe = regexp.MustCompile(`(?i) \((c|r)\)`)
	footnoteRe   = regexp.MustCompile(`\[.*?\]`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

// Parse finds the first wikitable that has position, team and points
// columns and returns its rows. Rows whose position or points are not
// integers, such as legends, are skipped.
func Parse(r io.Reader) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, ParseHTMLError(err)
	}

	var res []Entry
	found := false
	doc.Find("table.wikitable").EachWithBreak(
		func(_ int, tbl *goquery.Selection) bool {
			grid := tableGrid(tbl)
			entries, ok := extract(grid)
			if !ok {
				return true
			}
			res = entries
			found = true
			return false
		},
	)
	if !found {
		return nil, NoStandingsTableFoundError()
	}
	return res, nil
}

// CleanTeam removes champion and relegation markers, footnotes and
// surrounding space from a team cell.
func CleanTeam(s string) string {
	s = annotationRe.ReplaceAllString(s, "")
	return CleanCell(s)
}

// CleanCell removes footnote markers and surrounding space.
func CleanCell(s string) string {
	s = footnoteRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// normalizeHeader turns "Team v t e" or "Pts[a]" into "Teamvte" and "Pts".
func normalizeHeader(s string) string {
	s = footnoteRe.ReplaceAllString(s, "")
	return spaceRe.ReplaceAllString(s, "")
}

func extract(grid [][]string) ([]Entry, bool) {
	for i, row := range grid {
		posIdx, teamIdx, ptsIdx := -1, -1, -1
		for j, cell := range row {
			h := normalizeHeader(cell)
			switch {
			case h == "Pos" && posIdx < 0:
				posIdx = j
			case h == "Pts" && ptsIdx < 0:
				ptsIdx = j
			case (h == "Team" || h == "Teamvte") && teamIdx < 0:
				teamIdx = j
			}
		}
		if posIdx < 0 || ptsIdx < 0 || teamIdx < 0 {
			continue
		}
		return entries(grid[i+1:], posIdx, teamIdx, ptsIdx), true
	}
	return nil, false
}

func entries(rows [][]string, posIdx, teamIdx, ptsIdx int) []Entry {
	res := make([]Entry, 0, len(rows))
	last := max(posIdx, teamIdx, ptsIdx)
	for _, row := range rows {
		if len(row) <= last {
			continue
		}
		pos, err := strconv.Atoi(CleanCell(row[posIdx]))
		if err != nil {
			continue
		}
		pts, err := strconv.Atoi(normalizeNumber(CleanCell(row[ptsIdx])))
		if err != nil {
			continue
		}
		res = append(res, Entry{
			Pos:  pos,
			Team: CleanTeam(row[teamIdx]),
			Pts:  pts,
		})
	}
	return res
}

// normalizeNumber replaces the typographic minus used for point
// deductions.
func normalizeNumber(s string) string {
	return strings.ReplaceAll(s, "\u2212", "-")
}
