package standings

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type span struct {
	text string
	left int
}

// tableGrid flattens a table into rows of cell texts with colspan and
// rowspan cells repeated, so every row lines up with its header.
func tableGrid(tbl *goquery.Selection) [][]string {
	var grid [][]string
	pending := make(map[int]span)

	rows := tbl.Find("tr").FilterFunction(
		func(_ int, tr *goquery.Selection) bool {
			return tr.Closest("table").IsSelection(tbl)
		},
	)
	rows.Each(func(_ int, tr *goquery.Selection) {
		var row []string
		col := 0
		fill := func() {
			for {
				p, ok := pending[col]
				if !ok {
					return
				}
				row = append(row, p.text)
				p.left--
				if p.left == 0 {
					delete(pending, col)
				} else {
					pending[col] = p
				}
				col++
			}
		}

		tr.ChildrenFiltered("th, td").Each(
			func(_ int, cell *goquery.Selection) {
				fill()
				text := cellText(cell)
				cs := attrInt(cell, "colspan")
				rs := attrInt(cell, "rowspan")
				for range cs {
					row = append(row, text)
					if rs > 1 {
						pending[col] = span{text: text, left: rs - 1}
					}
					col++
				}
			},
		)
		fill()
		grid = append(grid, row)
	})
	return grid
}

func cellText(cell *goquery.Selection) string {
	s := strings.ReplaceAll(cell.Text(), "\u00a0", " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

func attrInt(cell *goquery.Selection, name string) int {
	v, ok := cell.Attr(name)
	if !ok {
		return 1
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || i < 1 {
		return 1
	}
	return i
}
