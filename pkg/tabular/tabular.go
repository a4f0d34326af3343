// Package tabular provides column lookup and lenient number parsing for
// CSV-like tables with a header row.
package tabular

import (
	"math"
	"strconv"
	"strings"
)

// Columns maps column names of a header to their positions.
type Columns struct {
	idx map[string]int
}

// NewColumns indexes a header row. Names are trimmed and a leading
// byte order mark is dropped. The first of duplicate names wins.
func NewColumns(header []string) Columns {
	res := Columns{idx: make(map[string]int, len(header))}
	for i, v := range header {
		if i == 0 {
			v = strings.TrimPrefix(v, "\ufeff")
		}
		v = strings.TrimSpace(v)
		if _, ok := res.idx[v]; !ok {
			res.idx[v] = i
		}
	}
	return res
}

// Has reports if the header contains the column.
func (c Columns) Has(name string) bool {
	_, ok := c.idx[name]
	return ok
}

// Require returns an error for the first missing column.
func (c Columns) Require(names ...string) error {
	for _, v := range names {
		if !c.Has(v) {
			return MissingColumnError(v)
		}
	}
	return nil
}

// String returns the trimmed cell of the column, or an empty string when
// the column or the cell is absent.
func (c Columns) String(row []string, name string) string {
	i, ok := c.idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Int parses the cell of the column as an integer. Empty cells are 0.
// Whole floats such as "3.0" are accepted.
func (c Columns) Int(row []string, name string) (int, error) {
	s := c.String(row, name)
	res, err := ParseInt(s)
	if err != nil {
		return 0, InvalidFieldError(name, s, err)
	}
	return res, nil
}

// Float parses the cell of the column as a float. Empty cells are 0.
func (c Columns) Float(row []string, name string) (float64, error) {
	s := c.String(row, name)
	if s == "" {
		return 0, nil
	}
	res, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, InvalidFieldError(name, s, err)
	}
	return res, nil
}

// ParseInt is a lenient integer parser used for stat cells.
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if res, err := strconv.Atoi(s); err == nil {
		return res, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, strconv.ErrSyntax
	}
	// -MinInt is 2^63, exact in float64 unlike MaxInt.
	if f < math.MinInt || f >= -math.MinInt {
		return 0, strconv.ErrRange
	}
	return int(f), nil
}

// FormatFloat renders a float without trailing zeros.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
