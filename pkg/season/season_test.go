package season_test

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/edwardanalytics/fpltable/pkg/season"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		msg   string
		start int
		label string
	}{
		{"regular", 2023, "2023-24"},
		{"century wrap", 1999, "1999-00"},
		{"after wrap", 2000, "2000-01"},
		{"leading zero", 2010, "2010-11"},
		{"lower bound", 1000, "1000-01"},
		{"upper bound", 9999, "9999-00"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res, err := season.Label(v.start)
			require.NoError(t, err)
			assert.Equal(t, v.label, res)
		})
	}
}

// TestLabelShape checks the label pattern and suffix for every valid
// start year.
func TestLabelShape(t *testing.T) {
	re := regexp.MustCompile(`^\d{4}-\d{2}$`)
	for start := 1000; start <= 9999; start++ {
		res, err := season.Label(start)
		require.NoError(t, err)
		require.Regexp(t, re, res)
		require.Equal(t, fmt.Sprintf("%02d", (start+1)%100), res[5:])
	}
}

func TestLabelInvalid(t *testing.T) {
	for _, v := range []int{23, 202, 20234, 0, -2023, 999, 10000} {
		_, err := season.Label(v)
		require.Error(t, err, v)

		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, "should be gn.Error")
		assert.Equal(t, errcode.InvalidSeasonError, gnErr.Code)
		assert.Contains(t, gnErr.Msg, "four-digit")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		msg   string
		label string
		start int
		isErr bool
	}{
		{"valid", "2023-24", 2023, false},
		{"century", "1999-00", 1999, false},
		{"start year only", "2023", 0, true},
		{"wrong suffix", "2023-25", 0, true},
		{"not a number", "abcd-ef", 0, true},
		{"short year", "23-24", 0, true},
		{"long suffix", "2023-2024", 0, true},
		{"empty", "", 0, true},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res, err := season.Parse(v.label)
			if v.isErr {
				require.Error(t, err)
				gnErr, ok := err.(*gn.Error)
				require.True(t, ok)
				assert.Equal(t, errcode.InvalidSeasonError, gnErr.Code)
				assert.Equal(t, []any{v.label}, gnErr.Vars)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, v.start, res.Start())
			assert.Equal(t, v.label, res.String())
		})
	}
}

func TestCurrentStart(t *testing.T) {
	tests := []struct {
		msg  string
		date time.Time
		res  int
	}{
		{"january", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), 2023},
		{"july", time.Date(2024, time.July, 31, 23, 0, 0, 0, time.UTC), 2023},
		{"august", time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), 2024},
		{"december", time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), 2024},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, season.CurrentStart(v.date), v.msg)
	}

	s, err := season.Current(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2024-25", s.Label())
}

func TestRange(t *testing.T) {
	res, err := season.Range(2016, 2019)
	require.NoError(t, err)
	var labels []string
	for _, v := range res {
		labels = append(labels, v.Label())
	}
	assert.Equal(t, []string{"2016-17", "2017-18", "2018-19", "2019-20"}, labels)

	res, err = season.Range(2020, 2020)
	require.NoError(t, err)
	assert.Len(t, res, 1)

	_, err = season.Range(2020, 2016)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.InvalidSeasonRangeError, gnErr.Code)

	_, err = season.Range(16, 2020)
	require.Error(t, err)
	gnErr, ok = err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.InvalidSeasonError, gnErr.Code)
}
