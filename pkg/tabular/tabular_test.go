package tabular_test

import (
	"strconv"
	"testing"

	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/edwardanalytics/fpltable/pkg/tabular"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns(t *testing.T) {
	cols := tabular.NewColumns([]string{"\ufeffname", " GW ", "value", "name"})
	row := []string{" Saka ", "3", "85.0", "other"}

	assert.True(t, cols.Has("name"))
	assert.True(t, cols.Has("GW"))
	assert.False(t, cols.Has("team"))
	assert.Equal(t, "Saka", cols.String(row, "name"))
	assert.Equal(t, "", cols.String(row, "team"))
	assert.Equal(t, "", cols.String([]string{"x"}, "value"))

	gw, err := cols.Int(row, "GW")
	require.NoError(t, err)
	assert.Equal(t, 3, gw)

	val, err := cols.Float(row, "value")
	require.NoError(t, err)
	assert.Equal(t, 85.0, val)

	err = cols.Require("name", "GW")
	require.NoError(t, err)

	err = cols.Require("name", "total_points")
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.MissingColumnError, gnErr.Code)
	assert.Equal(t, []any{"total_points"}, gnErr.Vars)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   int
		isErr bool
	}{
		{"integer", "12", 12, false},
		{"negative", "-3", -3, false},
		{"empty", "", 0, false},
		{"spaces", "  7 ", 7, false},
		{"whole float", "3.0", 3, false},
		{"fraction", "3.5", 0, true},
		{"text", "abc", 0, true},
		{"infinity", "Inf", 0, true},
		{"negative infinity", "-Inf", 0, true},
		{"not a number", "NaN", 0, true},
		{"too large", "1e300", 0, true},
		{"too small", "-1e300", 0, true},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res, err := tabular.ParseInt(v.input)
			if v.isErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, v.res, res)
		})
	}
}

func TestParseIntRange(t *testing.T) {
	for _, v := range []string{"Inf", "1e300", "-1e19"} {
		_, err := tabular.ParseInt(v)
		assert.ErrorIs(t, err, strconv.ErrRange, v)
	}
}

func TestIntInvalid(t *testing.T) {
	cols := tabular.NewColumns([]string{"saves"})
	_, err := cols.Int([]string{"many"}, "saves")
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.InvalidFieldError, gnErr.Code)
	assert.Equal(t, []any{"saves", "many"}, gnErr.Vars)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1000", tabular.FormatFloat(1000))
	assert.Equal(t, "55.5", tabular.FormatFloat(55.5))
	assert.Equal(t, "0", tabular.FormatFloat(0))
}
