package iostandings_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edwardanalytics/fpltable/internal/iofetch"
	"github.com/edwardanalytics/fpltable/internal/iostandings"
	"github.com/edwardanalytics/fpltable/pkg/config"
	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/edwardanalytics/fpltable/pkg/pipeline"
	"github.com/edwardanalytics/fpltable/pkg/season"
	"github.com/edwardanalytics/fpltable/pkg/standings"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pages = map[string]string{
	"/wiki/2022-23_Premier_League": `<html><body>
<table class="wikitable"><tr><th>Pos</th><th>Team</th><th>Pld</th><th>Pts</th></tr>
<tr><td>1</td><td>Manchester City (C)</td><td>38</td><td>89</td></tr>
<tr><td>2</td><td>Arsenal</td><td>38</td><td>84</td></tr>
</table></body></html>`,
	"/wiki/2021-22_Premier_League": `<html><body><p>No table</p></body></html>`,
}

func newSource(t *testing.T) pipeline.StandingsSource {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			body, ok := pages[r.URL.Path]
			if !ok {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte(body))
		}))
	t.Cleanup(srv.Close)

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptSourceStandingsURL(srv.URL + "/wiki/%s_Premier_League"),
		config.OptSourceRequestsPerSecond(100),
	})
	return iostandings.New(cfg, iofetch.New(cfg))
}

func mustSeason(t *testing.T, start int) season.Season {
	t.Helper()
	s, err := season.New(start)
	require.NoError(t, err)
	return s
}

func TestStandings(t *testing.T) {
	res, err := newSource(t).Standings(context.Background(), mustSeason(t, 2022))
	require.NoError(t, err)
	assert.Equal(t, []standings.Entry{
		{Pos: 1, Team: "Manchester City", Pts: 89},
		{Pos: 2, Team: "Arsenal", Pts: 84},
	}, res)
}

func TestStandings_Errors(t *testing.T) {
	tests := []struct {
		msg   string
		start int
		code  gn.ErrorCode
	}{
		{"no table", 2021, errcode.NoStandingsTableFoundError},
		{"no page", 2020, errcode.FetchStatusError},
	}

	src := newSource(t)
	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			_, err := src.Standings(context.Background(), mustSeason(t, v.start))
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, v.code, gnErr.Code)
		})
	}
}
