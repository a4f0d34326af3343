package iofetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edwardanalytics/fpltable/internal/iofetch"
	"github.com/edwardanalytics/fpltable/pkg/config"
	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(encoding string) *iofetch.Client {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptSourceEncoding(encoding),
		config.OptSourceRequestsPerSecond(100),
		config.OptSourceTimeout(5),
	})
	return iofetch.New(cfg)
}

func TestGetCSV(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			ua = r.Header.Get("User-Agent")
			// "Ødegaard" in ISO-8859-1
			_, _ = w.Write([]byte("name,GW\n\xd8degaard,1\nSaka,2,extra\n"))
		}))
	defer srv.Close()

	header, rows, err := newClient("iso-8859-1").GetCSV(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "GW"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ødegaard", rows[0][0])
	assert.Equal(t, []string{"Saka", "2", "extra"}, rows[1])
	assert.Contains(t, ua, "fpltable")
}

func TestGetCSV_UTF8(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("name\nØdegaard\n"))
		}))
	defer srv.Close()

	_, rows, err := newClient("utf-8").GetCSV(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Ødegaard", rows[0][0])
}

func TestGetCSV_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	_, _, err := newClient("utf-8").GetCSV(context.Background(), srv.URL)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.FetchDecodeError, gnErr.Code)
}

func TestGetHTML_Status(t *testing.T) {
	tests := []struct {
		msg      string
		status   int
		notFound bool
	}{
		{"not found", http.StatusNotFound, true},
		{"server error", http.StatusInternalServerError, false},
		{"forbidden", http.StatusForbidden, false},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(v.status)
				}))
			defer srv.Close()

			_, err := newClient("utf-8").GetHTML(context.Background(), srv.URL)
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, errcode.FetchStatusError, gnErr.Code)
			assert.Equal(t, v.status, gnErr.Vars[0])
			assert.Equal(t, v.notFound, iofetch.IsNotFound(err))
		})
	}
}

func TestGetHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>ok</body></html>"))
		}))
	defer srv.Close()

	body, err := newClient("utf-8").GetHTML(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, string(body), "ok")
}

func TestGet_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newClient("utf-8").GetHTML(ctx, "http://127.0.0.1:1")
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.FetchError, gnErr.Code)
	assert.False(t, iofetch.IsNotFound(err))
}
