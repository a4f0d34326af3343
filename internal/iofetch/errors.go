package iofetch

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/gnames/gn"
)

func FetchError(url string, err error) error {
	msg := "Cannot fetch <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot fetch %s: %w", fn.Name(), url, err),
	}
}

func FetchStatusError(url string, status int) error {
	msg := "Server returned <em>%d %s</em> for <em>%s</em>"
	vars := []any{status, http.StatusText(status), url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	err := fmt.Errorf("from %s: unexpected status %d for %s",
		fn.Name(), status, url)
	if status == http.StatusNotFound {
		err = fmt.Errorf("from %s: %s: %w", fn.Name(), url, ErrNotFound)
	}
	return &gn.Error{
		Code: errcode.FetchStatusError,
		Msg:  msg,
		Vars: vars,
		Err:  err,
	}
}

func FetchDecodeError(url string, err error) error {
	msg := "Cannot decode data from <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot decode %s: %w", fn.Name(), url, err),
	}
}
