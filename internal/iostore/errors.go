package iostore

import (
	"fmt"
	"runtime"

	"github.com/edwardanalytics/fpltable/pkg/errcode"
	"github.com/gnames/gn"
)

func ArtifactReadError(path string, err error) error {
	msg := "Cannot read artifact <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArtifactReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

func ArtifactWriteError(path string, err error) error {
	msg := "Cannot write artifact <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArtifactWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn.Name(), path, err),
	}
}

func ArtifactMissingError(path string) error {
	msg := "Artifact <em>%s</em> does not exist"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArtifactMissingError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no artifact at %s", fn.Name(), path),
	}
}
