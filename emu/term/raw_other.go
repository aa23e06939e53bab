//go:build !linux && !darwin
// +build !linux,!darwin

package term

import (
	"errors"
	"os"
)

var errUnsupported = errors.New("raw terminal mode is not supported on this platform")

type RawMode struct{}

func EnterRaw(*os.File) (*RawMode, error) {
	return nil, errUnsupported
}

func (r *RawMode) Restore() error {
	return nil
}
