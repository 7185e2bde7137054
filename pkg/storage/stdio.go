package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// StdioEngine serves stdio:stdin as a storage object so piped input can be
// scanned.  Stdin is non-splittable: it supports only forward seeks and its
// size is unknown, like a compressed object.
type StdioEngine struct{}

var _ Engine = (*StdioEngine)(nil)

func NewStdioEngine() *StdioEngine {
	return &StdioEngine{}
}

func (*StdioEngine) Get(_ context.Context, u *URI) (Reader, error) {
	if u.Scheme != StdioScheme || u.Path != "stdin" {
		return nil, fmt.Errorf("storage: cannot read %s", u)
	}
	// The process's stdin is never closed; Close only tears down the
	// wrapper so a subsequent Get still works.
	return &streamReader{r: os.Stdin}, nil
}

func (*StdioEngine) Size(_ context.Context, u *URI) (int64, error) {
	return 0, errors.New("storage: stream size unknown until scanned")
}

func (*StdioEngine) Exists(_ context.Context, u *URI) (bool, error) {
	return true, nil
}
