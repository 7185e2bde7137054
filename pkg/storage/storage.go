// Package storage provides the byte-range file access layer consumed by the
// tag scanner: engines open named objects as seekable readers and report
// their sizes, and compressed objects are transparently decompressed at the
// cost of losing random access.
package storage

import (
	"context"
	"fmt"
	"io"
)

// Sizer returns the size of the underlying object.
type Sizer interface {
	Size() (int64, error)
}

// Reader is the read interface returned by an Engine.  Uncompressed objects
// support random access; see Uncompressed for the restrictions on
// compressed objects.
type Reader interface {
	io.Reader
	io.ReaderAt
	io.Seeker
	io.Closer
	Sizer
}

type Engine interface {
	Get(ctx context.Context, u *URI) (Reader, error)
	Size(ctx context.Context, u *URI) (int64, error)
	Exists(ctx context.Context, u *URI) (bool, error)
}

// NewEngine returns an Engine that dispatches on URI scheme to the
// filesystem and stdio engines.
func NewEngine() Engine {
	return &router{
		engines: map[string]Engine{
			FileScheme:  NewFileSystem(),
			StdioScheme: NewStdioEngine(),
		},
	}
}

type router struct {
	engines map[string]Engine
}

func (r *router) engine(u *URI) (Engine, error) {
	if engine, ok := r.engines[u.Scheme]; ok {
		return engine, nil
	}
	return nil, fmt.Errorf("storage: unsupported scheme %q", u.Scheme)
}

func (r *router) Get(ctx context.Context, u *URI) (Reader, error) {
	engine, err := r.engine(u)
	if err != nil {
		return nil, err
	}
	return engine.Get(ctx, u)
}

func (r *router) Size(ctx context.Context, u *URI) (int64, error) {
	engine, err := r.engine(u)
	if err != nil {
		return 0, err
	}
	return engine.Size(ctx, u)
}

func (r *router) Exists(ctx context.Context, u *URI) (bool, error) {
	engine, err := r.engine(u)
	if err != nil {
		return false, err
	}
	return engine.Exists(ctx, u)
}
