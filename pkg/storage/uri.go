package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	FileScheme  = "file"
	StdioScheme = "stdio"
)

// URI names a storage object.  Paths without a scheme are treated as local
// filesystem paths.
type URI struct {
	Scheme string
	Path   string
}

func ParseURI(path string) (*URI, error) {
	if path == "" {
		return nil, errors.New("storage: empty path")
	}
	if after, ok := strings.CutPrefix(path, "stdio:"); ok {
		return &URI{Scheme: StdioScheme, Path: after}, nil
	}
	if after, ok := strings.CutPrefix(path, "file://"); ok {
		path = after
	} else if i := strings.Index(path, "://"); i >= 0 {
		return nil, fmt.Errorf("storage: unsupported scheme %q", path[:i])
	}
	return &URI{Scheme: FileScheme, Path: filepath.ToSlash(path)}, nil
}

func MustParseURI(path string) *URI {
	u, err := ParseURI(path)
	if err != nil {
		panic(err)
	}
	return u
}

// Filepath returns the URI's path in the local filesystem's notation.
func (u *URI) Filepath() string {
	return filepath.FromSlash(u.Path)
}

func (u *URI) String() string {
	if u.Scheme == StdioScheme {
		return u.Scheme + ":" + u.Path
	}
	return u.Scheme + "://" + u.Path
}
