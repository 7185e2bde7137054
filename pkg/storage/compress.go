package storage

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Format returns the compression format implied by the URI's extension, or
// "" for uncompressed objects.
func Format(u *URI) string {
	switch filepath.Ext(u.Path) {
	case ".gz":
		return "gzip"
	case ".lz4":
		return "lz4"
	case ".zst":
		return "zstd"
	default:
		return ""
	}
}

// Splittable reports whether disjoint byte ranges of the object can be read
// independently.  Compressed objects and stdio have no byte-addressable
// interior and must be scanned as a single range.
func Splittable(u *URI) bool {
	return u.Scheme == FileScheme && Format(u) == ""
}

// Uncompressed wraps r with a decompressor chosen by u's extension,
// returning r itself for uncompressed objects.  The returned Reader owns r
// and closes it on Close.  Decompressed streams support only forward Seek
// from the current position; ReadAt and Size are unavailable.
func Uncompressed(r Reader, u *URI) (Reader, error) {
	format := Format(u)
	if format == "" {
		return r, nil
	}
	var dr io.Reader
	var dc io.Closer
	switch format {
	case "gzip":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("storage: %s: %w", u, err)
		}
		dr, dc = zr, zr
	case "lz4":
		dr = lz4.NewReader(r)
	case "zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("storage: %s: %w", u, err)
		}
		rc := zr.IOReadCloser()
		dr, dc = rc, rc
	}
	return &streamReader{r: dr, closer: dc, under: r}, nil
}
