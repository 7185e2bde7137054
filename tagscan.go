// Package tagscan extracts tag-delimited, multi-line records from large
// line-oriented text files.  A record is everything from the line containing
// a literal open marker like "<page>" through the line containing the
// matching close marker "</page>", inclusive.  Records are located by plain
// substring search, not by parsing markup.
//
// The package is built so that disjoint byte ranges of one file can be
// scanned in parallel: each range is guarded by a tracker.Tracker, and a
// scanner.Source emits exactly the records that start inside the range it
// has claimed, reading past the range's end only to finish a record it
// already owns.
package tagscan

import (
	"context"
	"io"
	"slices"
)

// Record is one extracted record.
type Record struct {
	// Offset is the byte offset in the input of the first byte of the
	// line on which the record's open marker was found.
	Offset int64
	// Text is the verbatim record text, every line from the open-marker
	// line through the close-marker line with newlines retained.
	Text string
}

// Reader wraps the Read method.
//
// Read returns the next record and a nil error, a nil record and the next
// error, or a nil record and nil error to indicate that no records remain.
//
// Read never returns a non-nil record and non-nil error together, and it
// never returns io.EOF.
type Reader interface {
	Read() (rec *Record, err error)
}

// Writer wraps the Write method.
type Writer interface {
	Write(rec Record) error
}

type ReadCloser interface {
	Reader
	io.Closer
}

func NewReadCloser(r Reader, c io.Closer) ReadCloser {
	return extReadCloser{r, c}
}

type extReadCloser struct {
	Reader
	io.Closer
}

func NopReadCloser(r Reader) ReadCloser {
	return nopReadCloser{r}
}

type nopReadCloser struct {
	Reader
}

func (nopReadCloser) Close() error { return nil }

// ConcatReader returns a Reader that is the logical concatenation of readers,
// which are read sequentially.  Its Read method returns any non-nil error
// returned by a reader and returns end of stream after all readers have
// returned end of stream.
func ConcatReader(readers ...Reader) Reader {
	if len(readers) == 1 {
		return readers[0]
	}
	return &concatReader{slices.Clone(readers)}
}

type concatReader struct {
	readers []Reader
}

func (c *concatReader) Read() (*Record, error) {
	for len(c.readers) > 0 {
		rec, err := c.readers[0].Read()
		if rec != nil || err != nil {
			return rec, err
		}
		c.readers = c.readers[1:]
	}
	return nil, nil
}

// Copy copies src to dst a la io.Copy.
func Copy(dst Writer, src Reader) error {
	return CopyWithContext(context.Background(), dst, src)
}

func CopyWithContext(ctx context.Context, dst Writer, src Reader) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := src.Read()
		if err != nil || rec == nil {
			return err
		}
		if err := dst.Write(*rec); err != nil {
			return err
		}
	}
}

func CloseReaders(readers []Reader) error {
	var err error
	for _, reader := range readers {
		if closer, ok := reader.(io.Closer); ok {
			if e := closer.Close(); err == nil {
				err = e
			}
		}
	}
	return err
}
