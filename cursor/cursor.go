// Package cursor provides buffered, line-at-a-time reads over a seekable
// byte stream with exact byte-position reporting, so a caller can record
// where each line begins before consuming it.
package cursor

import (
	"bufio"
	"fmt"
	"io"
)

// Cursor reads lines from an underlying stream and tracks the byte offset
// of the read position.  A Cursor is owned by a single goroutine and only
// moves forward except via Seek.
type Cursor struct {
	rs     io.ReadSeeker
	reader *bufio.Reader
	pos    int64
}

func New(rs io.ReadSeeker) *Cursor {
	return &Cursor{rs: rs, reader: bufio.NewReader(rs)}
}

// Seek positions the cursor so the next ReadLine begins at offset.  The
// offset may land in the middle of a line; callers resynchronize by scanning
// forward for the next marker of interest, not by realigning to a line
// boundary.
func (c *Cursor) Seek(offset int64) error {
	if _, err := c.rs.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("cursor: seek to offset %d: %w", offset, err)
	}
	c.reader.Reset(c.rs)
	c.pos = offset
	return nil
}

// ReadLine returns the next line with its trailing newline retained.  A
// final line without a terminating newline is returned as-is.  At end of
// stream ReadLine returns nil, nil.
//
// The returned slice is only valid until the next call to ReadLine.
func (c *Cursor) ReadLine() ([]byte, error) {
	line, err := c.reader.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		// Line longer than the buffer: fall back to an allocating read.
		var buf []byte
		for err == bufio.ErrBufferFull {
			buf = append(buf, line...)
			line, err = c.reader.ReadSlice('\n')
		}
		line = append(buf, line...)
	}
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("cursor: read at offset %d: %w", c.pos, err)
	}
	if len(line) == 0 {
		return nil, nil
	}
	c.pos += int64(len(line))
	return line, nil
}

// Position reports the byte offset immediately following the last line
// consumed by ReadLine, or the Seek target if no line has been read since.
func (c *Cursor) Position() int64 {
	return c.pos
}
