package storage

import (
	"errors"
	"fmt"
	"io"
)

// streamReader adapts a forward-only byte stream (a decompressor or stdin)
// to the Reader interface.  Seeks discard bytes to reach the target, so
// only forward seeks from the current position are possible, and random
// access and size reporting are unavailable.
type streamReader struct {
	r      io.Reader
	closer io.Closer // optional decompressor
	under  io.Closer // underlying object, closed last
	pos    int64
}

var _ Reader = (*streamReader)(nil)

func (s *streamReader) Read(b []byte) (int, error) {
	n, err := s.r.Read(b)
	s.pos += int64(n)
	return n, err
}

func (s *streamReader) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = s.pos + offset
	default:
		return 0, errors.New("storage: seek from end unsupported on stream")
	}
	if target < s.pos {
		return 0, fmt.Errorf("storage: backward seek from %d to %d unsupported on stream", s.pos, target)
	}
	n, err := io.CopyN(io.Discard, s.r, target-s.pos)
	s.pos += n
	if err != nil && err != io.EOF {
		return 0, err
	}
	return s.pos, nil
}

func (s *streamReader) ReadAt(b []byte, off int64) (int, error) {
	return 0, errors.New("storage: random access unsupported on stream")
}

func (s *streamReader) Size() (int64, error) {
	return 0, errors.New("storage: stream size unknown until scanned")
}

func (s *streamReader) Close() error {
	var err error
	if s.closer != nil {
		err = s.closer.Close()
	}
	if s.under != nil {
		if e := s.under.Close(); err == nil {
			err = e
		}
	}
	return err
}
