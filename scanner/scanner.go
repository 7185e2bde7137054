// Package scanner locates tag-delimited records in a byte range of a
// line-oriented input and emits them one at a time.
package scanner

import (
	"bytes"
	"sync/atomic"

	"github.com/brimdata/tagscan"
	"github.com/brimdata/tagscan/cursor"
	"github.com/brimdata/tagscan/tracker"
)

type state int

const (
	seekingOpen state = iota
	seekingClose
)

// Scanner is a two-state machine that finds the next line containing the
// open marker, claims that line's start offset against the range tracker,
// and then accumulates lines until one contains the close marker, producing
// the verbatim record.  A failed claim or end of input terminates the
// scanner for good.
//
// Known issue: the line that contained the open marker is never itself
// examined for the close marker.  A record whose open and close markers
// share a single line does not close on that line; the scanner keeps
// consuming subsequent lines until a later close marker appears, or drops
// the record at end of input.  Downstream output depends on this behavior,
// so it is preserved.
type Scanner struct {
	cursor   *cursor.Cursor
	tracker  *tracker.Tracker
	open     []byte
	close    []byte
	progress *tagscan.Progress

	state  state
	buf    bytes.Buffer
	offset int64
	done   bool
}

// New returns a Scanner that reads lines from cur and claims record starts
// against trk.  The open and close arguments are literal marker strings
// matched by substring search.  progress must be non-nil.
func New(cur *cursor.Cursor, trk *tracker.Tracker, open, close string, progress *tagscan.Progress) *Scanner {
	return &Scanner{
		cursor:   cur,
		tracker:  trk,
		open:     []byte(open),
		close:    []byte(close),
		progress: progress,
	}
}

// Scan returns the next record that starts inside the tracked range, or
// nil, nil when the range is exhausted or the input ends.  Once Scan
// returns nil, nil it always will.
func (s *Scanner) Scan() (*tagscan.Record, error) {
	for !s.done {
		if s.state == seekingOpen {
			// Record the offset of the line before consuming it:
			// that offset, not the line's end, is what gets claimed.
			pos := s.cursor.Position()
			line, err := s.cursor.ReadLine()
			if err != nil {
				return nil, err
			}
			if line == nil {
				s.done = true
				break
			}
			atomic.AddInt64(&s.progress.BytesScanned, int64(len(line)))
			if !bytes.Contains(line, s.open) {
				continue
			}
			if !s.tracker.TryClaim(pos) {
				// Range exhausted or rebalanced away.
				atomic.AddInt64(&s.progress.ClaimsFailed, 1)
				s.done = true
				break
			}
			s.offset = pos
			s.buf.Write(line)
			s.state = seekingClose
			continue
		}
		line, err := s.cursor.ReadLine()
		if err != nil {
			return nil, err
		}
		if line == nil {
			// Input ended mid-record: drop the partial buffer.
			s.done = true
			break
		}
		atomic.AddInt64(&s.progress.BytesScanned, int64(len(line)))
		s.buf.Write(line)
		if bytes.Contains(line, s.close) {
			rec := &tagscan.Record{Offset: s.offset, Text: s.buf.String()}
			s.buf.Reset()
			s.state = seekingOpen
			atomic.AddInt64(&s.progress.RecordsEmitted, 1)
			return rec, nil
		}
	}
	return nil, nil
}
