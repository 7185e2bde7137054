package scanner

import (
	"github.com/brimdata/tagscan"
	"github.com/brimdata/tagscan/cursor"
	"github.com/brimdata/tagscan/tracker"
)

// Source streams the records that start inside one tracked byte range.
// It seeks the cursor to the tracker's start position at construction and
// then pulls records from a Scanner one at a time.  A Source is finite and
// is not restartable; rescanning requires a fresh cursor, tracker, and
// Source.
//
// A start position that lands inside a line is resolved by scanning forward
// for the next open marker.  If the start position lands inside an
// open-marker line before the marker text, the marker is still visible in
// the line's remainder and this Source will claim it at the start position;
// upstream splitters should place range boundaries with this in mind.
type Source struct {
	scanner  *Scanner
	progress tagscan.Progress
}

var _ tagscan.Reader = (*Source)(nil)

// NewSource derives the literal markers "<element>" and "</element>", seeks
// cur to trk's start position, and returns a Source that emits each record
// whose open-marker line starts inside trk's range.
func NewSource(cur *cursor.Cursor, trk *tracker.Tracker, element string) (*Source, error) {
	s := &Source{}
	s.scanner = New(cur, trk, "<"+element+">", "</"+element+">", &s.progress)
	if err := cur.Seek(trk.Start()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Source) Read() (*tagscan.Record, error) {
	return s.scanner.Scan()
}

// Progress returns a snapshot of the source's scan statistics.
func (s *Source) Progress() tagscan.Progress {
	return s.progress.Copy()
}
