// Package tracker implements the shared byte-range tracker that makes
// dynamic work splitting safe.  One goroutine drives a scan over the
// tracker's range while another may concurrently narrow the range to shift
// remaining work elsewhere; the claim protocol guarantees each record start
// is owned by exactly one scan, provided split points respect the placement
// caveat on TrySplitAt.
package tracker

import "sync"

// Span is a half-open [Start, Stop) interval of byte offsets.
type Span struct {
	Start int64
	Stop  int64
}

func (s Span) Len() int64 {
	if n := s.Stop - s.Start; n > 0 {
		return n
	}
	return 0
}

// Tracker holds the [start, stop) byte range owned by one scan.  The pair
// (last claim, stop) mutates atomically under a mutex: stop may only ever
// decrease once tracking begins, and claims are strictly increasing.
type Tracker struct {
	mu        sync.Mutex
	start     int64
	stop      int64
	claimed   int64
	haveClaim bool
}

func New(start, stop int64) *Tracker {
	return &Tracker{start: start, stop: stop}
}

// TryClaim attempts to claim the record starting at pos.  It succeeds and
// permanently records pos iff pos lies in [start, stop) and is greater than
// any previously claimed position; otherwise it fails with no state change.
// A failed claim is the authoritative signal that the range is exhausted,
// not an error.
func (t *Tracker) TryClaim(pos int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if pos < t.start || pos >= t.stop {
		return false
	}
	if t.haveClaim && pos <= t.claimed {
		return false
	}
	t.claimed = pos
	t.haveClaim = true
	return true
}

func (t *Tracker) Start() int64 {
	return t.start
}

// StopPosition returns the current stop offset.  It may return a smaller
// value than a previous call if the range has been narrowed concurrently.
func (t *Tracker) StopPosition() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop
}

// LastClaim returns the last successfully claimed position, if any.
func (t *Tracker) LastClaim() (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.claimed, t.haveClaim
}

// Narrow reduces the tracker's stop position to stop and returns the
// effective stop.  Narrow never increases the range and clamps at the
// range's start, so the range can become empty but never inverted.
func (t *Tracker) Narrow(stop int64) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if stop < t.start {
		stop = t.start
	}
	if stop < t.stop {
		t.stop = stop
	}
	return t.stop
}

// TrySplitAt atomically narrows the tracker's stop position to pos and
// returns the surrendered [pos, oldStop) span for reassignment to another
// scan.  The split fails if pos is outside (start, stop) or at or below the
// last successful claim, since records up to the last claim already belong
// to this tracker's scan.
//
// The tracker knows offsets, not line boundaries, so pos must also lie past
// the end of the last claimed record's open-marker line: a split point
// inside that line before the marker text leaves the marker visible in the
// line's remainder, and the scan taking over the surrendered span would
// re-claim the record mid-line.
func (t *Tracker) TrySplitAt(pos int64) (Span, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if pos <= t.start || pos >= t.stop {
		return Span{}, false
	}
	if t.haveClaim && pos <= t.claimed {
		return Span{}, false
	}
	rest := Span{Start: pos, Stop: t.stop}
	t.stop = pos
	return rest, true
}
