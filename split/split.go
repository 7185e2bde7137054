// Package split computes the initial byte-range bundles for a parallel tag
// scan.  Bundle boundaries are advisory: a scan that claims a record near
// the end of its bundle reads past the boundary to finish it, and the next
// bundle's scan skips forward to the first record start it can claim.
package split

import "github.com/brimdata/tagscan/tracker"

// Spans partitions [0, size) into contiguous half-open spans of at least
// minBundleSize bytes each, in file order.  The final span absorbs any
// remainder smaller than minBundleSize.  A non-positive minBundleSize or a
// minBundleSize of at least size yields a single span; a non-positive size
// yields none.
func Spans(size, minBundleSize int64) []tracker.Span {
	if size <= 0 {
		return nil
	}
	if minBundleSize <= 0 || minBundleSize >= size {
		return []tracker.Span{{Start: 0, Stop: size}}
	}
	var spans []tracker.Span
	for start := int64(0); start < size; start += minBundleSize {
		stop := start + minBundleSize
		if size-stop < minBundleSize {
			stop = size
		}
		spans = append(spans, tracker.Span{Start: start, Stop: stop})
		if stop == size {
			break
		}
	}
	return spans
}
