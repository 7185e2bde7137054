package tagscan

import "sync/atomic"

// Progress accumulates scan statistics.  Fields are updated atomically so a
// Progress may be shared by concurrent scans; use Copy to read a consistent
// snapshot.
type Progress struct {
	BytesScanned   int64
	RecordsEmitted int64
	ClaimsFailed   int64
}

func (p *Progress) Add(in Progress) {
	atomic.AddInt64(&p.BytesScanned, in.BytesScanned)
	atomic.AddInt64(&p.RecordsEmitted, in.RecordsEmitted)
	atomic.AddInt64(&p.ClaimsFailed, in.ClaimsFailed)
}

func (p *Progress) Copy() Progress {
	return Progress{
		BytesScanned:   atomic.LoadInt64(&p.BytesScanned),
		RecordsEmitted: atomic.LoadInt64(&p.RecordsEmitted),
		ClaimsFailed:   atomic.LoadInt64(&p.ClaimsFailed),
	}
}
