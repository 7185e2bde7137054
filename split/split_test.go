package split

import (
	"testing"

	"github.com/brimdata/tagscan/tracker"
	"github.com/stretchr/testify/require"
)

func TestSpans(t *testing.T) {
	cases := []struct {
		name          string
		size          int64
		minBundleSize int64
		expected      []tracker.Span
	}{
		{"empty", 0, 100, nil},
		{"negative size", -1, 100, nil},
		{"single bundle", 100, 100, []tracker.Span{{Start: 0, Stop: 100}}},
		{"zero min", 100, 0, []tracker.Span{{Start: 0, Stop: 100}}},
		{"even", 100, 50, []tracker.Span{{Start: 0, Stop: 50}, {Start: 50, Stop: 100}}},
		{
			"remainder absorbed by final span",
			100, 30,
			[]tracker.Span{{Start: 0, Stop: 30}, {Start: 30, Stop: 60}, {Start: 60, Stop: 100}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, Spans(c.size, c.minBundleSize))
		})
	}
}

func TestSpansCoverDisjointly(t *testing.T) {
	for _, size := range []int64{1, 7, 64, 1000, 1001} {
		for _, min := range []int64{1, 3, 64, 500} {
			spans := Spans(size, min)
			require.NotEmpty(t, spans)
			require.Equal(t, int64(0), spans[0].Start)
			require.Equal(t, size, spans[len(spans)-1].Stop)
			for i := 1; i < len(spans); i++ {
				require.Equal(t, spans[i-1].Stop, spans[i].Start, "size=%d min=%d", size, min)
			}
			if size < min {
				require.Len(t, spans, 1)
				continue
			}
			for _, span := range spans {
				require.GreaterOrEqual(t, span.Len(), min, "size=%d min=%d", size, min)
			}
		}
	}
}
