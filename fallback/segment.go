package fallback

import (
	"iter"

	"github.com/npillmayer/fontfallback/graphemes"
)

// Segmenter finds grapheme cluster boundaries.
//
// Segments yields the byte spans [start, end) of the grapheme clusters of a
// text, in order. Spans must not be empty and must tile the text without gaps
// or overlaps.
type Segmenter interface {
	Segments(text string) iter.Seq2[int, int]
}

// SegmenterFunc adapts a function to the Segmenter interface.
type SegmenterFunc func(text string) iter.Seq2[int, int]

// Segments calls fn(text).
func (fn SegmenterFunc) Segments(text string) iter.Seq2[int, int] {
	return fn(text)
}

func defaultSegmenter() Segmenter {
	return graphemes.Segmenter{}
}
