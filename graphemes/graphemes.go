/*
Package graphemes breaks text into user-perceived characters.

Boundaries follow the grapheme cluster rules of Unicode Standard Annex #29, as
implemented by package runeseg.
*/
package graphemes

import (
	"iter"

	"github.com/scalecode-solutions/runeseg"
)

// Segmenter yields the byte spans of the grapheme clusters of a text.
// The zero value is ready to use.
type Segmenter struct{}

// Segments iterates over the grapheme clusters of text, yielding the
// half-open byte span [start, end) of each cluster.
func (Segmenter) Segments(text string) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		state, pos := -1, 0
		rest := text
		for len(rest) > 0 {
			var cluster string
			cluster, rest, _, state = runeseg.StepString(rest, state)
			if !yield(pos, pos+len(cluster)) {
				return
			}
			pos += len(cluster)
		}
	}
}

// Clusters splits text into its grapheme clusters.
func Clusters(text string) []string {
	var clusters []string
	for start, end := range (Segmenter{}).Segments(text) {
		clusters = append(clusters, text[start:end])
	}
	return clusters
}
