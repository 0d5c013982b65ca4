/*
Package fallback selects font families for runs of text.

A fallback chain is a priority-ordered list of font families, each with the set of
code-points it is able to render and an optional (coarse) language tag. Text layout
engines consult such a chain before shaping: every grapheme cluster of the input is
assigned to the family best suited to display it, and consecutive clusters assigned
to the same family are compacted into runs.

A [Chain] is built once with [Build]. Construction computes a compact index of
non-overlapping code-point intervals for all code-points which can be attributed to
exactly one family. The first family of the chain (the "head") always wins for the
code-points it covers. Code-points supported by more than one family are left out of
the index and are resolved when text is itemized, taking the requested language into
account. This matters most for Han-unified CJK text, where Japanese, Korean and
Chinese families support the same code-points with different glyph designs.

[Chain.Itemize] splits text into grapheme clusters (using a [Segmenter]) and returns
an [Itemization]: the runs, and the spans of clusters no family supports at all.

	chain, err := fallback.Build("sans-serif", families, coverage)
	...
	items := chain.Itemize("Hello 世界", "ja")
	for _, run := range items.Runs {
	    fmt.Printf("%q -> %s\n", text[run.Start:run.End], chain.Family(run.Family).Name)
	}

A chain is immutable after construction and may be used concurrently by any number
of goroutines.
*/
package fallback

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontfallback.chain'.
func tracer() tracing.Trace {
	return tracing.Select("fontfallback.chain")
}

// assert panics when condition is false.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
