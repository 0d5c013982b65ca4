package fallback

import (
	"fmt"
	"unicode/utf8"
)

// Run is a span of text [Start, End) to be displayed with one family.
// Offsets are byte positions in the itemized text.
type Run struct {
	Family     FamilyIndex
	Start, End int
}

func (r Run) String() string {
	return fmt.Sprintf("(%d..%d)->%d", r.Start, r.End, r.Family)
}

// Gap is the span of a grapheme cluster no family of the chain supports.
type Gap struct {
	Start, End int
}

// Itemization is the result of itemizing a text. Runs are ordered and never
// overlap, and no two adjacent runs share a family. Every grapheme cluster of
// the text is covered either by a run or by exactly one gap.
type Itemization struct {
	Runs       []Run
	Unresolved []Gap
}

// Reset empties the itemization, keeping allocated storage.
func (it *Itemization) Reset() {
	it.Runs = it.Runs[:0]
	it.Unresolved = it.Unresolved[:0]
}

// Complete reports whether every cluster of the text has been resolved.
func (it *Itemization) Complete() bool {
	return len(it.Unresolved) == 0
}

// Itemize assigns each grapheme cluster of text to a family of the chain and
// returns the resulting runs. Lang is the preferred language and used to
// decide between families supporting the same code-points.
//
// Single code-point clusters are looked up in the static index. All other
// clusters are rated against every family in turn (see [Build]); a family
// whose language tag equals lang wins immediately, otherwise the first family
// supporting the whole cluster is taken. Clusters which are not supported by any
// family are reported as gaps.
func (c *Chain) Itemize(text string, lang string) Itemization {
	var it Itemization
	c.ItemizeInto(&it, text, lang)
	return it
}

// ItemizeInto works like [Chain.Itemize], but stores the result in dst, which
// is reset first. Clients itemizing a lot of text may re-use dst between calls.
func (c *Chain) ItemizeInto(dst *Itemization, text string, lang string) {
	dst.Reset()
	prev := 0
	for start, end := range c.segmenter.Segments(text) {
		assert(end > start, "segmenter produced an empty grapheme cluster")
		assert(start == prev && end <= len(text), "segmenter produced invalid boundaries")
		prev = end
		cluster := text[start:end]
		event := ClusterEvent{Cluster: cluster, Start: start, End: end}
		event.Family, event.Path = c.selectFamily(cluster, lang)
		if event.Path == MatchNone {
			dst.Unresolved = append(dst.Unresolved, Gap{Start: start, End: end})
			c.observer.ClusterItemized(event)
			continue
		}
		event.FamilyName = c.families[event.Family].Name
		if n := len(dst.Runs); n > 0 && dst.Runs[n-1].Family == event.Family && dst.Runs[n-1].End == start {
			dst.Runs[n-1].End = end
			event.Extended = true
		} else {
			dst.Runs = append(dst.Runs, Run{Family: event.Family, Start: start, End: end})
		}
		c.observer.ClusterItemized(event)
	}
	assert(prev == len(text), "segmenter did not cover the whole text")
}

// selectFamily finds the family for a single grapheme cluster.
func (c *Chain) selectFamily(cluster string, lang string) (FamilyIndex, MatchPath) {
	if first, size := utf8.DecodeRuneInString(cluster); size == len(cluster) {
		if inx, ok := searchIntervals(c.mappings, first); ok {
			return inx, MatchIndex
		}
	}
	if inx, ok := c.bestFamily(lang, cluster); ok {
		return inx, MatchScan
	}
	return NoFamily, MatchNone
}
