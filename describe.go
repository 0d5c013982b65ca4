package fontfallback

import (
	"fmt"
	"slices"

	"github.com/npillmayer/fontfallback/fallback"
)

// Segment is a span of itemized text together with the name of the family
// selected to display it.
type Segment struct {
	Start, End int
	Text       string
	Family     string // empty for unresolved segments
	Resolved   bool
}

func (s Segment) String() string {
	if !s.Resolved {
		return fmt.Sprintf("[%d,%d) %q -> (none)", s.Start, s.End, s.Text)
	}
	return fmt.Sprintf("[%d,%d) %q -> %s", s.Start, s.End, s.Text, s.Family)
}

// Describe lists the runs and gaps of an itemization of text in text order.
func Describe(chain *fallback.Chain, text string, items fallback.Itemization) []Segment {
	segments := make([]Segment, 0, len(items.Runs)+len(items.Unresolved))
	for _, run := range items.Runs {
		segments = append(segments, Segment{
			Start:    run.Start,
			End:      run.End,
			Text:     text[run.Start:run.End],
			Family:   chain.Family(run.Family).Name,
			Resolved: true,
		})
	}
	for _, gap := range items.Unresolved {
		segments = append(segments, Segment{
			Start: gap.Start,
			End:   gap.End,
			Text:  text[gap.Start:gap.End],
		})
	}
	slices.SortFunc(segments, func(a, b Segment) int {
		return a.Start - b.Start
	})
	return segments
}
