package fallback

import (
	"fmt"
	"sort"
)

// CodepointMapping maps the inclusive code-point interval [Start, End] to a
// family.
type CodepointMapping struct {
	Start, End rune
	Family     FamilyIndex
}

func (m CodepointMapping) String() string {
	return fmt.Sprintf("[%#U..%#U]->%d", m.Start, m.End, m.Family)
}

// resolved is a code-point attributed to a single family during construction.
type resolved struct {
	cp     rune
	family FamilyIndex
}

// encodeIntervals run-length encodes resolved code-points, which have to be
// sorted by code-point. Neighbouring code-points with the same family are
// merged into one interval.
func encodeIntervals(cps []resolved) []CodepointMapping {
	if len(cps) == 0 {
		return nil
	}
	mappings := []CodepointMapping{{Start: cps[0].cp, End: cps[0].cp, Family: cps[0].family}}
	for _, r := range cps[1:] {
		curr := &mappings[len(mappings)-1]
		if curr.End+1 == r.cp && curr.Family == r.family {
			curr.End = r.cp
			continue
		}
		mappings = append(mappings, CodepointMapping{Start: r.cp, End: r.cp, Family: r.family})
	}
	return mappings
}

// searchIntervals finds the interval containing r, using binary search.
func searchIntervals(mappings []CodepointMapping, r rune) (FamilyIndex, bool) {
	i := sort.Search(len(mappings), func(i int) bool {
		return mappings[i].End >= r
	})
	if i < len(mappings) && mappings[i].Start <= r {
		return mappings[i].Family, true
	}
	return NoFamily, false
}
