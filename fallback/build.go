package fallback

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Build constructs a fallback chain from a priority-ordered list of families.
// The first family is the head of the chain.
//
// Coverage for each family is requested from lookup. If lookup is nil, the
// coverage the families have been created with (see [NewFamily]) is used.
//
// Build fails with a [*ConstructionError] if the list of families is empty, if a
// family does not cover any code-point, or if the coverage data is malformed.
//
// Construction proceeds as follows: for every code-point the set of families
// supporting it is collected. If the head is among them, it wins and all other
// families are discarded for this code-point. Code-points with exactly one
// supporting family are entered into a compact interval index. Code-points with
// multiple supporting families are left to itemization, where the requested
// language may decide between them.
func Build(name string, families []Family, lookup CoverageLookup, opts ...Option) (*Chain, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(families) == 0 {
		return nil, errConstruction(name, "", ErrEmptyChain, "no families given", nil)
	}
	chain := &Chain{
		name:      name,
		families:  make([]Family, len(families)),
		observer:  cfg.observer,
		segmenter: cfg.segmenter,
	}
	for i, f := range families {
		if lookup != nil {
			cps, err := lookup.Coverage(f)
			if err != nil {
				return nil, errConstruction(name, f.Name, ErrCoverageLookup, "cannot read coverage", err)
			}
			f.coverage = NewCodepointSet(cps)
		}
		if err := checkCoverage(name, f); err != nil {
			return nil, err
		}
		chain.families[i] = f
	}
	mappings, report := buildIndex(chain.families)
	report.Chain = name
	chain.mappings = mappings
	chain.report = report
	chain.observer.ChainBuilt(report)
	return chain, nil
}

func checkCoverage(chain string, f Family) error {
	if f.coverage.Len() == 0 {
		return errConstruction(chain, f.Name, ErrEmptyCoverage, "family is fontless", nil)
	}
	for cp := range f.coverage.All() {
		if !utf8.ValidRune(cp) {
			return errConstruction(chain, f.Name, ErrMalformedCoverage,
				fmt.Sprintf("code-point %#x is not a Unicode scalar value", cp), nil)
		}
	}
	return nil
}

// buildIndex computes the static code-point index for a list of families and
// a report on how the code-points have been classified.
func buildIndex(families []Family) ([]CodepointMapping, BuildReport) {
	// Map each code-point to the families supporting it. Families are visited in
	// chain order, so every list of supporters is sorted by priority.
	supporters := make(map[rune][]FamilyIndex)
	for i, f := range families {
		for cp := range f.coverage.All() {
			supporters[cp] = append(supporters[cp], FamilyIndex(i))
		}
	}
	report := BuildReport{
		Families:   len(families),
		Codepoints: len(supporters),
	}
	groups := make(map[string]*ConflictGroup)
	unambiguous := make([]resolved, 0, len(supporters))
	for cp, fams := range supporters {
		if fams[0] == 0 { // the head wins against all alternatives
			fams = fams[:1]
		}
		if len(fams) == 1 {
			report.Distinct++
			unambiguous = append(unambiguous, resolved{cp: cp, family: fams[0]})
			continue
		}
		// without language tags there is no reason to alter priority
		if !slices.ContainsFunc(fams, func(inx FamilyIndex) bool {
			return families[inx].HasLang()
		}) {
			report.UnambiguousConflicts++
			continue
		}
		key := fmt.Sprint(fams)
		g, ok := groups[key]
		if !ok {
			g = &ConflictGroup{Families: fams}
			for _, inx := range fams {
				g.Names = append(g.Names, families[inx].Name)
			}
			groups[key] = g
		}
		g.Codepoints = append(g.Codepoints, cp)
	}
	report.ConflictGroups = sortedGroups(groups)
	slices.SortFunc(unambiguous, func(a, b resolved) int {
		return int(a.cp) - int(b.cp)
	})
	mappings := encodeIntervals(unambiguous)
	report.Mappings = len(mappings)
	return mappings, report
}

func sortedGroups(groups map[string]*ConflictGroup) []ConflictGroup {
	sorted := make([]ConflictGroup, 0, len(groups))
	for _, g := range groups {
		slices.Sort(g.Codepoints)
		sorted = append(sorted, *g)
	}
	slices.SortFunc(sorted, func(a, b ConflictGroup) int {
		return slices.Compare(a.Families, b.Families)
	})
	return sorted
}
