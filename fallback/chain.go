package fallback

import "slices"

// Chain is a fallback chain of font families, ready for itemization.
// Create chains with [Build]; a chain is read-only afterwards.
type Chain struct {
	name      string
	families  []Family
	mappings  []CodepointMapping // sorted, no overlaps
	report    BuildReport
	observer  Observer
	segmenter Segmenter
}

// Name returns the name the chain has been built with.
func (c *Chain) Name() string {
	return c.name
}

// Len returns the number of families in the chain.
func (c *Chain) Len() int {
	return len(c.families)
}

// Head returns the most preferred family of the chain.
func (c *Chain) Head() Family {
	return c.families[0]
}

// Family returns the family for an index. It panics if the index is out of range.
func (c *Chain) Family(inx FamilyIndex) Family {
	return c.families[inx]
}

// Families returns a copy of the families of the chain in priority order.
func (c *Chain) Families() []Family {
	return slices.Clone(c.families)
}

// Covers reports whether family inx supports code-point cp.
func (c *Chain) Covers(inx FamilyIndex, cp rune) bool {
	return c.families[inx].coverage.Contains(cp)
}

// Lookup consults the static index for a single code-point. It returns the
// family the code-point has been attributed to during construction, or false
// if the code-point is either not supported at all or has to be decided with
// respect to language.
func (c *Chain) Lookup(cp rune) (FamilyIndex, bool) {
	return searchIntervals(c.mappings, cp)
}

// Mappings returns a copy of the static index.
func (c *Chain) Mappings() []CodepointMapping {
	return slices.Clone(c.mappings)
}

// Report returns the statistics collected during construction.
func (c *Chain) Report() BuildReport {
	return c.report
}
