package fallback

// CoverageLookup delivers the code-points a family supports. Usually this
// means reading the character map of the font file representing the family.
type CoverageLookup interface {
	Coverage(f Family) ([]rune, error)
}

// CoverageFunc adapts a function to the CoverageLookup interface.
type CoverageFunc func(f Family) ([]rune, error)

// Coverage calls fn(f).
func (fn CoverageFunc) Coverage(f Family) ([]rune, error) {
	return fn(f)
}

// CoverageMap is a static CoverageLookup, keyed by family name.
type CoverageMap map[string][]rune

// Coverage returns the code-points stored for the family's name. Families
// without an entry have no coverage.
func (m CoverageMap) Coverage(f Family) ([]rune, error) {
	return m[f.Name], nil
}
