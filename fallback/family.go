package fallback

import (
	"iter"
	"slices"
)

// FamilyIndex is a handle for a family in a chain. Index 0 denotes the head
// of the chain.
type FamilyIndex int

// NoFamily is returned where no family could be selected.
const NoFamily FamilyIndex = -1

// Family is an entry of a fallback chain.
//
// Lang is a coarse language tag, e.g. "ja" or "zh-Hans". It is compared
// verbatim against the language requested for itemization; an empty Lang
// means the family carries no language information.
type Family struct {
	Name     string
	Lang     string
	coverage CodepointSet
}

// NewFamily creates a family with a given code-point coverage. Families created
// this way may be handed to [Build] without a coverage lookup.
func NewFamily(name, lang string, codepoints []rune) Family {
	return Family{
		Name:     name,
		Lang:     lang,
		coverage: NewCodepointSet(codepoints),
	}
}

// HasLang reports whether the family carries a language tag.
func (f Family) HasLang() bool {
	return f.Lang != ""
}

// Coverage returns the set of code-points the family supports.
func (f Family) Coverage() CodepointSet {
	return f.coverage
}

func (f Family) String() string {
	if f.Lang == "" {
		return f.Name
	}
	return f.Name + "[" + f.Lang + "]"
}

// --- Code-point sets -------------------------------------------------------

// CodepointSet is an immutable set of code-points, held as a sorted slice
// without duplicates.
type CodepointSet struct {
	cps []rune
}

// NewCodepointSet creates a set from a list of code-points. The input slice
// is not retained.
func NewCodepointSet(codepoints []rune) CodepointSet {
	if len(codepoints) == 0 {
		return CodepointSet{}
	}
	cps := slices.Clone(codepoints)
	slices.Sort(cps)
	return CodepointSet{cps: slices.Compact(cps)}
}

// Contains reports whether r is a member of the set.
func (s CodepointSet) Contains(r rune) bool {
	_, found := slices.BinarySearch(s.cps, r)
	return found
}

// Len returns the number of code-points in the set.
func (s CodepointSet) Len() int {
	return len(s.cps)
}

// All iterates over the code-points of the set in ascending order.
func (s CodepointSet) All() iter.Seq[rune] {
	return slices.Values(s.cps)
}
