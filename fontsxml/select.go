package fontsxml

import (
	"fmt"

	"github.com/npillmayer/fontfallback/internal/fontname"
)

// Families returns all families of a familyset in document order.
func (set *Familyset) Families() []*Family {
	var families []*Family
	for _, e := range set.Entries {
		if e.Family != nil {
			families = append(families, e.Family)
		}
	}
	return families
}

// Aliases returns all aliases of a familyset in document order.
func (set *Familyset) Aliases() []*Alias {
	var aliases []*Alias
	for _, e := range set.Entries {
		if e.Alias != nil {
			aliases = append(aliases, e.Alias)
		}
	}
	return aliases
}

// Named returns the first family with a given name. If no family carries the
// name, aliases are followed.
func (set *Familyset) Named(name string) (*Family, bool) {
	seen := make(map[string]bool)
	for name != "" && !seen[name] {
		seen[name] = true
		for _, f := range set.Families() {
			if f.Name == name {
				return f, true
			}
		}
		to := ""
		for _, a := range set.Aliases() {
			if a.Name == name {
				to = a.To
				break
			}
		}
		name = to
	}
	return nil, false
}

// Fallbacks returns the fallback families, i.e. the unnamed families not
// flagged to be ignored, in order of priority.
func (set *Familyset) Fallbacks() []*Family {
	var fallbacks []*Family
	for _, f := range set.Families() {
		if f.Name == "" && !f.Ignore {
			fallbacks = append(fallbacks, f)
		}
	}
	return fallbacks
}

// Selection is the font chosen to represent a family of a manifest.
type Selection struct {
	Family     *Family
	Font       *Font
	FamilyName string // derived from the font's file name
	Lang       string
}

// NamedChain selects the fonts for a fallback chain headed by the named family
// head, followed by all fallback families of the manifest. For every family the
// font best suited to stand in for head is selected, see [Unwantedness].
func (set *Familyset) NamedChain(head string) ([]Selection, error) {
	headFamily, ok := set.Named(head)
	if !ok {
		return nil, fmt.Errorf("fonts.xml: %w: %q", ErrNoSuchFamily, head)
	}
	families := append([]*Family{headFamily}, set.Fallbacks()...)
	chain := make([]Selection, 0, len(families))
	for _, family := range families {
		font := bestFont(family, head)
		if font == nil {
			return nil, fmt.Errorf("fonts.xml: family %s: %w", family, ErrFontless)
		}
		chain = append(chain, Selection{
			Family:     family,
			Font:       font,
			FamilyName: fontname.FamilyForFile(font.Filename),
			Lang:       family.Lang,
		})
	}
	tracer().Debugf("chain for %q: %d families", head, len(chain))
	return chain, nil
}

func bestFont(family *Family, head string) *Font {
	var best *Font
	for i := range family.Fonts {
		font := &family.Fonts[i]
		if best == nil || Unwantedness(font, head) < Unwantedness(best, head) {
			best = font
		}
	}
	return best
}

// Unwantedness rates how badly a font fits into a chain headed by family head.
// Lower is better. A font intended as a fallback for head is best, followed by
// fonts not intended for a particular family; fonts intended for a different
// family come last. Italic fonts are penalized, as are weights different from
// 400, with heavier fonts preferred over lighter ones.
func Unwantedness(font *Font, head string) int {
	var score int
	switch font.FallbackFor {
	case head:
		score = 0
	case "":
		score = 10000
	default:
		score = 100000
	}
	if font.Style == StyleItalic {
		score += 1000
	}
	if d := font.Weight - 400; d > 0 {
		score += d
	} else if d < 0 {
		score += max(0, d+50)
	}
	return score
}
