package fallback

import "math"

// Scores of a family with respect to a grapheme cluster. There are just three
// tiers: unsupported, supported, supported and matching the requested language.
const (
	scoreReject    = math.MinInt
	scoreSupported = 0
	scoreLangMatch = math.MaxInt
)

// VS16 (emoji presentation selector) is exempt from coverage checks.
const variationSelector16 = '\uFE0F'

// score rates how well family f is suited to display grapheme for language lang.
func score(f *Family, lang string, grapheme string) int {
	for _, cp := range grapheme {
		if cp != variationSelector16 && !f.coverage.Contains(cp) {
			return scoreReject
		}
	}
	if f.HasLang() && f.Lang == lang {
		return scoreLangMatch
	}
	return scoreSupported
}

// bestFamily walks the chain in priority order to find the family best
// supporting the complete grapheme. Among equally rated families the one
// earlier in the chain wins.
func (c *Chain) bestFamily(lang string, grapheme string) (FamilyIndex, bool) {
	winner := FamilyIndex(0)
	best := score(&c.families[0], lang, grapheme)
	for i := 1; i < len(c.families) && best != scoreLangMatch; i++ {
		if s := score(&c.families[i], lang, grapheme); s > best {
			winner, best = FamilyIndex(i), s
		}
	}
	if best == scoreReject {
		return NoFamily, false
	}
	return winner, true
}
