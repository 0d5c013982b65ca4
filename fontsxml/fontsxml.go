/*
Package fontsxml reads font manifests in the format of Android's fonts.xml.

A manifest is a 'familyset' containing font families and aliases. Named
families are the entry points for generic font names ("sans-serif", "serif",
...), unnamed families are the system-wide fallbacks, in order of priority:

	<familyset version="23">
	    <family name="sans-serif">
	        <font weight="400" style="normal">Roboto-Regular.ttf</font>
	    </family>
	    <alias name="arial" to="sans-serif" />
	    <family lang="und-Ethi">
	        <font weight="400" style="normal">NotoSansEthiopic-VF.ttf
	            <axis tag="wght" stylevalue="400" />
	        </font>
	    </family>
	</familyset>

Parsing is strict: unknown elements, attributes or attribute values are
reported as a [*ManifestError]. Manifests are produced by tooling and format
drift should be noticed rather than silently ignored.
*/
package fontsxml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontfallback.fontsxml'.
func tracer() tracing.Trace {
	return tracing.Select("fontfallback.fontsxml")
}

// Style is the style of a font.
type Style int

const (
	StyleNormal Style = iota
	StyleItalic
)

func (s Style) String() string {
	if s == StyleItalic {
		return "italic"
	}
	return "normal"
}

// Variant is the variant of a family, used by Android to select between
// compact and elegant designs of scripts with tall glyphs.
type Variant int

const (
	VariantDefault Variant = iota
	VariantCompact
	VariantElegant
)

func (v Variant) String() string {
	switch v {
	case VariantCompact:
		return "compact"
	case VariantElegant:
		return "elegant"
	}
	return "default"
}

// Axis is a position on a variation axis of a variable font.
type Axis struct {
	Tag   string // 4-letter OpenType axis tag, e.g. "wght"
	Value float64
}

// Font is a single font file of a family.
type Font struct {
	Weight         int // 400 if not specified
	Index          int // face index for font collections
	Filename       string
	Style          Style
	FallbackFor    string // name of a named family this font is intended for
	PostScriptName string
	Axes           []Axis
}

// Family is a font family of a manifest.
type Family struct {
	Name    string // empty for fallback families
	Lang    string // space-separated list of BCP 47 tags, may be empty
	Variant Variant
	Ignore  bool
	Fonts   []Font
}

func (f *Family) String() string {
	if f.Name != "" {
		return f.Name
	}
	if f.Lang != "" {
		return "fallback(" + f.Lang + ")"
	}
	if len(f.Fonts) > 0 {
		return "fallback(" + f.Fonts[0].Filename + ")"
	}
	return "fallback"
}

// Alias maps a family name to another family, optionally at a different weight.
type Alias struct {
	Name   string
	To     string
	Weight int // 0 if not specified
}

// Entry is an element of a familyset. Exactly one of Family and Alias is set.
type Entry struct {
	Family *Family
	Alias  *Alias
}

// Familyset is the content of a manifest, in document order.
type Familyset struct {
	Version string
	Entries []Entry
}

// --- Errors ----------------------------------------------------------------

// ErrNoSuchFamily is returned if a named family cannot be found in a manifest.
var ErrNoSuchFamily = errors.New("no such family")

// ErrFontless is returned for families without any fonts.
var ErrFontless = errors.New("family has no fonts")

// ManifestError reports content of a manifest which is not understood.
type ManifestError struct {
	Path      string // path of the offending element, e.g. "familyset/family[3]/font[1]"
	Attribute string // offending attribute; empty if the element itself is in error
	Issue     string
}

func (e *ManifestError) Error() string {
	var b strings.Builder
	b.WriteString("fonts.xml: ")
	b.WriteString(e.Path)
	if e.Attribute != "" {
		fmt.Fprintf(&b, " @%s", e.Attribute)
	}
	b.WriteString(": ")
	b.WriteString(e.Issue)
	return b.String()
}

func errManifest(path, attr, format string, args ...any) error {
	return &ManifestError{Path: path, Attribute: attr, Issue: fmt.Sprintf(format, args...)}
}
