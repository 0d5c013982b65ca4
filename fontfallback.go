/*
Package fontfallback connects font manifests and font files to fallback chains.

Package [fallback] works on abstract families and their coverage. This package
provides the glue for the common case of a system-style font setup: an Android
fonts.xml manifest (package [fontsxml]) lists the families of a fallback chain
in order of priority, and a local directory tree (package [fontdir]) holds the
font binaries, from which coverage is extracted.

	set, _ := fontsxml.ParseFile("fonts.xml")
	dir, _ := fontdir.Scan("/usr/share/fonts")
	chain, err := fontfallback.ChainFromManifest(set, dir, "sans-serif")
	...
	items := chain.Itemize(text, "ja")
	for _, seg := range fontfallback.Describe(chain, text, items) {
	    fmt.Println(seg)
	}

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontfallback

import (
	"errors"
	"fmt"

	"github.com/npillmayer/fontfallback/fallback"
	"github.com/npillmayer/fontfallback/fontdir"
	"github.com/npillmayer/fontfallback/fontsxml"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontfallback'.
func tracer() tracing.Trace {
	return tracing.Select("fontfallback")
}

// ErrHeadUnavailable is returned if the font of the head family of a chain
// cannot be loaded.
var ErrHeadUnavailable = errors.New("head family unavailable")

// ChainFromManifest builds a fallback chain for the named family head of a
// manifest. For every family of the chain the font selected by
// [fontsxml.Familyset.NamedChain] is looked up in dir and its coverage is
// extracted. Fallback families whose font is missing or unusable are left out
// of the chain, with a warning. The head family is mandatory.
func ChainFromManifest(set *fontsxml.Familyset, dir *fontdir.Directory, head string,
	opts ...fallback.Option) (*fallback.Chain, error) {
	//
	selections, err := set.NamedChain(head)
	if err != nil {
		return nil, err
	}
	families := make([]fallback.Family, 0, len(selections))
	for i, sel := range selections {
		cps, err := dir.Coverage(sel.Font.Filename, sel.Font.Index)
		if err == nil && len(cps) == 0 {
			err = fmt.Errorf("font %s covers no code-points", sel.Font.Filename)
		}
		if err != nil {
			if i == 0 {
				return nil, fmt.Errorf("%w: %s: %w", ErrHeadUnavailable, head, err)
			}
			tracer().Errorf("dropping family %s from chain %q: %v", sel.Family, head, err)
			continue
		}
		families = append(families, fallback.NewFamily(sel.FamilyName, sel.Lang, cps))
	}
	tracer().Infof("chain %q: %d of %d families available", head, len(families), len(selections))
	return fallback.Build(head, families, nil, opts...)
}
