package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/fontfallback"
	"github.com/npillmayer/fontfallback/fallback"
	"github.com/npillmayer/fontfallback/fontdir"
	"github.com/npillmayer/fontfallback/fontsxml"
	"github.com/pterm/pterm"
)

func printSegments(segments []fontfallback.Segment) {
	data := [][]string{
		{"Bytes", "Text", "Family"},
	}
	unresolved := 0
	for _, seg := range segments {
		family := seg.Family
		if !seg.Resolved {
			family = "(none)"
			unresolved++
		}
		data = append(data, []string{
			fmt.Sprintf("%d..%d", seg.Start, seg.End),
			fmt.Sprintf("%q", seg.Text),
			family,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if unresolved > 0 {
		pterm.Error.Printf("%d grapheme clusters not supported by any family\n", unresolved)
	}
}

func printChain(chain *fallback.Chain) {
	data := [][]string{
		{"Index", "Family", "Lang", "Code-points"},
	}
	for i, f := range chain.Families() {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			f.Name,
			f.Lang,
			fmt.Sprintf("%d", f.Coverage().Len()),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	r := chain.Report()
	pterm.Printf("Chain %q has %d families covering %d code-points\n", r.Chain, r.Families, r.Codepoints)
	pterm.Printf("  %d code-points map to exactly one family (%d mappings)\n", r.Distinct, r.Mappings)
	pterm.Printf("  %d code-points are shared by families without language\n", r.UnambiguousConflicts)
	pterm.Printf("  %d groups of language-tagged families share code-points\n", len(r.ConflictGroups))
	for _, g := range r.ConflictGroups {
		pterm.Printf("    %s: %d code-points\n", strings.Join(g.Names, ", "), len(g.Codepoints))
	}
}

// printFontFiles lists the font file selected for every family of a chain,
// together with the full name of its face.
func printFontFiles(selections []fontsxml.Selection, dir *fontdir.Directory) {
	data := [][]string{
		{"Family", "File", "Face", "Path"},
	}
	for _, sel := range selections {
		path, ok := dir.Lookup(sel.Font.Filename)
		if !ok {
			path = "(missing)"
		}
		face, err := dir.FontName(sel.Font.Filename, sel.Font.Index)
		if err != nil {
			tracer().Infof("no face name for %s: %v", sel.Font.Filename, err)
			face = "?"
		}
		data = append(data, []string{
			sel.FamilyName,
			fmt.Sprintf("%s#%d", sel.Font.Filename, sel.Font.Index),
			face,
			path,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printClusters(clusters []string) {
	data := [][]string{
		{"#", "Code-points", "Cluster"},
	}
	for i, c := range clusters {
		cps := make([]string, 0, utf8.RuneCountInString(c))
		for _, r := range c {
			cps = append(cps, fmt.Sprintf("U+%04X", r))
		}
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			strings.Join(cps, " "),
			fmt.Sprintf("%q", c),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
