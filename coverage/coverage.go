/*
Package coverage extracts the set of code-points a font supports.

Coverage is read from the font's character map ('cmap' table). Fonts are
parsed with package font of go-text/typesetting, which understands single fonts
as well as font collections.
*/
package coverage

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/go-text/typesetting/font"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontfallback.coverage'.
func tracer() tracing.Trace {
	return tracing.Select("fontfallback.coverage")
}

// FromBinary returns the code-points mapped by the cmap of a font, sorted in
// ascending order. Index selects a face of a font collection and must be 0 for
// single fonts.
func FromBinary(data []byte, index int) ([]rune, error) {
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("coverage: cannot parse font: %w", err)
	}
	if index < 0 || index >= len(faces) {
		return nil, fmt.Errorf("coverage: face index %d out of range, font has %d faces", index, len(faces))
	}
	cmap := faces[index].Cmap
	if cmap == nil {
		return nil, fmt.Errorf("coverage: face %d has no character map", index)
	}
	var cps []rune
	iter := cmap.Iter()
	for iter.Next() {
		cp, _ := iter.Char()
		cps = append(cps, cp)
	}
	slices.Sort(cps)
	cps = slices.Compact(cps)
	tracer().Debugf("face %d maps %d code-points", index, len(cps))
	return cps, nil
}

// Ranges condenses a sorted list of code-points into inclusive intervals.
func Ranges(cps []rune) [][2]rune {
	var ranges [][2]rune
	for _, cp := range cps {
		if n := len(ranges); n > 0 && ranges[n-1][1]+1 == cp {
			ranges[n-1][1] = cp
			continue
		}
		ranges = append(ranges, [2]rune{cp, cp})
	}
	return ranges
}
