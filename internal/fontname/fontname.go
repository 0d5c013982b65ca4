// Package fontname derives family names from font file names.
package fontname

import (
	"path/filepath"
	"regexp"
	"strings"
)

var camelCase = regexp.MustCompile(`([a-z])([A-Z])`)

// FamilyForFile derives a family name from a font file name, following the
// naming conventions of Google Fonts: the extension and everything after the
// first hyphen is dropped, and words written in camel case are separated.
//
//	NotoSansEthiopic-VF.ttf    => Noto Sans Ethiopic
//	Roboto-Regular.ttf         => Roboto
//	NotoSerifCJK-Regular.ttc   => Noto Serif CJK
func FamilyForFile(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	if before, _, found := strings.Cut(name, "-"); found {
		name = before
	}
	return camelCase.ReplaceAllString(name, "$1 $2")
}
