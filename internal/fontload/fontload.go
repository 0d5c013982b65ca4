// Package fontload reads font files from disk.
package fontload

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a font file loaded into memory, together with the SFNT view
// of one of its faces.
type ScalableFont struct {
	Fontname string
	Filepath string
	Index    int // face index in a font collection, 0 for single fonts
	Binary   []byte
	SFNT     *sfnt.Font
}

// IsCollection reports whether a font binary is a TrueType/OpenType collection (*.ttc).
func IsCollection(fbytes []byte) bool {
	return bytes.HasPrefix(fbytes, []byte("ttcf"))
}

// LoadOpenTypeFont loads an OpenType font (TTF, OTF or TTC) from a file. For
// collections, index selects the face; it must be 0 for single fonts.
func LoadOpenTypeFont(fontfile string, index int) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez, index)
	if err != nil {
		return nil, fmt.Errorf("font file %s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses an OpenType font (TTF, OTF or TTC) from memory.
func ParseOpenTypeFont(fbytes []byte, index int) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes, Index: index}
	if IsCollection(fbytes) {
		var c *sfnt.Collection
		if c, err = sfnt.ParseCollection(fbytes); err != nil {
			return nil, err
		}
		if index < 0 || index >= c.NumFonts() {
			return nil, fmt.Errorf("face index %d out of range, collection has %d fonts", index, c.NumFonts())
		}
		if f.SFNT, err = c.Font(index); err != nil {
			return nil, err
		}
	} else {
		if index != 0 {
			return nil, fmt.Errorf("face index %d requested for a single font", index)
		}
		if f.SFNT, err = sfnt.Parse(fbytes); err != nil {
			return nil, err
		}
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err != nil {
		f.Fontname, err = "", nil // name table is optional for our purposes
	}
	return f, nil
}
