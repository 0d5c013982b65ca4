/*
Package fontdir gives access to a local directory tree of font files, such as
a checkout of the Google Fonts repository or a copy of a system font folder.

Font files are identified by their file name, compared case-insensitively, as
this is how font manifests refer to them.
*/
package fontdir

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/fontfallback/coverage"
	"github.com/npillmayer/fontfallback/internal/covcache"
	"github.com/npillmayer/fontfallback/internal/fontload"
	"github.com/npillmayer/fontfallback/internal/fontname"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontfallback.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("fontfallback.fonts")
}

var fontExtensions = []string{".ttf", ".otf", ".ttc"}

// Directory is an index of the font files below a root directory.
type Directory struct {
	root     string
	files    map[string]string // lower-case file name -> path
	families map[string]string // family name -> lower-case file name
	cache    *covcache.Cache
}

// Scan walks the directory tree below root and indexes every font file
// found. If a file name occurs more than once, the first one found wins.
func Scan(root string) (*Directory, error) {
	dir := &Directory{
		root:     root,
		files:    make(map[string]string),
		families: make(map[string]string),
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			tracer().Errorf("walk error at %s: %v", path, err)
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() || !isFontFile(d.Name()) {
			return nil
		}
		dir.add(d.Name(), path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning font directory %s: %w", root, err)
	}
	tracer().Infof("%d font files below %s", len(dir.files), root)
	return dir, nil
}

func (dir *Directory) add(filename, path string) {
	key := strings.ToLower(filename)
	if prev, ok := dir.files[key]; ok {
		tracer().Infof("multiple files named %s: using %s, ignoring %s", filename, prev, path)
		return
	}
	dir.files[key] = path
	family := fontname.FamilyForFile(filename)
	if _, ok := dir.families[family]; !ok {
		dir.families[family] = key
	}
}

func isFontFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range fontExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// UseCache installs a persistent cache for coverage data.
func (dir *Directory) UseCache(cache *covcache.Cache) {
	dir.cache = cache
}

// Root returns the directory the index has been built from.
func (dir *Directory) Root() string {
	return dir.root
}

// Len returns the number of font files indexed.
func (dir *Directory) Len() int {
	return len(dir.files)
}

// Lookup returns the path of a font file.
func (dir *Directory) Lookup(filename string) (string, bool) {
	path, ok := dir.files[strings.ToLower(filename)]
	return path, ok
}

// FileForFamily returns the path of the first font file whose name derives to
// the given family name (see [FamilyNameForFile]).
func (dir *Directory) FileForFamily(family string) (string, bool) {
	key, ok := dir.families[family]
	if !ok {
		return "", false
	}
	return dir.files[key], true
}

// Coverage returns the code-points supported by face index of a font file.
// If a cache is installed, coverage is served from the cache when possible.
func (dir *Directory) Coverage(filename string, index int) ([]rune, error) {
	path, ok := dir.Lookup(filename)
	if !ok {
		return nil, fmt.Errorf("font file %s not found below %s", filename, dir.root)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var key string
	if dir.cache != nil {
		key = covcache.Key(data, index)
		if cps, ok, err := dir.cache.Get(key); err != nil {
			tracer().Errorf("coverage cache: %v", err)
		} else if ok {
			return cps, nil
		}
	}
	cps, err := coverage.FromBinary(data, index)
	if err != nil {
		return nil, fmt.Errorf("font file %s: %w", path, err)
	}
	if dir.cache != nil {
		if err := dir.cache.Put(key, cps); err != nil {
			tracer().Errorf("coverage cache: %v", err)
		}
	}
	return cps, nil
}

// FontName returns the full name of face index of a font file, as recorded in
// its 'name' table. It is informational only: fonts the name cannot be read
// from may still provide coverage.
func (dir *Directory) FontName(filename string, index int) (string, error) {
	path, ok := dir.Lookup(filename)
	if !ok {
		return "", fmt.Errorf("font file %s not found below %s", filename, dir.root)
	}
	font, err := fontload.LoadOpenTypeFont(path, index)
	if err != nil {
		return "", err
	}
	return font.Fontname, nil
}

// FamilyNameForFile derives a family name from a font file name, following
// the naming conventions of Google Fonts: the extension and everything after
// the first hyphen is dropped, and words written in camel case are separated.
//
//	NotoSansEthiopic-VF.ttf    => Noto Sans Ethiopic
//	Roboto-Regular.ttf         => Roboto
func FamilyNameForFile(filename string) string {
	return fontname.FamilyForFile(filename)
}
