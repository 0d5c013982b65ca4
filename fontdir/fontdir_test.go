package fontdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/fontfallback/internal/covcache"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFamilyNameForFile(t *testing.T) {
	assert.Equal(t, "Noto Sans Ethiopic", FamilyNameForFile("NotoSansEthiopic-VF.ttf"))
	assert.Equal(t, "Roboto", FamilyNameForFile("Roboto-Regular.ttf"))
}

func TestScanIndexesFontFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfallback.fonts")
	defer teardown()
	//
	root := makeFontTree(t)
	dir, err := Scan(root)
	require.NoError(t, err)
	assert.Equal(t, 2, dir.Len())
	assert.Equal(t, root, dir.Root())

	path, ok := dir.Lookup("go-regular.ttf")
	require.True(t, ok, "expected lookup to ignore case")
	assert.Equal(t, filepath.Join(root, "Go-Regular.ttf"), path)

	_, ok = dir.Lookup("README.md")
	assert.False(t, ok, "non-font files must not be indexed")

	path, ok = dir.FileForFamily("Noto Sans Test")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "sub", "NotoSansTest-Regular.TTF"), path)
}

func TestScanFailsForMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestCoverage(t *testing.T) {
	dir, err := Scan(makeFontTree(t))
	require.NoError(t, err)
	cps, err := dir.Coverage("Go-Regular.ttf", 0)
	require.NoError(t, err)
	assert.Contains(t, cps, 'A')

	_, err = dir.Coverage("Missing.ttf", 0)
	assert.Error(t, err)
	_, err = dir.Coverage("Go-Regular.ttf", 2)
	assert.Error(t, err)
}

func TestCoverageOfFontRejectedBySFNT(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfallback.fonts")
	defer teardown()
	//
	dir, err := Scan("testdata")
	require.NoError(t, err)

	// x/image/font/sfnt rejects the table directory of this font
	_, err = dir.FontName("Selawik-VF-Subset.ttf", 0)
	assert.Error(t, err)

	cps, err := dir.Coverage("Selawik-VF-Subset.ttf", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, cps)
}

func TestFontName(t *testing.T) {
	dir, err := Scan(makeFontTree(t))
	require.NoError(t, err)
	name, err := dir.FontName("Go-Regular.ttf", 0)
	require.NoError(t, err)
	assert.Equal(t, "Go Regular", name)

	_, err = dir.FontName("Missing.ttf", 0)
	assert.Error(t, err)
}

func TestCoverageIsCached(t *testing.T) {
	dir, err := Scan(makeFontTree(t))
	require.NoError(t, err)
	cache, err := covcache.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer cache.Close()
	dir.UseCache(cache)

	cps, err := dir.Coverage("Go-Regular.ttf", 0)
	require.NoError(t, err)
	cached, ok, err := cache.Get(covcache.Key(goregular.TTF, 0))
	require.NoError(t, err)
	require.True(t, ok, "expected coverage to be stored in the cache")
	assert.Equal(t, cps, cached)

	again, err := dir.Coverage("Go-Regular.ttf", 0)
	require.NoError(t, err)
	assert.Equal(t, cps, again)
}

// --- Helpers ---------------------------------------------------------------

func makeFontTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	write := func(path string, data []byte) {
		require.NoError(t, os.WriteFile(path, data, 0o644))
	}
	write(filepath.Join(root, "Go-Regular.ttf"), goregular.TTF)
	write(filepath.Join(sub, "NotoSansTest-Regular.TTF"), goregular.TTF)
	write(filepath.Join(sub, "go-regular.ttf"), goregular.TTF) // duplicate name
	write(filepath.Join(root, "README.md"), []byte("# fonts"))
	return root
}
