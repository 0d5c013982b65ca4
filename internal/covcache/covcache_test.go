package covcache

import (
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	cps := []rune{0x20, 0x21, 0x22, 0x41, 0x3042, 0x3043, 0x10FFFF}
	got, err := decode(encode(cps))
	require.NoError(t, err)
	assert.Equal(t, cps, got)

	got, err = decode(encode(nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeRejectsCorruptData(t *testing.T) {
	_, err := decode([]byte{0x80})
	assert.ErrorIs(t, err, ErrCorrupt)
	_, err = decode([]byte{0x01, 0x00}) // zero-length interval
	assert.ErrorIs(t, err, ErrCorrupt)
	_, err = decode([]byte{0xFF, 0xFF, 0x43, 0x02}) // beyond U+10FFFF
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestDecodeRejectsWrappingIntervals(t *testing.T) {
	uvarints := func(values ...uint64) []byte {
		var blob []byte
		for _, v := range values {
			blob = binary.AppendUvarint(blob, v)
		}
		return blob
	}
	for _, blob := range [][]byte{
		uvarints(1<<64-2, 5),       // gap wraps around
		uvarints(0, 3, 0, 1<<64-2), // length wraps around
		uvarints(0x10FFFF, 1, 0, 1),
	} {
		cps, err := decode(blob)
		assert.ErrorIs(t, err, ErrCorrupt, "decoded %v", cps)
	}
	cps, err := decode(uvarints(0x10FFFF, 1))
	require.NoError(t, err)
	assert.Equal(t, []rune{0x10FFFF}, cps)
}

func TestKeyDependsOnContentAndIndex(t *testing.T) {
	a := Key([]byte("font-a"), 0)
	assert.Equal(t, a, Key([]byte("font-a"), 0))
	assert.NotEqual(t, a, Key([]byte("font-b"), 0))
	assert.NotEqual(t, a, Key([]byte("font-a"), 1))
}

func TestCachePersistsCoverage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage.db")
	cache, err := Open(path)
	require.NoError(t, err)

	key := Key([]byte("some font"), 0)
	_, ok, err := cache.Get(key)
	require.NoError(t, err)
	assert.False(t, ok, "expected empty cache")

	cps := []rune{'a', 'b', 'c', 'x'}
	require.NoError(t, cache.Put(key, cps))
	require.NoError(t, cache.Close())

	cache, err = Open(path)
	require.NoError(t, err)
	defer cache.Close()
	got, ok, err := cache.Get(key)
	require.NoError(t, err)
	require.True(t, ok, "expected entry to survive re-opening the cache")
	assert.Equal(t, cps, got)

	require.NoError(t, cache.Put(key, []rune{'z'}))
	got, _, err = cache.Get(key)
	require.NoError(t, err)
	assert.Equal(t, []rune{'z'}, got)
}
