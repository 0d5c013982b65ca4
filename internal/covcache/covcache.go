/*
Package covcache persists font coverage between runs.

Extracting the character map from a few hundred fallback fonts is expensive, so
coverage is stored in an SQLite database. Entries are keyed by the BLAKE3 digest
of the font binary and the face index, i.e. a changed font file is never served
stale coverage.
*/
package covcache

import (
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/schuko/tracing"
	"github.com/zeebo/blake3"
	_ "modernc.org/sqlite" // registers driver "sqlite"
)

// tracer traces with key 'fontfallback.cache'.
func tracer() tracing.Trace {
	return tracing.Select("fontfallback.cache")
}

const schema = `CREATE TABLE IF NOT EXISTS coverage (
	key    TEXT PRIMARY KEY,
	ranges BLOB NOT NULL
)`

// ErrCorrupt is returned for cache entries which cannot be decoded.
var ErrCorrupt = errors.New("corrupt coverage cache entry")

// Cache is a persistent store for font coverage. It is safe for concurrent use.
type Cache struct {
	db *sql.DB
}

// Open opens or creates a cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("coverage cache %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("coverage cache %s: %w", path, err)
	}
	tracer().Debugf("opened coverage cache %s", path)
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key computes the cache key for face index of a font binary.
func Key(fontBinary []byte, index int) string {
	sum := blake3.Sum256(fontBinary)
	return hex.EncodeToString(sum[:]) + ":" + strconv.Itoa(index)
}

// Get returns the coverage stored for key. The second return value is false if
// the cache holds no entry for key.
func (c *Cache) Get(key string) ([]rune, bool, error) {
	var blob []byte
	err := c.db.QueryRow(`SELECT ranges FROM coverage WHERE key = ?`, key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	cps, err := decode(blob)
	if err != nil {
		return nil, false, fmt.Errorf("key %s: %w", key, err)
	}
	return cps, true, nil
}

// Put stores the coverage for key, replacing an existing entry. Code-points
// have to be sorted in ascending order.
func (c *Cache) Put(key string, cps []rune) error {
	_, err := c.db.Exec(`INSERT OR REPLACE INTO coverage (key, ranges) VALUES (?, ?)`, key, encode(cps))
	return err
}

// encode writes code-points as a sequence of (gap, length) pairs of intervals,
// each as an unsigned varint. Gaps are relative to the end of the previous
// interval.
func encode(cps []rune) []byte {
	buf := make([]byte, 0, 16)
	next := rune(0)
	for i := 0; i < len(cps); {
		j := i
		for j+1 < len(cps) && cps[j+1] == cps[j]+1 {
			j++
		}
		buf = binary.AppendUvarint(buf, uint64(cps[i]-next))
		buf = binary.AppendUvarint(buf, uint64(j-i+1))
		next = cps[j] + 1
		i = j + 1
	}
	return buf
}

func decode(blob []byte) ([]rune, error) {
	var cps []rune
	next := uint64(0)
	for len(blob) > 0 {
		gap, n := binary.Uvarint(blob)
		if n <= 0 {
			return nil, ErrCorrupt
		}
		blob = blob[n:]
		length, n := binary.Uvarint(blob)
		if n <= 0 || length == 0 {
			return nil, ErrCorrupt
		}
		blob = blob[n:]
		// next <= 0x110000 holds, compare without overflowing
		if gap > 0x110000-next {
			return nil, ErrCorrupt
		}
		start := next + gap
		if length > 0x110000-start {
			return nil, ErrCorrupt
		}
		for cp := start; cp < start+length; cp++ {
			cps = append(cps, rune(cp))
		}
		next = start + length
	}
	return cps, nil
}
