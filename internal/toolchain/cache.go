package toolchain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when CachePayload format changes.
const cacheSchemaVersion uint16 = 1

// Digest is a fixed 256-bit cache key.
type Digest [32]byte

// CacheKey derives the cache key for one source file: content plus the
// keyword-table fingerprint plus the schema version, so both vocabulary
// changes and format changes invalidate old entries.
func CacheKey(content []byte, tableFingerprint [32]byte) Digest {
	h := sha256.New()
	var schema [2]byte
	binary.LittleEndian.PutUint16(schema[:], cacheSchemaVersion)
	_, _ = h.Write(schema[:])
	_, _ = h.Write(tableFingerprint[:])
	_, _ = h.Write(content)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// CachePayload stores one rewritten file.
type CachePayload struct {
	Schema uint16
	Source string
	Output []byte
}

// DiskCache keeps rewritten output on disk keyed by content digest.
// Thread-safe for concurrent access. A nil *DiskCache is a no-op cache.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location: $XDG_CACHE_HOME/<app> or ~/.cache/<app>.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt opens a cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *CachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = cacheSchemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), p)
}

// Get reads a payload from the disk cache. False means a clean miss;
// entries written under a different schema version also count as misses.
func (c *DiskCache) Get(key Digest, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after vocabulary changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
