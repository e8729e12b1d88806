// Package cas implements a content addressable cache of manifest documents.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	rtmfs "github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/fs"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	indexFileName = "index.json"
	blobDirName   = "blobs"
)

var _ ports.ManifestCache = (*Store)(nil)

// Store implements ports.ManifestCache.
// Documents are stored once per content hash under blobs/ and an index.json maps source
// keys to cache entries.
type Store struct {
	dir    string
	hasher ports.Hasher
	now    func() time.Time

	mu    sync.RWMutex
	index map[string]domain.CacheEntry
}

// NewStore creates a Store rooted at dir, loading any existing index.
func NewStore(dir string, hasher ports.Hasher) (*Store, error) {
	s := &Store{
		dir:    filepath.Clean(dir),
		hasher: hasher,
		now:    time.Now,
		index:  make(map[string]domain.CacheEntry),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// WithClock replaces the clock used to timestamp new entries.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) indexPath() string {
	return filepath.Join(s.dir, indexFileName)
}

func (s *Store) blobPath(contentHash string) string {
	return filepath.Join(s.dir, blobDirName, contentHash)
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.indexPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read manifest cache index")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.index); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCorrupt.Error()), "path", s.indexPath())
	}

	return nil
}

// save writes the index. The caller must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.index, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest cache index")
	}
	if err := rtmfs.WriteFileAtomic(s.indexPath(), data); err != nil {
		return zerr.Wrap(err, "failed to write manifest cache index")
	}
	return nil
}

// Get retrieves the entry and document cached for source.
// It returns nil, nil, nil when source has never been cached or its document is gone.
func (s *Store) Get(source string) (*domain.CacheEntry, []byte, error) {
	s.mu.RLock()
	entry, ok := s.index[s.hasher.Key(source)]
	s.mu.RUnlock()
	if !ok {
		return nil, nil, nil
	}

	data, err := os.ReadFile(s.blobPath(entry.ContentHash))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, zerr.Wrap(err, "failed to read cached manifest")
	}

	if got := s.hasher.Sum(data); got != entry.ContentHash {
		return nil, nil, zerr.With(zerr.With(domain.ErrCacheCorrupt, "source", source), "content_hash", got)
	}

	return &entry, data, nil
}

// Put stores data as the current document for source.
func (s *Store) Put(source string, pinned bool, data []byte) (domain.CacheEntry, error) {
	entry := domain.CacheEntry{
		Source:      source,
		ContentHash: s.hasher.Sum(data),
		Pinned:      pinned,
		Timestamp:   s.now().UTC(),
	}

	if err := rtmfs.WriteFileAtomic(s.blobPath(entry.ContentHash), data); err != nil {
		return domain.CacheEntry{}, zerr.Wrap(err, "failed to write cached manifest")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.index[s.hasher.Key(source)] = entry
	if err := s.save(); err != nil {
		return domain.CacheEntry{}, err
	}
	return entry, nil
}
