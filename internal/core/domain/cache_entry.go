package domain

import "time"

// CacheEntry records a manifest document held in the local cache.
type CacheEntry struct {
	Source      string    `json:"source,omitzero"`
	ContentHash string    `json:"content_hash,omitzero"`
	Pinned      bool      `json:"pinned,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}

// Fresh reports whether the entry may be served at now. Pinned entries never expire.
func (e CacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	if e.Pinned {
		return true
	}
	return now.Sub(e.Timestamp) < ttl
}
