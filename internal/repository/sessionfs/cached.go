package sessionfs

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/rf-toolkit/linkbudget/internal/usecase/sessions"
)

// CleanupInterval is how often expired cache entries are removed.
const CleanupInterval = 30 * time.Second

// CachedStore is a TTL read cache in front of another Store. A TTL of 0
// disables caching entirely and every Load hits the backing store.
type CachedStore struct {
	next  sessions.Store
	cache *gocache.Cache
	ttl   time.Duration
}

// NewCachedStore -.
func NewCachedStore(next sessions.Store, ttl time.Duration) *CachedStore {
	return &CachedStore{
		next:  next,
		cache: gocache.New(ttl, CleanupInterval),
		ttl:   ttl,
	}
}

// Load -.
func (s *CachedStore) Load(id string) ([]byte, bool, error) {
	if s.ttl > 0 {
		if cached, found := s.cache.Get(id); found {
			return cached.([]byte), true, nil
		}
	}

	raw, found, err := s.next.Load(id)
	if err != nil || !found {
		return raw, found, err
	}

	if s.ttl > 0 {
		s.cache.Set(id, raw, s.ttl)
	}

	return raw, true, nil
}

// Save writes through and refreshes the cached copy so reads within the TTL
// window see their own writes.
func (s *CachedStore) Save(id string, data []byte) error {
	if err := s.next.Save(id, data); err != nil {
		return err
	}

	if s.ttl > 0 {
		s.cache.Set(id, data, s.ttl)
	}

	return nil
}

// Delete -.
func (s *CachedStore) Delete(id string) error {
	s.cache.Delete(id)

	return s.next.Delete(id)
}
