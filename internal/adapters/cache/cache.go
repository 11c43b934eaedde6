// Package cache keeps successful recipe summaries in memory.
package cache

import (
	"slices"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/core/ports"
)

// DefaultCleanupInterval is how often expired summaries are purged.
const DefaultCleanupInterval = 30 * time.Minute

// Summaries implements ports.SummaryCache on top of go-cache.
// Summaries are copied in and out so callers never share the cached slices.
type Summaries struct {
	cache *gocache.Cache
}

var _ ports.SummaryCache = (*Summaries)(nil)

// NewSummaries creates a cache whose entries live for ttl. A zero ttl keeps them forever.
func NewSummaries(ttl time.Duration) *Summaries {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &Summaries{cache: gocache.New(ttl, DefaultCleanupInterval)}
}

// Get returns the cached summary for name.
func (s *Summaries) Get(name string) (*domain.Summary, bool) {
	value, found := s.cache.Get(name)
	if !found {
		return nil, false
	}
	summary, ok := value.(*domain.Summary)
	if !ok {
		return nil, false
	}
	return clone(summary), true
}

// Put caches a copy of summary under summary.Name.
func (s *Summaries) Put(summary *domain.Summary) {
	if summary == nil {
		return
	}
	s.cache.SetDefault(summary.Name, clone(summary))
}

// Len returns the number of cached summaries, expired ones included until cleanup.
func (s *Summaries) Len() int {
	return s.cache.ItemCount()
}

func clone(s *domain.Summary) *domain.Summary {
	c := *s
	c.Ingredients = slices.Clone(s.Ingredients)
	return &c
}

// Nop is a SummaryCache that never remembers anything.
type Nop struct{}

var _ ports.SummaryCache = Nop{}

// Get always misses.
func (Nop) Get(string) (*domain.Summary, bool) { return nil, false }

// Put discards the summary.
func (Nop) Put(*domain.Summary) {}
