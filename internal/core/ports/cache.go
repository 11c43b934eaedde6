package ports

import "go.trai.ch/cookbook/internal/core/domain"

// SummaryCache remembers successful summaries by recipe name.
// Entries are immutable once registered, so a cached summary never goes stale.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type SummaryCache interface {
	// Get returns the cached summary for name, if any.
	Get(name string) (*domain.Summary, bool)
	// Put caches the summary under its recipe name.
	Put(summary *domain.Summary)
}
