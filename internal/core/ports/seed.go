package ports

import "go.trai.ch/cookbook/internal/core/domain"

// SeedLoader reads raw entries to preload into the registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=seed.go -destination=mocks/mock_seed.go -package=mocks
type SeedLoader interface {
	// Load reads the seed file at path and returns its entries in file order.
	Load(path string) ([]domain.RawEntry, error)
}
