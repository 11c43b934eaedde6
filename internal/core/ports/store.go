// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cookbook/internal/core/domain"
)

// EntryStore is the registry of cookbook entries.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type EntryStore interface {
	// Insert stores the entry. It returns domain.ErrDuplicateName if the name is
	// already present, in which case the store is left unchanged.
	// A concurrent Lookup observes the entry either fully absent or fully present.
	Insert(ctx context.Context, entry domain.Entry) error

	// Lookup returns the entry registered under name.
	// Returns nil, nil if not found.
	Lookup(ctx context.Context, name string) (*domain.Entry, error)
}
