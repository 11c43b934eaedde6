package ports

import (
	"context"
	"iter"
)

// Watcher reports changes to a single file.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the file at path.
	// It returns an error if the watcher fails to start.
	Start(ctx context.Context, path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Changes yields once per debounced burst of writes to the watched file.
	Changes() iter.Seq[string]
}
