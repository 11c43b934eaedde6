// Package httpapi exposes the cookbook over HTTP with a chi router.
package httpapi

import (
	"context"

	"go.trai.ch/cookbook/internal/core/domain"
)

// Service is the application surface served over HTTP.
type Service interface {
	AddEntry(ctx context.Context, raw domain.RawEntry) error
	Summarize(ctx context.Context, name string) (*domain.Summary, error)
	CleanName(raw string) (string, bool)
}
