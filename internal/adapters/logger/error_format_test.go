package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cookbook/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name:         "zerr wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name:         "metadata does not add layers",
			err:          zerr.With(zerr.New("base error"), "key", "value"),
			wantMessages: []string{"base error"},
		},
		{
			name: "joined errors contribute every branch",
			err: errors.Join(
				zerr.New("summary failed"),
				zerr.Wrap(zerr.New("unresolved reference"), "expansion stopped"),
			),
			wantMessages: []string{"summary failed", "expansion stopped", "unresolved reference"},
		},
		{
			name:         "nil error",
			err:          nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessages, logger.CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	got := logger.FormatErrorEntries([]string{"summary failed", "unresolved reference\nname=Butter"})

	want := "Error: summary failed\n\n  Caused by:\n    → unresolved reference\n      name=Butter"
	assert.Equal(t, want, got)
}
