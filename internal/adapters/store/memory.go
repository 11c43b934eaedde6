// Package store implements the entry registry in memory and on Redis.
package store

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultShards is the shard count used when NewMemory is given a non-positive value.
const DefaultShards = 16

type shard struct {
	mu      sync.RWMutex
	entries map[string]domain.Entry
}

// Memory implements ports.EntryStore with a sharded in-process map.
type Memory struct {
	shards []*shard
}

var _ ports.EntryStore = (*Memory)(nil)

// NewMemory creates an empty registry split into n shards.
func NewMemory(n int) *Memory {
	if n <= 0 {
		n = DefaultShards
	}
	m := &Memory{shards: make([]*shard, n)}
	for i := range m.shards {
		m.shards[i] = &shard{entries: make(map[string]domain.Entry)}
	}
	return m
}

func (m *Memory) shardFor(name string) *shard {
	return m.shards[xxhash.Sum64String(name)%uint64(len(m.shards))]
}

// Insert stores a copy of entry unless its name is already taken.
func (m *Memory) Insert(ctx context.Context, entry domain.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := m.shardFor(entry.Name)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[entry.Name]; ok {
		return duplicate(entry.Name)
	}
	s.entries[entry.Name] = entry.Clone()
	return nil
}

// Lookup returns a copy of the entry registered under name.
// Returns nil, nil if not found.
func (m *Memory) Lookup(ctx context.Context, name string) (*domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := m.shardFor(name)
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[name]
	if !ok {
		return nil, nil
	}
	c := entry.Clone()
	return &c, nil
}

// Len returns the number of registered entries.
func (m *Memory) Len() int {
	n := 0
	for _, s := range m.shards {
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}

func duplicate(name string) error {
	return zerr.With(zerr.Wrap(domain.ErrDuplicateName, "insert rejected"), "name", name)
}
