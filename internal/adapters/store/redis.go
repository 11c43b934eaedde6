package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPrefix namespaces registry keys when no prefix is configured.
const DefaultPrefix = "cookbook:"

// record is the JSON document stored per entry.
type record struct {
	Type          string       `json:"type"`
	Name          string       `json:"name"`
	CookTime      int          `json:"cookTime,omitempty"`
	RequiredItems []itemRecord `json:"requiredItems,omitempty"`
}

type itemRecord struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Redis implements ports.EntryStore with one Redis key per entry.
// SET NX makes the name check and the write a single server-side step.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.EntryStore = (*Redis)(nil)

// NewRedis creates a registry on top of client. Keys are "<prefix>entry:<name>".
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Redis{client: client, prefix: prefix}
}

// Close releases the client's connections.
func (r *Redis) Close() error {
	if err := r.client.Close(); err != nil {
		return zerr.Wrap(err, "failed to close redis client")
	}
	return nil
}

func (r *Redis) key(name string) string {
	return r.prefix + "entry:" + name
}

// Insert stores entry unless its name is already taken.
func (r *Redis) Insert(ctx context.Context, entry domain.Entry) error {
	data, err := json.Marshal(toRecord(entry))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "name", entry.Name)
	}

	ok, err := r.client.SetNX(ctx, r.key(entry.Name), data, 0).Result()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "name", entry.Name)
	}
	if !ok {
		return duplicate(entry.Name)
	}
	return nil
}

// Lookup returns the entry registered under name.
// Returns nil, nil if not found.
func (r *Redis) Lookup(ctx context.Context, name string) (*domain.Entry, error) {
	data, err := r.client.Get(ctx, r.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "name", name)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreDecodeFailed.Error()), "name", name)
	}
	entry, err := fromRecord(rec)
	if err != nil {
		return nil, zerr.With(err, "name", name)
	}
	return &entry, nil
}

// Ping checks that the server is reachable.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return nil
}

func toRecord(e domain.Entry) record {
	rec := record{Type: e.Kind.String(), Name: e.Name}
	if e.IsIngredient() {
		rec.CookTime = e.CookTime
		return rec
	}
	rec.RequiredItems = make([]itemRecord, len(e.RequiredItems))
	for i, item := range e.RequiredItems {
		rec.RequiredItems[i] = itemRecord{Name: item.Name, Quantity: item.Quantity}
	}
	return rec
}

func fromRecord(rec record) (domain.Entry, error) {
	kind, ok := domain.ParseEntryKind(rec.Type)
	if !ok {
		return domain.Entry{}, zerr.With(domain.ErrStoreDecodeFailed, "type", rec.Type)
	}
	if kind == domain.KindIngredient {
		return domain.NewIngredient(rec.Name, rec.CookTime), nil
	}
	items := make([]domain.RequiredItem, len(rec.RequiredItems))
	for i, item := range rec.RequiredItems {
		items[i] = domain.RequiredItem{Name: item.Name, Quantity: item.Quantity}
	}
	return domain.NewRecipe(rec.Name, items), nil
}
