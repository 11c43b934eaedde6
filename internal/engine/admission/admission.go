// Package admission checks candidate entries and admits them into the registry.
package admission

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/core/ports"
	"go.trai.ch/zerr"
)

// Field names of a raw entry.
const (
	FieldType          = "type"
	FieldName          = "name"
	FieldCookTime      = "cookTime"
	FieldRequiredItems = "requiredItems"
	FieldQuantity      = "quantity"
)

// Validator turns raw submissions into entries, consulting the store for name uniqueness.
type Validator struct {
	store ports.EntryStore
}

// NewValidator creates a Validator reading from store.
func NewValidator(store ports.EntryStore) *Validator {
	return &Validator{store: store}
}

// Validate checks raw and returns the typed entry it describes.
// Checks run in a fixed order: type, name, name uniqueness, then the kind-specific fields.
// Malformed input fails with domain.ErrValidation and a taken name with domain.ErrDuplicateName.
func (v *Validator) Validate(ctx context.Context, raw domain.RawEntry) (domain.Entry, error) {
	typ, _ := raw[FieldType].(string)
	kind, ok := domain.ParseEntryKind(typ)
	if !ok {
		return domain.Entry{}, invalid(zerr.With(domain.ErrInvalidEntryType, "field", FieldType))
	}

	name, _ := raw[FieldName].(string)
	if name == "" {
		return domain.Entry{}, invalid(zerr.With(domain.ErrMissingName, "field", FieldName))
	}

	existing, err := v.store.Lookup(ctx, name)
	if err != nil {
		return domain.Entry{}, err
	}
	if existing != nil {
		return domain.Entry{}, zerr.With(zerr.Wrap(domain.ErrDuplicateName, "entry rejected"), "name", name)
	}

	if kind == domain.KindIngredient {
		return validateIngredient(name, raw)
	}
	return validateRecipe(name, raw)
}

// Admit validates raw and inserts the resulting entry.
// When a concurrent writer takes the name between the check and the insert,
// the store's domain.ErrDuplicateName is returned and nothing is stored.
func (v *Validator) Admit(ctx context.Context, raw domain.RawEntry) (domain.Entry, error) {
	entry, err := v.Validate(ctx, raw)
	if err != nil {
		return domain.Entry{}, err
	}
	if err := v.store.Insert(ctx, entry); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}

func validateIngredient(name string, raw domain.RawEntry) (domain.Entry, error) {
	cookTime, ok := asInt(raw[FieldCookTime])
	if !ok || cookTime < 0 {
		err := zerr.With(domain.ErrInvalidCookTime, "name", name)
		return domain.Entry{}, invalid(zerr.With(err, "field", FieldCookTime))
	}
	return domain.NewIngredient(name, cookTime), nil
}

func validateRecipe(name string, raw domain.RawEntry) (domain.Entry, error) {
	list, ok := asList(raw[FieldRequiredItems])
	if !ok {
		err := zerr.With(domain.ErrInvalidRequiredItems, "name", name)
		return domain.Entry{}, invalid(zerr.With(err, "field", FieldRequiredItems))
	}

	items := make([]domain.RequiredItem, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for i, elem := range list {
		fields, ok := asObject(elem)
		if !ok {
			return domain.Entry{}, invalid(itemError(domain.ErrInvalidRequiredItem, name, i))
		}

		itemName, _ := fields[FieldName].(string)
		if itemName == "" {
			return domain.Entry{}, invalid(itemError(domain.ErrInvalidRequiredItem, name, i))
		}

		quantity, ok := asInt(fields[FieldQuantity])
		if !ok || quantity < 0 {
			return domain.Entry{}, invalid(zerr.With(itemError(domain.ErrInvalidQuantity, name, i), "item", itemName))
		}

		if _, dup := seen[itemName]; dup {
			err := zerr.With(zerr.Wrap(domain.ErrDuplicateRequiredItem, "recipe rejected"), "name", name)
			return domain.Entry{}, invalid(zerr.With(err, "item", itemName))
		}
		seen[itemName] = struct{}{}

		items = append(items, domain.RequiredItem{Name: itemName, Quantity: quantity})
	}

	return domain.NewRecipe(name, items), nil
}

// invalid classifies detail as a validation failure.
func invalid(detail error) error {
	return errors.Join(domain.ErrValidation, detail)
}

func itemError(base error, name string, index int) error {
	return zerr.With(zerr.With(base, "name", name), "index", index)
}

// asInt accepts integer values as produced by the JSON (UseNumber) and YAML decoders.
// Floats, strings and booleans are rejected, as are numbers that do not fit in an int.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return asInt(i)
	default:
		return 0, false
	}
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case domain.RawEntry:
		return m, true
	default:
		return nil, false
	}
}
