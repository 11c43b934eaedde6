// Package domain contains the core cookbook models: entries, required items and summaries.
package domain

import "slices"

// EntryKind tags which payload of an Entry is populated.
type EntryKind uint8

const (
	// KindIngredient marks a base ingredient with a fixed cook time.
	KindIngredient EntryKind = iota + 1
	// KindRecipe marks a recipe composed of required items.
	KindRecipe
)

// String returns the wire name of the kind.
func (k EntryKind) String() string {
	switch k {
	case KindIngredient:
		return "ingredient"
	case KindRecipe:
		return "recipe"
	default:
		return "unknown"
	}
}

// ParseEntryKind maps a wire name to a kind. Matching is exact.
func ParseEntryKind(s string) (EntryKind, bool) {
	switch s {
	case "ingredient":
		return KindIngredient, true
	case "recipe":
		return KindRecipe, true
	default:
		return 0, false
	}
}

// RequiredItem references another entry by name with the quantity a recipe needs.
type RequiredItem struct {
	Name     string
	Quantity int
}

// Entry is either an ingredient or a recipe, both keyed by Name.
// CookTime is only meaningful for ingredients and RequiredItems only for recipes.
type Entry struct {
	Kind          EntryKind
	Name          string
	CookTime      int
	RequiredItems []RequiredItem
}

// NewIngredient creates an ingredient entry.
func NewIngredient(name string, cookTime int) Entry {
	return Entry{Kind: KindIngredient, Name: name, CookTime: cookTime}
}

// NewRecipe creates a recipe entry. The items slice is copied.
func NewRecipe(name string, items []RequiredItem) Entry {
	return Entry{Kind: KindRecipe, Name: name, RequiredItems: slices.Clone(items)}
}

// IsIngredient reports whether the entry is an ingredient.
func (e *Entry) IsIngredient() bool {
	return e.Kind == KindIngredient
}

// IsRecipe reports whether the entry is a recipe.
func (e *Entry) IsRecipe() bool {
	return e.Kind == KindRecipe
}

// Clone returns a deep copy so stored entries never share backing arrays with callers.
func (e *Entry) Clone() Entry {
	c := *e
	c.RequiredItems = slices.Clone(e.RequiredItems)
	return c
}

// RawEntry holds the unchecked fields of an entry submission, as decoded from JSON or YAML.
type RawEntry map[string]any

// Portion is one ingredient with a quantity, as produced by expansion.
type Portion struct {
	Name     string
	Quantity int
}

// Summary is the flattened view of a recipe.
type Summary struct {
	Name        string
	CookTime    int
	Ingredients []Portion
}
