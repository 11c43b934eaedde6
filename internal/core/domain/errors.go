package domain

import "go.trai.ch/zerr"

// Failure classes. Operations return errors that match exactly one of these
// with errors.Is, joined with a more detailed error carrying metadata.
var (
	// ErrValidation is returned when a candidate entry is malformed.
	ErrValidation = zerr.New("invalid entry")

	// ErrDuplicateName is returned when an entry name is already registered.
	ErrDuplicateName = zerr.New("entry name already exists")

	// ErrNotFound is returned when a summary is requested for an unknown name.
	ErrNotFound = zerr.New("entry not found")

	// ErrWrongType is returned when a summary is requested for an ingredient.
	ErrWrongType = zerr.New("entry is not a recipe")

	// ErrSummaryFailed is returned when a recipe cannot be expanded or totalled.
	ErrSummaryFailed = zerr.New("summary failed")
)

// Validation details.
var (
	// ErrInvalidEntryType is returned when the type field is not "recipe" or "ingredient".
	ErrInvalidEntryType = zerr.New("type must be \"recipe\" or \"ingredient\"")

	// ErrMissingName is returned when the name field is absent, empty or not a string.
	ErrMissingName = zerr.New("name must be a non-empty string")

	// ErrInvalidCookTime is returned when an ingredient's cookTime is absent, not an integer or negative.
	ErrInvalidCookTime = zerr.New("cookTime must be a non-negative integer")

	// ErrInvalidRequiredItems is returned when a recipe's requiredItems is absent or not a list.
	ErrInvalidRequiredItems = zerr.New("requiredItems must be a list")

	// ErrInvalidRequiredItem is returned when a required item lacks a name or is not an object.
	ErrInvalidRequiredItem = zerr.New("required item must be an object with a name")

	// ErrInvalidQuantity is returned when a required item's quantity is absent, not an integer or negative.
	ErrInvalidQuantity = zerr.New("quantity must be a non-negative integer")

	// ErrDuplicateRequiredItem is returned when a recipe lists the same item name twice.
	ErrDuplicateRequiredItem = zerr.New("duplicate required item")
)

// Expansion reasons, reported together with ErrSummaryFailed.
var (
	// ErrUnresolvedReference is returned when expansion reaches a name that is not registered.
	ErrUnresolvedReference = zerr.New("unresolved reference")

	// ErrCyclicDefinition is returned when a recipe refers back to itself or expansion is too deep.
	ErrCyclicDefinition = zerr.New("cyclic definition")

	// ErrQuantityOverflow is returned when multiplied quantities no longer fit in an int.
	ErrQuantityOverflow = zerr.New("quantity overflow")
)

// Infrastructure errors.
var (
	// ErrStoreReadFailed is returned when the entry store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read entry store")

	// ErrStoreWriteFailed is returned when the entry store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write entry store")

	// ErrStoreDecodeFailed is returned when a stored entry cannot be decoded.
	ErrStoreDecodeFailed = zerr.New("failed to decode stored entry")

	// ErrSeedReadFailed is returned when the seed file cannot be read.
	ErrSeedReadFailed = zerr.New("failed to read seed file")

	// ErrSeedParseFailed is returned when the seed file cannot be parsed.
	ErrSeedParseFailed = zerr.New("failed to parse seed file")

	// ErrSeedEntryFailed is returned when an entry of the seed file is rejected.
	ErrSeedEntryFailed = zerr.New("seed entry rejected")

	// ErrInvalidSettings is returned when the service settings are inconsistent.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")
)
