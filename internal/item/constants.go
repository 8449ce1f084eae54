package item

// Item configuration file names
const (
	// ConfigFileName is the name of the items seed file
	ConfigFileName = "items.json"

	// ItemsSchemaPath is the JSON schema every seed file must satisfy
	ItemsSchemaPath = "configs/schemas/items.schema.json"
)

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemAtIndexEmpty   = "%w: item at index %d has empty name"
	ErrFmtItemAtIndexInvalid = "%w: item at index %d (%q): %w"
)

// Log messages
const (
	LogMsgSeedLoaded = "Items seed loaded"
)
