package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/validation"
)

// ErrInvalidConfig marks a seed file that parsed but is not a usable inventory
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the JSON seed file for the inventory
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON.
// Names may repeat: the opening stock holds two Sulfuras.
type Def struct {
	Name     string `json:"name"`
	SellIn   int    `json:"sell_in"`
	Quality  int    `json:"quality"`
	Category string `json:"category,omitempty"` // derived from Name when empty
}

// Loader handles loading and validating item seed files
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	Build(config *Config) ([]*domain.Item, error)
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a Loader that checks files against the shipped items schema
func NewLoader() Loader {
	return NewLoaderWithSchema(ItemsSchemaPath)
}

// NewLoaderWithSchema creates a Loader that checks files against schemaPath
func NewLoaderWithSchema(schemaPath string) Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      schemaPath,
	}
}

// LoadItems reads, validates and builds the items in one step
func LoadItems(l Loader, path string) ([]*domain.Item, error) {
	config, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(config); err != nil {
		return nil, err
	}
	items, err := l.Build(config)
	if err != nil {
		return nil, err
	}
	slog.Default().Info(LogMsgSeedLoaded, "path", path, "version", config.Version, "items", len(items))
	return items, nil
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate applies the domain checks the schema cannot express
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	for i := range config.Items {
		if _, err := buildItem(i, &config.Items[i]); err != nil {
			return err
		}
	}
	return nil
}

// Build converts definitions into fresh domain items in file order
func (l *itemLoader) Build(config *Config) ([]*domain.Item, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	items := make([]*domain.Item, 0, len(config.Items))
	for i := range config.Items {
		item, err := buildItem(i, &config.Items[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func buildItem(index int, def *Def) (*domain.Item, error) {
	if strings.TrimSpace(def.Name) == "" {
		return nil, fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, index)
	}

	category := domain.CategoryFromName(def.Name)
	if def.Category != "" {
		parsed, err := domain.ParseCategory(def.Category)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtItemAtIndexInvalid, ErrInvalidConfig, index, def.Name, err)
		}
		category = parsed
	}

	item := domain.NewItemWithCategory(def.Name, def.SellIn, def.Quality, category)
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf(ErrFmtItemAtIndexInvalid, ErrInvalidConfig, index, def.Name, err)
	}
	return item, nil
}
