package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	propdeckerrors "github.com/alexisbeaulieu97/propdeck/pkg/errors"
)

// DefaultPath is the pseudo-path reported for the embedded catalog.
const DefaultPath = "<embedded>/components.yaml"

//go:embed components.yaml
var defaultCatalog []byte

// Format is a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from a file extension. Anything that is not
// .toml is read as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(DefaultPath, defaultCatalog, FormatYAML)
}

// Load reads, decodes and validates the catalog at path. An empty path loads
// the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, propdeckerrors.NewParseError(path, 0, err)
	}

	return Parse(path, data, FormatFor(path))
}

// Parse decodes data in the given format and validates the result.
func Parse(path string, data []byte, format Format) (*Catalog, error) {
	var c Catalog

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, tomlParseError(path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, propdeckerrors.NewYAMLParseError(path, err)
		}
	default:
		return nil, propdeckerrors.NewParseError(path, 0, fmt.Errorf("unsupported catalog format %q", format))
	}

	if err := Validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

func tomlParseError(path string, err error) error {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return propdeckerrors.NewParseError(path, row, err)
	}
	return propdeckerrors.NewParseError(path, 0, err)
}
