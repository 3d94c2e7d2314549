package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Dataset is the top-level structure of an item import file.
type Dataset struct {
	Items []ItemImport `json:"items" yaml:"items" validate:"dive"`
}

// ItemImport defines one dashboard item in the import file.
type ItemImport struct {
	ID          string             `json:"id,omitempty" yaml:"id,omitempty"`
	Page        string             `json:"page" yaml:"page" validate:"required,notblank"`
	Category    string             `json:"category" yaml:"category" validate:"required,notblank"`
	Title       string             `json:"title" yaml:"title" validate:"required,notblank,max=200"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty" validate:"max=2000"`
	Status      string             `json:"status,omitempty" yaml:"status,omitempty"`
	Fields      map[string]string  `json:"fields,omitempty" yaml:"fields,omitempty"`
	Numbers     map[string]float64 `json:"numbers,omitempty" yaml:"numbers,omitempty"`
}

type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSONC Format = "jsonc"
)

// FormatFromPath picks the dataset format from the file extension. Plain
// .json files are read as JSONC, which is a superset.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSONC, nil
	default:
		return "", fmt.Errorf("unsupported dataset extension %q (want .yaml, .yml, .json or .jsonc)", filepath.Ext(path))
	}
}

// Parse decodes a dataset in the given format.
func Parse(data []byte, format Format) (*Dataset, error) {
	var ds Dataset
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("parsing yaml dataset: %w", err)
		}
	case FormatJSONC:
		if err := json.Unmarshal(jsonc.ToJSON(data), &ds); err != nil {
			return nil, fmt.Errorf("parsing jsonc dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown dataset format %q", format)
	}
	return &ds, nil
}

// LoadDataset reads and parses a dataset file.
func LoadDataset(path string) (*Dataset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	ds, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}
