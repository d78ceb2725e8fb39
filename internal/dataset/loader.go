package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a dataset.
// Search order: customPath -> embedded default.
func Load(customPath string) (*Dataset, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset %s: %w", customPath, err)
		}
		return Parse(data)
	}
	return Parse(defaultDatasetYAML)
}

// Parse decodes a YAML dataset and checks its structural shape.
func Parse(data []byte) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	return &d, nil
}
