package navfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads and parses the navigation catalog file.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the file at filePath.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load reads and parses the catalog file.
func (l *Loader) Load() (*Config, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read navigation file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse navigation yaml: %w", err)
	}

	return &config, nil
}
