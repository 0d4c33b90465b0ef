package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a quest document
func Parse(data []byte) (map[string]Record, error) {
	records := make(map[string]Record)
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse quest document: %w", err)
	}
	return records, nil
}

// ReadFile loads a quest document from disk
func ReadFile(path string) (map[string]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quest document: %w", err)
	}

	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
