// Package lists loads the subject name lists the quest generator expands.
package lists

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lawnchairsociety/questgen/internal/logger"
	"github.com/lawnchairsociety/questgen/internal/quest"
	"gopkg.in/yaml.v3"
)

var (
	ErrInputMissing   = errors.New("list file missing or unreadable")
	ErrInputMalformed = errors.New("list file malformed")
)

// LoadError reports which list failed and where it was read from
type LoadError struct {
	List quest.ListName
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("list %s (%s): %v", e.List, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// DefaultFiles maps each list to its file name inside the list directory
func DefaultFiles() map[quest.ListName]string {
	return map[quest.ListName]string{
		quest.ListMobs:      "mobs.yml",
		quest.ListBlocks:    "blocks.yml",
		quest.ListFood:      "food.yml",
		quest.ListSmeltable: "smeltable.yml",
		quest.ListTamable:   "tamable.yml",
		quest.ListRideable:  "rideable.yml",
	}
}

// Load reads every list the generator needs. Any failure aborts the whole load
// so no output is produced from a partial input set.
func Load(dir string, files map[quest.ListName]string) (quest.Lists, error) {
	result := make(quest.Lists, len(files))

	for _, name := range quest.AllListNames() {
		file, ok := files[name]
		if !ok || file == "" {
			return nil, &LoadError{List: name, Path: dir, Err: fmt.Errorf("%w: no file configured", ErrInputMissing)}
		}

		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, file)
		}

		names, err := LoadFile(path)
		if err != nil {
			return nil, &LoadError{List: name, Path: path, Err: err}
		}
		result[name] = names
		logger.Debug("Loaded list", "list", name, "path", path, "entries", len(names))
	}

	return result, nil
}

// LoadFile reads one YAML sequence of names
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputMissing, err)
	}
	return Parse(data)
}

// Parse decodes a YAML sequence of non-empty scalar names.
// An explicit empty sequence is valid; an empty document is not.
func Parse(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputMalformed, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInputMalformed)
	}

	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected a sequence of names at line %d", ErrInputMalformed, seq.Line)
	}

	names := make([]string, 0, len(seq.Content))
	for i, entry := range seq.Content {
		if entry.Kind != yaml.ScalarNode || entry.Tag == "!!null" {
			return nil, fmt.Errorf("%w: entry %d at line %d is not a name", ErrInputMalformed, i+1, entry.Line)
		}
		trimmed := strings.TrimSpace(entry.Value)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: entry %d at line %d is blank", ErrInputMalformed, i+1, entry.Line)
		}
		// Names are kept as written
		if trimmed != entry.Value {
			logger.Warning("List entry has surrounding whitespace", "entry", i+1, "line", entry.Line, "name", entry.Value)
		}
		names = append(names, entry.Value)
	}

	return names, nil
}
