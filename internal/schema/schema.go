// Package schema validates quest documents before they are written.
package schema

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/lawnchairsociety/questgen/internal/document"
	"github.com/lawnchairsociety/questgen/internal/quest"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed quest_document.schema.json
var documentSchema []byte

// ValidationError lists every problem found in one document
type ValidationError struct {
	Document string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document %s failed validation: %s", e.Document, strings.Join(e.Problems, "; "))
}

// Validator checks quest documents against the embedded JSON schema
// plus the rules the schema cannot express
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compiles the embedded schema
func NewValidator() (*Validator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(documentSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile quest schema: %w", err)
	}
	return &Validator{schema: s}, nil
}

// Validate checks one document's records. It returns a *ValidationError
// when the document is invalid.
func (v *Validator) Validate(name string, records map[string]document.Record) error {
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(records))
	if err != nil {
		return fmt.Errorf("failed to validate %s: %w", name, err)
	}

	var problems []string
	for _, re := range result.Errors() {
		problems = append(problems, re.String())
	}
	problems = append(problems, checkRules(records)...)

	if len(problems) > 0 {
		return &ValidationError{Document: name, Problems: problems}
	}
	return nil
}

// ValidateCollection validates the plugin records of a generated collection
func (v *Validator) ValidateCollection(c *quest.Collection) error {
	return v.Validate(c.Category.Document, document.Records(c))
}

// checkRules enforces per-record consistency: reward points match the tier of
// the required progress, and subjects appear only on per-subject kinds
func checkRules(records map[string]document.Record) []string {
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var problems []string
	for _, id := range ids {
		rec := records[id]

		if want := quest.Classify(rec.RequiredProgress).Points; rec.Points != want {
			problems = append(problems, fmt.Sprintf("%s: points %d do not match required-progress %d (want %d)", id, rec.Points, rec.RequiredProgress, want))
		}

		spec, err := quest.SpecFor(quest.Kind(rec.Type))
		if err != nil {
			continue // Reported by the schema enum
		}
		if spec.RequiresSubject && rec.Variable == "" {
			problems = append(problems, fmt.Sprintf("%s: %s quest has no variable", id, rec.Type))
		}
		if !spec.RequiresSubject && rec.Variable != "" {
			problems = append(problems, fmt.Sprintf("%s: %s quest must not have a variable", id, rec.Type))
		}
		if rec.AntiAbuse != spec.AntiAbuse {
			problems = append(problems, fmt.Sprintf("%s: anti-abuse is %v for %s", id, rec.AntiAbuse, rec.Type))
		}
	}
	return problems
}
