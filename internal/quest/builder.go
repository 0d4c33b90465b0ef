package quest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownKind     = errors.New("unknown quest kind")
	ErrSubjectRequired = errors.New("quest kind requires a subject")
	ErrMissingList     = errors.New("missing subject list")
	ErrDuplicateID     = errors.New("duplicate quest identifier")
)

// Source supplies random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// SampleProgress draws a required progress value uniformly from the kind's closed range
func SampleProgress(rng Source, spec *KindSpec) int {
	return spec.MinProgress + rng.Intn(spec.MaxProgress-spec.MinProgress+1)
}

// Build creates a quest of the given kind. Subject must be set for per-subject
// kinds and is ignored otherwise.
func Build(rng Source, spec *KindSpec, id, subject string) (*Quest, error) {
	if !spec.RequiresSubject {
		subject = ""
	} else if subject == "" {
		return nil, fmt.Errorf("%w: %s (id %s)", ErrSubjectRequired, spec.Kind, id)
	}

	progress := SampleProgress(rng, spec)
	difficulty := Classify(progress)

	fill := strings.NewReplacer(
		placeholderSubject, subject,
		placeholderProgress, strconv.Itoa(progress),
	)

	material := spec.Material
	if material == "" {
		material = subject
	}

	return &Quest{
		ID:               id,
		Kind:             spec.Kind,
		Subject:          subject,
		RequiredProgress: progress,
		Tier:             difficulty.Tier,
		Points:           difficulty.Points,
		ExpLabel:         difficulty.ExpLabel,
		Name:             fill.Replace(spec.Name),
		Item: Item{
			Name:     titlePrefix + fill.Replace(spec.Title),
			Material: material,
			Lore:     buildLore(spec.LorePrefix, fill.Replace(spec.Objective), difficulty.ExpLabel),
		},
		AntiAbuse: spec.AntiAbuse,
	}, nil
}

// buildLore returns the eight flavor text lines shared by every kind.
// The %...% tokens are filled in by the plugin at render time.
func buildLore(prefix, objective, expLabel string) []string {
	return []string{
		prefix + "To complete this quest, you must",
		prefix + objective,
		"",
		"&e&lINFORMATION",
		prefix + "EXP: &f" + expLabel,
		prefix + "%total_progress%&7/&e%required_progress%",
		"",
		"%progress_bar% &7(&a%percentage_progress%&7)",
	}
}
