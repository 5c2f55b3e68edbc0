package cards

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// customFile is the top-level structure of data/custom_traits.yaml.
type customFile struct {
	Traits []customTraits `yaml:"traits"`
}

type customTraits struct {
	Category Category `yaml:"category"`
	Options  []Option `yaml:"options"`
}

// LoadCustomCards loads extra trait options from a data directory
// (best-effort). A missing file is fine; only a present-but-broken file is
// an error. Rows with a blank value or label, or an unknown category, are
// skipped.
func LoadCustomCards(dataDir string) ([]Card, error) {
	path := filepath.Join(dataDir, "custom_traits.yaml")
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cf customFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var out []Card
	for _, group := range cf.Traits {
		if Options(group.Category) == nil {
			continue
		}
		for _, opt := range group.Options {
			if opt.Value == "" || opt.Label == "" {
				continue
			}
			out = append(out, NewCard(group.Category, opt))
		}
	}
	return out, nil
}

// Merge appends extra cards to a catalog, skipping ids the catalog already
// holds. The base slice is not mutated.
func Merge(base, extra []Card) []Card {
	out := make([]Card, len(base), len(base)+len(extra))
	copy(out, base)
	seen := make(map[string]bool, len(base))
	for _, c := range base {
		seen[c.ID] = true
	}
	for _, c := range extra {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}
