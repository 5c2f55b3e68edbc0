package cards

import (
	"fmt"
	"strings"
)

// GeneratePool expands the trait tables into the full card catalog. It is
// deterministic: one card per non-empty trait value, emitted in table order.
// The result is generated once at startup and treated as read-only.
func GeneratePool() []Card {
	var out []Card
	for _, cat := range Categories {
		for _, opt := range Options(cat) {
			if opt.Value == "" {
				continue
			}
			out = append(out, NewCard(cat, opt))
		}
	}
	return out
}

// NewCard builds the catalog entry for one trait table row.
func NewCard(cat Category, opt Option) Card {
	return Card{
		ID:         string(cat) + "-" + opt.Value,
		Name:       opt.Label,
		Category:   cat,
		TraitValue: opt.Value,
		ImageURL:   imageURL(cat, opt.Value),
	}
}

// imageURL derives the art path from category and trait value. Trait values
// with spaces ("ryo chi") map to underscores on disk.
func imageURL(cat Category, value string) string {
	return fmt.Sprintf("/assets/cards/%s/%s.png", cat, strings.ReplaceAll(value, " ", "_"))
}

// FindByID returns the catalog card with the given id.
func FindByID(catalog []Card, id string) (Card, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// FindByName returns the first catalog card with the given display name.
// Published decks are name-addressed, so loading resolves through here.
func FindByName(catalog []Card, name string) (Card, bool) {
	for _, c := range catalog {
		if c.Name == name {
			return c, true
		}
	}
	return Card{}, false
}
