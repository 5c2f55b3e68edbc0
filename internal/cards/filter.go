package cards

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter applies a drill-down selection to the catalog. With no active
// selection the whole catalog passes. Otherwise a card passes only when its
// own category has an explicit selection equal to the card's trait value;
// cards in categories without a selection are hidden, not shown.
func Filter(catalog []Card, sel Selection) []Card {
	if sel.IsEmpty() {
		return catalog
	}
	var out []Card
	for _, c := range catalog {
		want := sel.Get(c.Category)
		if want != "" && c.TraitValue == want {
			out = append(out, c)
		}
	}
	return out
}

// SortByName returns a copy sorted by display name, ascending,
// locale-aware and case-insensitive. Ties keep catalog order.
func SortByName(in []Card) []Card {
	out := make([]Card, len(in))
	copy(out, in)
	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
