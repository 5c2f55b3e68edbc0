package cards

// Category is one of the fixed trait categories a card can belong to.
type Category string

const (
	CategoryHead        Category = "head"
	CategoryMouth       Category = "mouth"
	CategoryEyes        Category = "eyes"
	CategoryClothes     Category = "clothes"
	CategoryAccessories Category = "accessories"
	CategoryDiscipline  Category = "discipline"
	CategoryFur         Category = "fur"
)

// Categories lists every trait category in table order.
var Categories = []Category{
	CategoryHead,
	CategoryMouth,
	CategoryEyes,
	CategoryClothes,
	CategoryAccessories,
	CategoryDiscipline,
	CategoryFur,
}

// Option is a single {value, label} row of a trait table.
type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Card is an immutable catalog entry. Name doubles as the cross-session
// identity key when decks are published and loaded back by name.
type Card struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   Category `json:"category"`
	TraitValue string   `json:"traitValue"`
	ImageURL   string   `json:"imageUrl"`
}

// Selection maps each category to an optional selected trait value.
// The zero value means no filter is set anywhere; resetting filters is a
// whole-value replacement with the zero Selection.
type Selection struct {
	Head        string `json:"head"`
	Mouth       string `json:"mouth"`
	Eyes        string `json:"eyes"`
	Clothes     string `json:"clothes"`
	Accessories string `json:"accessories"`
	Discipline  string `json:"discipline"`
	Fur         string `json:"fur"`
}

// Get returns the selected value for a category, or "" when unset.
func (s Selection) Get(cat Category) string {
	switch cat {
	case CategoryHead:
		return s.Head
	case CategoryMouth:
		return s.Mouth
	case CategoryEyes:
		return s.Eyes
	case CategoryClothes:
		return s.Clothes
	case CategoryAccessories:
		return s.Accessories
	case CategoryDiscipline:
		return s.Discipline
	case CategoryFur:
		return s.Fur
	}
	return ""
}

// IsEmpty reports whether no category has an active selection.
func (s Selection) IsEmpty() bool {
	return s == Selection{}
}
