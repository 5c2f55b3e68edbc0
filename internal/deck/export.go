package deck

import "strings"

// ExportText renders a deck as plain text, one card name per line in deck
// order, duplicates included. It is meant for manual copy, not a file
// format.
func ExportText(names []string) string {
	return strings.Join(names, "\n")
}
