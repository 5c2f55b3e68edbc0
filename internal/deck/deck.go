package deck

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/youruser/cardboshi/internal/cards"
)

const (
	// Capacity is the deck size ceiling.
	Capacity = 30
	// MaxCopies caps entries sharing one card name.
	MaxCopies = 2
)

var (
	ErrDeckFull  = errors.New("deck is full")
	ErrCopyLimit = errors.New("copy limit reached")
)

// Entry is a card placed in the working deck. InstanceID tells duplicate
// copies of the same card apart; it means nothing outside this deck.
type Entry struct {
	cards.Card
	InstanceID string `json:"instanceId"`
}

// Manager owns the working deck for the active editing session. Every
// operation either fully applies or leaves the deck untouched.
type Manager struct {
	mu      sync.Mutex
	catalog []cards.Card
	entries []Entry
}

// NewManager creates an empty working deck over a read-only catalog.
func NewManager(catalog []cards.Card) *Manager {
	return &Manager{catalog: catalog}
}

// Add appends one copy of the card with the given id. It rejects a full
// deck and a third copy of a name; an unknown id is a silent no-op.
func (m *Manager) Add(cardID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.entries) >= Capacity {
		return ErrDeckFull
	}
	c, ok := cards.FindByID(m.catalog, cardID)
	if !ok {
		return nil
	}
	if m.copies(c.Name) >= MaxCopies {
		return fmt.Errorf("%w: %s", ErrCopyLimit, c.Name)
	}
	m.entries = append(m.entries, Entry{Card: c, InstanceID: uuid.NewString()})
	return nil
}

// Remove drops the first entry whose card id matches; duplicates keep the
// later copies. Unknown ids are a no-op.
func (m *Manager) Remove(cardID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.entries {
		if e.ID == cardID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}

// Clear empties the deck.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}

// LoadFromNames replaces the whole deck from an ordered list of card names,
// the form published decks are stored in. Unknown names are skipped, the
// 3rd+ copy of a name is dropped, and resolution stops at capacity.
func (m *Manager) LoadFromNames(names []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]Entry, 0, Capacity)
	counts := make(map[string]int)
	for _, name := range names {
		if len(entries) >= Capacity {
			break
		}
		c, ok := cards.FindByName(m.catalog, name)
		if !ok {
			continue
		}
		counts[c.Name]++
		if counts[c.Name] > MaxCopies {
			continue
		}
		entries = append(entries, Entry{Card: c, InstanceID: uuid.NewString()})
	}
	m.entries = entries
}

// Entries returns a snapshot of the deck in order.
func (m *Manager) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Names returns the deck as an ordered list of card names, duplicates
// included. This is the published/export form of the deck.
func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Name
	}
	return out
}

// Len returns the current deck size.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// copies counts entries with the given name; callers hold the lock.
func (m *Manager) copies(name string) int {
	n := 0
	for _, e := range m.entries {
		if e.Name == name {
			n++
		}
	}
	return n
}
