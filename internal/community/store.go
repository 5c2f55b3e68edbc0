package community

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/youruser/cardboshi/internal/util"
)

// FileName is the fixed namespaced key the deck collection is stored under.
const FileName = "cardboshi_saved_decks.json"

// AnonymousAuthor labels comments posted without an author name.
const AnonymousAuthor = "Anonymous"

var ErrBlankName = errors.New("deck name is required")

// Comment is immutable once created.
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// SavedDeck is a published snapshot of a working deck. Cards holds display
// names, not ids: published decks are name-addressed and get reconciled
// against the catalog on load.
type SavedDeck struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	Cards       []string  `json:"cards"`
	Likes       int       `json:"likes"`
	Comments    []Comment `json:"comments"`
	Timestamp   int64     `json:"timestamp"`
}

// Store holds the published deck collection. The in-memory copy is the
// source of truth; the whole collection is rewritten to disk after every
// mutation once it is non-empty.
type Store struct {
	mu    sync.Mutex
	path  string
	log   *zap.Logger
	decks []SavedDeck
}

// Open loads the collection from dataDir. A missing file means no saved
// decks; so does a corrupt one, which is logged and otherwise ignored.
func Open(dataDir string, logger *zap.Logger) *Store {
	s := &Store{
		path: filepath.Join(dataDir, FileName),
		log:  logger,
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("read saved decks", zap.String("path", s.path), zap.Error(err))
		}
		return s
	}
	if err := json.Unmarshal(data, &s.decks); err != nil {
		s.log.Warn("parse saved decks, starting empty", zap.String("path", s.path), zap.Error(err))
		s.decks = nil
	}
	return s
}

// Publish appends a new deck snapshot built from an ordered list of card
// names (duplicates preserved). A blank name is rejected with no state
// change.
func (s *Store) Publish(name, author, description string, cardNames []string) (SavedDeck, error) {
	if strings.TrimSpace(name) == "" {
		return SavedDeck{}, ErrBlankName
	}

	names := make([]string, len(cardNames))
	copy(names, cardNames)

	d := SavedDeck{
		ID:          uuid.NewString(),
		Name:        name,
		Author:      author,
		Description: description,
		Cards:       names,
		Likes:       0,
		Comments:    []Comment{},
		Timestamp:   time.Now().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.decks = append(s.decks, d)
	s.persist()
	return d, nil
}

// Like bumps a deck's like counter by one. Repeated calls accumulate; this
// is a reaction counter, not a toggle. Unknown ids are a no-op.
func (s *Store) Like(deckID string) (SavedDeck, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.decks {
		if s.decks[i].ID == deckID {
			s.decks[i].Likes++
			s.persist()
			return snapshotDeck(s.decks[i]), true
		}
	}
	return SavedDeck{}, false
}

// Comment appends a comment to a deck. Blank text or an unknown deck id is
// a no-op; a blank author becomes the Anonymous label.
func (s *Store) Comment(deckID, text, author string) (Comment, bool) {
	if strings.TrimSpace(text) == "" {
		return Comment{}, false
	}
	if strings.TrimSpace(author) == "" {
		author = AnonymousAuthor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.decks {
		if s.decks[i].ID == deckID {
			c := Comment{
				ID:        uuid.NewString(),
				Author:    author,
				Text:      text,
				Timestamp: time.Now().UnixMilli(),
			}
			s.decks[i].Comments = append(s.decks[i].Comments, c)
			s.persist()
			return c, true
		}
	}
	return Comment{}, false
}

// Get returns one deck by id.
func (s *Store) Get(deckID string) (SavedDeck, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.decks {
		if s.decks[i].ID == deckID {
			return snapshotDeck(s.decks[i]), true
		}
	}
	return SavedDeck{}, false
}

// Decks returns a snapshot of the collection, newest first.
func (s *Store) Decks() []SavedDeck {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SavedDeck, len(s.decks))
	for i, d := range s.decks {
		out[i] = snapshotDeck(d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

// Len returns the number of published decks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.decks)
}

// persist rewrites the whole collection; callers hold the lock. Write
// failures are diagnostic only, the in-memory copy stays authoritative.
func (s *Store) persist() {
	if len(s.decks) == 0 {
		return
	}
	data, err := json.Marshal(s.decks)
	if err != nil {
		s.log.Warn("marshal saved decks", zap.Error(err))
		return
	}
	if err := util.EnsureDir(filepath.Dir(s.path)); err != nil {
		s.log.Warn("create data dir", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Warn("write saved decks", zap.String("path", s.path), zap.Error(err))
	}
}

func snapshotDeck(d SavedDeck) SavedDeck {
	out := d
	out.Cards = append([]string(nil), d.Cards...)
	out.Comments = append([]Comment(nil), d.Comments...)
	return out
}
