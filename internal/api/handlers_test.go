package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/youruser/cardboshi/internal/cards"
	"github.com/youruser/cardboshi/internal/community"
	"github.com/youruser/cardboshi/internal/deck"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := cards.GeneratePool()
	store := community.Open(t.TempDir(), zaptest.NewLogger(t))
	mgr := deck.NewManager(catalog)
	srv := NewServer(catalog, mgr, store, zaptest.NewLogger(t).Sugar())

	r := gin.New()
	srv.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCards(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/cards", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(len(cards.GeneratePool())), body["count"])
}

func TestFilterCards(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/cards/filter", map[string]string{"head": "halo"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	require.Equal(t, float64(1), body["count"])
	got := body["cards"].([]any)[0].(map[string]any)
	assert.Equal(t, "Halo", got["name"])
}

func TestAddCardCopyLimit(t *testing.T) {
	r := newTestRouter(t)

	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/deck/cards", map[string]string{"card_id": "head-halo"})
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/deck/cards", map[string]string{"card_id": "head-halo"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/deck", nil)
	assert.Equal(t, float64(2), decode(t, w)["count"])
}

func TestRemoveAndClear(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/deck/cards", map[string]string{"card_id": "head-halo"})
	doJSON(t, r, http.MethodPost, "/api/deck/cards", map[string]string{"card_id": "head-mohawk"})

	w := doJSON(t, r, http.MethodDelete, "/api/deck/cards/head-halo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	w = doJSON(t, r, http.MethodDelete, "/api/deck", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["count"])
}

func TestExportDeck(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/deck/cards", map[string]string{"card_id": "head-halo"})
	doJSON(t, r, http.MethodPost, "/api/deck/cards", map[string]string{"card_id": "mouth-pipe"})

	w := doJSON(t, r, http.MethodGet, "/api/deck/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Halo\nPipe", w.Body.String())
}

func TestExportQR(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/deck/cards", map[string]string{"card_id": "head-halo"})

	w := doJSON(t, r, http.MethodGet, "/api/deck/export/qr?size=200", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestPublishBlankName(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/decks", map[string]string{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/decks", nil)
	assert.Equal(t, float64(0), decode(t, w)["count"])
}

func TestPublishAndLoadRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/deck/cards", map[string]string{"card_id": "head-halo"})
	doJSON(t, r, http.MethodPost, "/api/deck/cards", map[string]string{"card_id": "head-halo"})
	doJSON(t, r, http.MethodPost, "/api/deck/cards", map[string]string{"card_id": "mouth-pipe"})

	w := doJSON(t, r, http.MethodPost, "/api/decks", map[string]string{
		"name":        "Halo Rush",
		"author":      "shibe",
		"description": "turn two pipe",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	published := decode(t, w)
	deckID := published["id"].(string)
	assert.Equal(t, []any{"Halo", "Halo", "Pipe"}, published["cards"])

	// publishing leaves the working deck alone
	w = doJSON(t, r, http.MethodGet, "/api/deck", nil)
	assert.Equal(t, float64(3), decode(t, w)["count"])

	doJSON(t, r, http.MethodDelete, "/api/deck", nil)

	w = doJSON(t, r, http.MethodPost, "/api/decks/"+deckID+"/load", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), decode(t, w)["count"])

	w = doJSON(t, r, http.MethodGet, "/api/deck/export", nil)
	assert.Equal(t, "Halo\nHalo\nPipe", w.Body.String())
}

func TestLikeDeck(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/decks", map[string]string{"name": "Deck"})
	deckID := decode(t, w)["id"].(string)

	for i := 1; i <= 2; i++ {
		w = doJSON(t, r, http.MethodPost, "/api/decks/"+deckID+"/like", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(i), decode(t, w)["likes"])
	}

	w = doJSON(t, r, http.MethodPost, "/api/decks/bogus/like", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentDeck(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/decks", map[string]string{"name": "Deck"})
	deckID := decode(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/decks/"+deckID+"/comments", map[string]string{"text": "nice"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, community.AnonymousAuthor, decode(t, w)["author"])

	w = doJSON(t, r, http.MethodPost, "/api/decks/"+deckID+"/comments", map[string]string{"text": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/decks/bogus/comments", map[string]string{"text": "hi"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the failed posts changed nothing
	w = doJSON(t, r, http.MethodGet, "/api/decks", nil)
	body := decode(t, w)
	require.Equal(t, float64(1), body["count"])
	comments := body["decks"].([]any)[0].(map[string]any)["comments"].([]any)
	assert.Len(t, comments, 1)
}

func TestLoadUnknownDeck(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/decks/bogus/load", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
