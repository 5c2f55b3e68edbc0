package api

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/cardboshi/internal/cards"
	"github.com/youruser/cardboshi/internal/community"
	"github.com/youruser/cardboshi/internal/deck"
	imagepkg "github.com/youruser/cardboshi/internal/image"
)

// Server wires the catalog, working deck and community store behind the
// HTTP surface.
type Server struct {
	catalog []cards.Card
	deck    *deck.Manager
	store   *community.Store
	log     *zap.SugaredLogger
}

func NewServer(catalog []cards.Card, mgr *deck.Manager, store *community.Store, logger *zap.SugaredLogger) *Server {
	return &Server{
		catalog: catalog,
		deck:    mgr,
		store:   store,
		log:     logger,
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listCards(c *gin.Context) {
	out := cards.SortByName(s.catalog)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

// filterCards applies a drill-down selection; the result is always sorted
// by display name.
func (s *Server) filterCards(c *gin.Context) {
	var sel cards.Selection
	if err := c.BindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := cards.SortByName(cards.Filter(s.catalog, sel))
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

func (s *Server) getDeck(c *gin.Context) {
	entries := s.deck.Entries()
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "cards": entries})
}

func (s *Server) addCard(c *gin.Context) {
	var req struct {
		CardID string `json:"card_id"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.deck.Add(req.CardID); err != nil {
		if errors.Is(err, deck.ErrDeckFull) || errors.Is(err, deck.ErrCopyLimit) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.getDeck(c)
}

func (s *Server) removeCard(c *gin.Context) {
	s.deck.Remove(c.Param("id"))
	s.getDeck(c)
}

func (s *Server) clearDeck(c *gin.Context) {
	s.deck.Clear()
	s.getDeck(c)
}

func (s *Server) exportDeck(c *gin.Context) {
	c.String(http.StatusOK, deck.ExportText(s.deck.Names()))
}

// exportQR returns a QR PNG of the current deck's export text.
func (s *Server) exportQR(c *gin.Context) {
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(deck.ExportText(s.deck.Names()), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// deckImage composes a share image from card art URLs (best-effort
// downloads) plus an optional QR text.
func (s *Server) deckImage(c *gin.Context) {
	var req struct {
		CardURLs []string `json:"card_urls"`
		DeckName string   `json:"deck_name"`
		QRText   string   `json:"qr_text"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cardImgs []image.Image
	for i, u := range req.CardURLs {
		if i >= deck.Capacity {
			break
		}
		img, err := imagepkg.DownloadImage(u)
		if err != nil {
			s.log.Warnw("card art download failed", "url", u, "error", err)
			continue
		}
		cardImgs = append(cardImgs, img)
	}

	var qrImg image.Image
	if req.QRText != "" {
		if q, err := imagepkg.GenerateQRImage(req.QRText, 400); err == nil {
			qrImg = q
		}
	}

	out := imagepkg.ComposeDeckImage(cardImgs, qrImg, req.DeckName)
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, out); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// listDecks returns the community collection, newest first.
func (s *Server) listDecks(c *gin.Context) {
	decks := s.store.Decks()
	c.JSON(http.StatusOK, gin.H{"count": len(decks), "decks": decks})
}

// publishDeck snapshots the current working deck into the community
// collection. The working deck is left as-is.
func (s *Server) publishDeck(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Author      string `json:"author"`
		Description string `json:"description"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := s.store.Publish(req.Name, req.Author, req.Description, s.deck.Names())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (s *Server) likeDeck(c *gin.Context) {
	d, ok := s.store.Like(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "deck not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": d.ID, "likes": d.Likes})
}

func (s *Server) commentDeck(c *gin.Context) {
	var req struct {
		Text   string `json:"text"`
		Author string `json:"author"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cm, ok := s.store.Comment(c.Param("id"), req.Text, req.Author)
	if !ok {
		if _, exists := s.store.Get(c.Param("id")); !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "deck not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment text is required"})
		return
	}
	c.JSON(http.StatusCreated, cm)
}

// loadDeck replaces the working deck with a published deck's card list,
// reconciled by name against the catalog.
func (s *Server) loadDeck(c *gin.Context) {
	d, ok := s.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "deck not found"})
		return
	}
	s.deck.LoadFromNames(d.Cards)
	s.getDeck(c)
}
