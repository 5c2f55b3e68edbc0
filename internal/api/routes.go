package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API under /api.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", s.health)

		api.GET("/cards", s.listCards)
		api.POST("/cards/filter", s.filterCards)

		api.GET("/deck", s.getDeck)
		api.POST("/deck/cards", s.addCard)
		api.DELETE("/deck/cards/:id", s.removeCard)
		api.DELETE("/deck", s.clearDeck)
		api.GET("/deck/export", s.exportDeck)
		api.GET("/deck/export/qr", s.exportQR)
		api.POST("/deck/image", s.deckImage)

		api.GET("/decks", s.listDecks)
		api.POST("/decks", s.publishDeck)
		api.POST("/decks/:id/like", s.likeDeck)
		api.POST("/decks/:id/comments", s.commentDeck)
		api.POST("/decks/:id/load", s.loadDeck)
	}
}
