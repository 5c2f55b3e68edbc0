package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/cardboshi/internal/api"
	"github.com/youruser/cardboshi/internal/cards"
	"github.com/youruser/cardboshi/internal/community"
	"github.com/youruser/cardboshi/internal/config"
	"github.com/youruser/cardboshi/internal/deck"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// The catalog is generated once and read-only from here on.
	catalog := cards.GeneratePool()
	custom, err := cards.LoadCustomCards(cfg.DataDir)
	if err != nil {
		logger.Warn("loading custom traits", zap.Error(err))
	}
	catalog = cards.Merge(catalog, custom)

	store := community.Open(cfg.DataDir, logger)
	mgr := deck.NewManager(catalog)
	srv := api.NewServer(catalog, mgr, store, logger.Sugar())

	r := gin.Default()
	srv.RegisterRoutes(r)

	logger.Info("starting server",
		zap.String("addr", "http://localhost:"+cfg.Port),
		zap.Int("catalog_size", len(catalog)),
		zap.Int("saved_decks", store.Len()),
	)
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server exited", zap.Error(err))
	}
}
