package main

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/benbeisheim/robchess/internal/config"
	"github.com/benbeisheim/robchess/internal/controller"
	"github.com/benbeisheim/robchess/internal/middleware"
	"github.com/benbeisheim/robchess/internal/service"
	"github.com/benbeisheim/robchess/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

func main() {
	cfg, err := config.FromOS()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	log.SetHandler(text.New(os.Stderr))
	log.SetLevel(cfg.LogLevel)

	var games store.Store = store.NewMemoryStore()
	if cfg.DatabaseDSN != "" {
		db, err := store.OpenPostgres(cfg.DatabaseDSN)
		if err != nil {
			log.WithError(err).Fatal("failed to connect database")
		}
		defer db.Close()
		games = db
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestLogger(log.Log))

	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager, games, cfg.Search, log.Log)

	controller.Routes(app, gameService, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         cfg.Origins(),
	})

	log.WithFields(log.Fields{
		"addr":      cfg.Addr,
		"min_depth": cfg.Search.MinDepth,
		"max_depth": cfg.Search.MaxDepth,
		"postgres":  cfg.DatabaseDSN != "",
	}).Info("listening")
	if err := app.Listen(cfg.Addr); err != nil {
		log.WithError(err).Error("server stopped")
	}
}
