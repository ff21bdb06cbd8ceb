// Package server exposes the rules engine over HTTP and websockets.
// Games live in memory and are addressed by a generated id.
package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/fallback"
)

// Server wires the game manager to a fiber app.
type Server struct {
	cfg   *config.Config
	app   *fiber.App
	games *GameManager
}

// New builds a server and registers its routes.
func New(cfg *config.Config) *Server {
	selector := fallback.NewSelector(cfg.Engine.Tier, cfg.Engine.Seed)
	s := &Server{
		cfg:   cfg,
		games: NewGameManager(selector, cfg.Server.MaxGames, cfg.Engine.Workers),
	}

	s.app = fiber.New(fiber.Config{
		ReadTimeout:           cfg.Server.ReadTimeout,
		ErrorHandler:          s.errorHandler,
		DisableStartupMessage: cfg.Verbosity < 2,
	})

	s.app.Use(recover.New())
	if cfg.Verbosity > 0 {
		s.app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/", s.createGame)
	gameRoutes.Get("/:id", s.getGame)
	gameRoutes.Delete("/:id", s.deleteGame)
	gameRoutes.Post("/:id/move", s.makeMove)
	gameRoutes.Post("/:id/suggest", s.suggest)
	gameRoutes.Post("/:id/undo", s.undo)

	s.app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	s.app.Get("/ws/game/:id", websocket.New(s.handleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Games returns the session manager.
func (s *Server) Games() *GameManager {
	return s.games
}

// Listen serves on the configured address until Shutdown.
func (s *Server) Listen() error {
	s.logf(1, "listening on %s\n", s.cfg.Server.ListenAddr)
	return s.app.Listen(s.cfg.Server.ListenAddr)
}

// Shutdown stops the listener and waits for open requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// logf writes a diagnostic when the verbosity is at least level.
func (s *Server) logf(level int, format string, args ...interface{}) {
	if s.cfg.Verbosity >= level {
		fmt.Fprintf(s.cfg.LogFile, format, args...)
	}
}
