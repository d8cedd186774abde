package server

import (
	_ "embed"
	"time"

	"github.com/ekaya/pdfasistan/internal/config"
	"github.com/ekaya/pdfasistan/internal/controller"
	"github.com/ekaya/pdfasistan/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

//go:embed web/index.html
var indexHTML []byte

type Server struct {
	app *fiber.App
	cfg *config.Config
}

func New(cfg *config.Config, ragController controller.IRagController) *Server {
	app := fiber.New(fiber.Config{
		AppName:   "pdfasistan",
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(serverutils.RequestIDMiddleware())
	app.Use(serverutils.ErrorHandlerMiddleware())

	// The whole UI is one embedded page; the transcript lives in the browser.
	app.Get("/", func(ctx *fiber.Ctx) error {
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return ctx.Send(indexHTML)
	})

	api := app.Group("/api")
	ragController.RegisterRoutes(api)

	return &Server{app: app, cfg: cfg}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(5 * time.Second)
}
