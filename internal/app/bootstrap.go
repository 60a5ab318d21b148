package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"placement-match/internal/config"
	"placement-match/internal/delivery/http/middleware"
	"placement-match/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, logger *zap.Logger, h routes.Handlers) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)
	routes.NewRegistry(h).Register(f)

	return &App{Fiber: f}
}

// Bootstrap connects the backing stores and assembles the HTTP app. The
// returned cleanup releases every connection the container opened.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(cfg, logger, c.Handlers())
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
