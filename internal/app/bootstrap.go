package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"upfreelance/internal/config"
	"upfreelance/internal/delivery/http/handler"
	"upfreelance/internal/delivery/http/middleware"
	"upfreelance/internal/delivery/http/routes"
	"upfreelance/internal/seeder"
	"upfreelance/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	errMW := middleware.NewErrorMiddleware(c.Logger)
	accessMW := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMW.Middleware())
	f.Use(accessMW.Middleware())

	authUC := usecase.NewAuthUsecase(c.Store, c.JWT)
	userUC := usecase.NewUserUsecase(c.Store)
	skillUC := usecase.NewSkillUsecase(c.Store)
	profileUC := usecase.NewProfileUsecase(c.Store)
	jobUC := usecase.NewJobUsecase(c.Store, c.Cache)
	proposalUC := usecase.NewProposalUsecase(c.Store, c.Store, c.Assist)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.Cache),
		handler.NewAuthHandler(authUC, c.Schema),
		handler.NewUserHandler(userUC),
		handler.NewSkillHandler(skillUC, c.Schema),
		handler.NewProfileHandler(profileUC, userUC, c.Schema),
		handler.NewJobHandler(jobUC, c.Schema),
		handler.NewProposalHandler(proposalUC, c.Schema),
		handler.NewOCRHandler(c.Assist),
		middleware.NewAuthMiddleware(c.JWT),
	)
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container, mounts the routes and seeds development
// fixtures. The returned cleanup closes the database pool.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)

	if cfg.IsDevelopment() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := seeder.Run(ctx, c.Store, c.Logger); err != nil {
			c.Logger.Printf("seeding failed: %v", err)
		}
	}

	return app, c.Close, nil
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
