package app

import (
	"context"
	"log"
	"time"

	"upfreelance/internal/config"
	"upfreelance/internal/database"
	dbpostgres "upfreelance/internal/database/postgres"
	"upfreelance/internal/infrastructure/assist"
	"upfreelance/internal/infrastructure/cache"
	"upfreelance/internal/pkg/jwt"
	"upfreelance/internal/storage"
	"upfreelance/internal/storage/memory"
	"upfreelance/internal/storage/postgres"
	"upfreelance/internal/validation"
)

// Container holds everything the HTTP layer depends on. Store is the
// in-memory implementation unless DB_HOST selects Postgres.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB     database.DB
	Store  storage.Store
	Cache  *cache.Redis
	JWT    jwt.Service
	Assist assist.Client
	Schema *validation.Registry
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	if cfg.UsePostgres() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		c.DB = db
		c.Store = postgres.NewStore(db)
	} else {
		c.Store = memory.New()
	}

	schema, err := validation.NewRegistry()
	if err != nil {
		if c.DB != nil {
			_ = c.DB.Close()
		}
		return nil, err
	}
	c.Schema = schema

	c.Cache = cache.NewRedis(logger)
	c.JWT = jwt.NewHMACService(
		cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn,
	)
	c.Assist = assist.NewClient(cfg.Assist.BaseURL, logger)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
