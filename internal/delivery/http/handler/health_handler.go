package handler

import (
	"upfreelance/internal/infrastructure/cache"
	"upfreelance/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	cache *cache.Redis
}

func NewHealthHandler(c *cache.Redis) *HealthHandler {
	return &HealthHandler{cache: c}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	cacheStatus := "ok"
	if err := h.cache.Ping(c.Context()); err != nil {
		cacheStatus = "unavailable"
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"status": "ok",
		"cache":  cacheStatus,
	})
}
