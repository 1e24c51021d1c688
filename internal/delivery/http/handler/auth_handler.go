package handler

import (
	"errors"

	"upfreelance/internal/delivery/http/dto"
	"upfreelance/internal/delivery/http/middleware"
	"upfreelance/internal/domain/user"
	"upfreelance/internal/pkg/response"
	"upfreelance/internal/usecase"
	"upfreelance/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc     usecase.AuthUsecase
	schema *validation.Registry
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func NewAuthHandler(uc usecase.AuthUsecase, schema *validation.Registry) *AuthHandler {
	return &AuthHandler{uc: uc, schema: schema}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	body := c.Body()
	if err := h.schema.Validate(c.Context(), validation.KindUser, body); err != nil {
		return validationError(err)
	}

	var in user.Insert
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	usr, pair, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return mapAuthError(err)
	}

	return response.Success(c, fiber.StatusCreated, fiber.Map{
		"user":         dto.NewUserResponse(usr),
		"accessToken":  pair.Access,
		"refreshToken": pair.Refresh,
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	if req.Username == "" || req.Password == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Username and password are required", nil)
	}

	usr, pair, err := h.uc.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return mapAuthError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"user":         dto.NewUserResponse(usr),
		"accessToken":  pair.Access,
		"refreshToken": pair.Refresh,
	})
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var req refreshRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	if req.RefreshToken == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Refresh token is required", nil)
	}

	pair, err := h.uc.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return mapAuthError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"accessToken":  pair.Access,
		"refreshToken": pair.Refresh,
	})
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, user.ErrUsernameTaken):
		return middleware.NewAppError(fiber.StatusBadRequest, "Username already exists", err)
	case errors.Is(err, user.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email already exists", err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Username and password are required", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", err)
	}
}
