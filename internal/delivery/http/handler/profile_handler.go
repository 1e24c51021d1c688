package handler

import (
	"errors"

	"upfreelance/internal/delivery/http/middleware"
	"upfreelance/internal/domain/profile"
	"upfreelance/internal/domain/user"
	"upfreelance/internal/pkg/response"
	"upfreelance/internal/usecase"
	"upfreelance/internal/validation"

	"github.com/gofiber/fiber/v3"
)

// ProfileHandler serves the four user-owned collections: experiences,
// education, portfolio and services. The envelopes differ per collection
// ({"experience": ...} vs {"portfolio": [...]}) so the routes stay explicit.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	users  usecase.UserUsecase
	schema *validation.Registry
}

func NewProfileHandler(uc usecase.ProfileUsecase, users usecase.UserUsecase, schema *validation.Registry) *ProfileHandler {
	return &ProfileHandler{uc: uc, users: users, schema: schema}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/users/:id/experiences", h.CreateExperience)
	r.Get("/users/:id/experiences", h.ListExperiences)
	r.Put("/users/:id/experiences/:experienceId", h.UpdateExperience)
	r.Delete("/users/:id/experiences/:experienceId", h.DeleteExperience)

	r.Post("/users/:id/education", h.CreateEducation)
	r.Get("/users/:id/education", h.ListEducation)
	r.Put("/users/:id/education/:educationId", h.UpdateEducation)
	r.Delete("/users/:id/education/:educationId", h.DeleteEducation)

	r.Post("/users/:id/portfolio", h.CreatePortfolioItem)
	r.Get("/users/:id/portfolio", h.ListPortfolio)
	r.Put("/users/:id/portfolio/:portfolioItemId", h.UpdatePortfolioItem)
	r.Delete("/users/:id/portfolio/:portfolioItemId", h.DeletePortfolioItem)

	r.Post("/users/:id/services", h.CreateService)
	r.Get("/users/:id/services", h.ListServices)
	r.Put("/users/:id/services/:serviceId", h.UpdateService)
	r.Delete("/users/:id/services/:serviceId", h.DeleteService)
}

// ownerID resolves the :id param and confirms the user exists. Creation and
// the list routes both require a live owner.
func (h *ProfileHandler) ownerID(c fiber.Ctx) (int, error) {
	id, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return 0, err
	}
	if _, err := h.users.GetUser(c.Context(), id); err != nil {
		return 0, mapUserError(err)
	}
	return id, nil
}

func (h *ProfileHandler) CreateExperience(c fiber.Ctx) error {
	userID, err := h.ownerID(c)
	if err != nil {
		return err
	}
	if err := h.schema.Validate(c.Context(), validation.KindExperience, c.Body()); err != nil {
		return validationError(err)
	}

	var in profile.ExperienceInsert
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	created, err := h.uc.AddExperience(c.Context(), userID, in)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusCreated, fiber.Map{"experience": created})
}

func (h *ProfileHandler) ListExperiences(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}

	items, err := h.uc.ListExperiences(c.Context(), userID)
	if err != nil {
		return mapProfileError(err)
	}
	if items == nil {
		items = []profile.Experience{}
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"experiences": items})
}

func (h *ProfileHandler) UpdateExperience(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "experienceId", "Invalid experience ID")
	if err != nil {
		return err
	}

	var p profile.ExperiencePatch
	if err := c.Bind().Body(&p); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	updated, err := h.uc.UpdateExperience(c.Context(), userID, id, p)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"experience": updated})
}

func (h *ProfileHandler) DeleteExperience(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "experienceId", "Invalid experience ID")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveExperience(c.Context(), userID, id); err != nil {
		return mapProfileError(err)
	}
	return response.Message(c, fiber.StatusOK, "Experience deleted")
}

func (h *ProfileHandler) CreateEducation(c fiber.Ctx) error {
	userID, err := h.ownerID(c)
	if err != nil {
		return err
	}
	if err := h.schema.Validate(c.Context(), validation.KindEducation, c.Body()); err != nil {
		return validationError(err)
	}

	var in profile.EducationInsert
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	created, err := h.uc.AddEducation(c.Context(), userID, in)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusCreated, fiber.Map{"education": created})
}

func (h *ProfileHandler) ListEducation(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}

	items, err := h.uc.ListEducation(c.Context(), userID)
	if err != nil {
		return mapProfileError(err)
	}
	if items == nil {
		items = []profile.Education{}
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"education": items})
}

func (h *ProfileHandler) UpdateEducation(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "educationId", "Invalid education ID")
	if err != nil {
		return err
	}

	var p profile.EducationPatch
	if err := c.Bind().Body(&p); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	updated, err := h.uc.UpdateEducation(c.Context(), userID, id, p)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"education": updated})
}

func (h *ProfileHandler) DeleteEducation(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "educationId", "Invalid education ID")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveEducation(c.Context(), userID, id); err != nil {
		return mapProfileError(err)
	}
	return response.Message(c, fiber.StatusOK, "Education deleted")
}

func (h *ProfileHandler) CreatePortfolioItem(c fiber.Ctx) error {
	userID, err := h.ownerID(c)
	if err != nil {
		return err
	}
	if err := h.schema.Validate(c.Context(), validation.KindPortfolioItem, c.Body()); err != nil {
		return validationError(err)
	}

	var in profile.PortfolioItemInsert
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	created, err := h.uc.AddPortfolioItem(c.Context(), userID, in)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusCreated, fiber.Map{"portfolioItem": created})
}

func (h *ProfileHandler) ListPortfolio(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}

	items, err := h.uc.ListPortfolio(c.Context(), userID)
	if err != nil {
		return mapProfileError(err)
	}
	if items == nil {
		items = []profile.PortfolioItem{}
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"portfolio": items})
}

func (h *ProfileHandler) UpdatePortfolioItem(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "portfolioItemId", "Invalid portfolio item ID")
	if err != nil {
		return err
	}

	var p profile.PortfolioItemPatch
	if err := c.Bind().Body(&p); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	updated, err := h.uc.UpdatePortfolioItem(c.Context(), userID, id, p)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"portfolioItem": updated})
}

func (h *ProfileHandler) DeletePortfolioItem(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "portfolioItemId", "Invalid portfolio item ID")
	if err != nil {
		return err
	}

	if err := h.uc.RemovePortfolioItem(c.Context(), userID, id); err != nil {
		return mapProfileError(err)
	}
	return response.Message(c, fiber.StatusOK, "Portfolio item deleted")
}

func (h *ProfileHandler) CreateService(c fiber.Ctx) error {
	userID, err := h.ownerID(c)
	if err != nil {
		return err
	}
	if err := h.schema.Validate(c.Context(), validation.KindService, c.Body()); err != nil {
		return validationError(err)
	}

	var in profile.ServiceInsert
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	created, err := h.uc.AddService(c.Context(), userID, in)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusCreated, fiber.Map{"service": created})
}

func (h *ProfileHandler) ListServices(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}

	items, err := h.uc.ListServices(c.Context(), userID)
	if err != nil {
		return mapProfileError(err)
	}
	if items == nil {
		items = []profile.Service{}
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"services": items})
}

func (h *ProfileHandler) UpdateService(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "serviceId", "Invalid service ID")
	if err != nil {
		return err
	}

	var p profile.ServicePatch
	if err := c.Bind().Body(&p); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	updated, err := h.uc.UpdateService(c.Context(), userID, id, p)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"service": updated})
}

func (h *ProfileHandler) DeleteService(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "serviceId", "Invalid service ID")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveService(c.Context(), userID, id); err != nil {
		return mapProfileError(err)
	}
	return response.Message(c, fiber.StatusOK, "Service deleted")
}

func mapProfileError(err error) error {
	switch {
	case errors.Is(err, profile.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", err)
	}
}
