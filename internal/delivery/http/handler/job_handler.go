package handler

import (
	"errors"

	"upfreelance/internal/delivery/http/middleware"
	"upfreelance/internal/domain/job"
	"upfreelance/internal/pkg/response"
	"upfreelance/internal/usecase"
	"upfreelance/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc     usecase.JobUsecase
	schema *validation.Registry
}

func NewJobHandler(uc usecase.JobUsecase, schema *validation.Registry) *JobHandler {
	return &JobHandler{uc: uc, schema: schema}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/jobs", h.Create)
	r.Get("/jobs", h.List)
	r.Get("/jobs/:id", h.Get)
	r.Delete("/jobs/:id", h.Delete)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	if err := h.schema.Validate(c.Context(), validation.KindJob, c.Body()); err != nil {
		return validationError(err)
	}

	var in job.Insert
	if err := c.Bind().Body(&in); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	created, err := h.uc.CreateJob(c.Context(), in)
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusCreated, fiber.Map{"job": created})
}

func (h *JobHandler) List(c fiber.Ctx) error {
	jobs, err := h.uc.ListJobs(c.Context())
	if err != nil {
		return mapJobError(err)
	}

	if jobs == nil {
		jobs = []job.Job{}
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"jobs": jobs})
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "Invalid job ID")
	if err != nil {
		return err
	}

	got, err := h.uc.GetJob(c.Context(), id)
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{"job": got})
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "Invalid job ID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteJob(c.Context(), id); err != nil {
		return mapJobError(err)
	}

	return response.Message(c, fiber.StatusOK, "Job deleted")
}

func mapJobError(err error) error {
	switch {
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Title and description are required", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", err)
	}
}
