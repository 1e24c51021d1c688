package handler

import (
	"io"

	"upfreelance/internal/delivery/http/middleware"
	"upfreelance/internal/infrastructure/assist"
	"upfreelance/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// maxOCRUploadBytes caps the document size forwarded to the sidecar.
const maxOCRUploadBytes = 10 << 20

// OCRHandler proxies document uploads to the extraction sidecar. With no
// sidecar configured the route answers 503.
type OCRHandler struct {
	assist assist.Client
}

func NewOCRHandler(assistClient assist.Client) *OCRHandler {
	return &OCRHandler{assist: assistClient}
}

func (h *OCRHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/ocr/extract", h.Extract)
}

func (h *OCRHandler) Extract(c fiber.Ctx) error {
	if h.assist == nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "OCR service is not configured", nil)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "File is required", err)
	}
	if fh.Size > maxOCRUploadBytes {
		return middleware.NewAppError(fiber.StatusBadRequest, "File too large", nil)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "File is required", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxOCRUploadBytes))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", err)
	}

	result, err := h.assist.ExtractText(c.Context(), fh.Filename, data)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadGateway, "OCR service failed", err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"success":            result.Success,
		"text":               result.Text,
		"confidence":         result.Confidence,
		"lowConfidenceWords": result.LowConfidenceWords,
		"error":              result.Error,
	})
}
