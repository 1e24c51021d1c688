// Package assist talks to the external OCR / proposal-generation sidecar.
// The sidecar is a black box: only the request/response contracts are known
// here, and failures are surfaced to the caller unwrapped in retries.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

type GenerateRequest struct {
	JobTitle         string `json:"jobTitle"`
	JobDescription   string `json:"jobDescription"`
	IncludePortfolio bool   `json:"includePortfolio"`
}

type generateResponse struct {
	Success  bool   `json:"success"`
	Proposal string `json:"proposal"`
	Error    string `json:"error"`
}

// OCRResult mirrors the sidecar's extraction payload, including the per-run
// confidence and the words it was unsure about.
type OCRResult struct {
	Success            bool     `json:"success"`
	Text               *string  `json:"text"`
	Confidence         *float64 `json:"confidence"`
	LowConfidenceWords []string `json:"lowConfidenceWords"`
	Error              *string  `json:"error"`
}

type Client interface {
	GenerateProposal(ctx context.Context, in GenerateRequest) (string, error)
	ExtractText(ctx context.Context, filename string, file []byte) (OCRResult, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

// NewClient returns nil when no base URL is configured; callers treat a nil
// client as "sidecar absent".
func NewClient(baseURL string, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func (c *httpClient) GenerateProposal(ctx context.Context, in GenerateRequest) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("nil assist client")
	}
	endpoint := c.baseURL + "/api/proposal/generate"

	b, err := json.Marshal(in)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.statusError("GenerateProposal", endpoint, resp)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if !out.Success {
		if out.Error != "" {
			return "", fmt.Errorf("proposal generation failed: %s", out.Error)
		}
		return "", errors.New("proposal generation failed")
	}
	return out.Proposal, nil
}

func (c *httpClient) ExtractText(ctx context.Context, filename string, file []byte) (OCRResult, error) {
	if c == nil || c.client == nil {
		return OCRResult{}, errors.New("nil assist client")
	}
	endpoint := c.baseURL + "/api/ocr/extract"

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return OCRResult{}, err
	}
	if _, err := part.Write(file); err != nil {
		return OCRResult{}, err
	}
	if err := mw.Close(); err != nil {
		return OCRResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return OCRResult{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return OCRResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return OCRResult{}, c.statusError("ExtractText", endpoint, resp)
	}

	var out OCRResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return OCRResult{}, err
	}
	return out, nil
}

func (c *httpClient) statusError(op, endpoint string, resp *http.Response) error {
	rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	bodyStr := strings.TrimSpace(string(rb))
	if c.logger != nil {
		c.logger.Printf("[Assist] %s error endpoint=%s status=%d body=%q", op, endpoint, resp.StatusCode, bodyStr)
	}
	return fmt.Errorf("assist %s failed: status=%d", op, resp.StatusCode)
}
