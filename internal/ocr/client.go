package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
	"github.com/sablemoor/RitualBot_Go/internal/metrics"
)

// BBox is a word bounding box in screenshot pixel coordinates.
type BBox struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// Word is one recognized token with its position.
type Word struct {
	Text string `json:"text"`
	BBox BBox   `json:"bbox"`
}

// Transcript is the OCR backend's output for one screenshot.
type Transcript struct {
	Text  string `json:"text"`
	Words []Word `json:"words"`
}

// HealthStatus mirrors the backend's health payload.
type HealthStatus struct {
	Status         string `json:"status"`
	OCRInitialized bool   `json:"ocrInitialized"`
}

// Client talks to the companion EasyOCR HTTP service.
type Client interface {
	ProcessImage(ctx context.Context, imageBase64 string) (*Transcript, error)
	Health(ctx context.Context) error
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// DefaultTimeout bounds a single OCR round trip; recognition on large
// screenshots takes several seconds on CPU-only backends.
const DefaultTimeout = 30 * time.Second

// NewClient creates a client for the OCR service at baseURL.
func NewClient(baseURL string) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// ProcessImage submits a base64-encoded screenshot and returns the
// transcript. A bare base64 payload is wrapped into the data URL form the
// backend expects.
func (c *httpClient) ProcessImage(ctx context.Context, imageBase64 string) (*Transcript, error) {
	if !strings.Contains(imageBase64, ",") {
		imageBase64 = "data:image/png;base64," + imageBase64
	}

	form := url.Values{}
	form.Set("image", imageBase64)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ocr", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build ocr request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.OCRRequests.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrOCRUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.OCRRequests.WithLabelValues(metrics.OutcomeError).Inc()
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, fmt.Errorf("ocr request failed with status %d: %s", resp.StatusCode, apiErr.Error)
	}
	metrics.OCRRequests.WithLabelValues(metrics.OutcomeOK).Inc()

	var transcript Transcript
	if err := json.NewDecoder(resp.Body).Decode(&transcript); err != nil {
		return nil, fmt.Errorf("failed to decode ocr response: %w", err)
	}
	return &transcript, nil
}

// Health checks the backend is up and its reader is initialized.
func (c *httpClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrOCRUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", domain.ErrOCRUnavailable, resp.StatusCode)
	}

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return fmt.Errorf("failed to decode health response: %w", err)
	}
	if !status.OCRInitialized {
		return fmt.Errorf("%w: reader not initialized", domain.ErrOCRUnavailable)
	}
	return nil
}
