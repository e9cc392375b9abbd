// Package classifier talks to the external image-classification service
// over HTTP. The model itself is an opaque dependency.
package classifier

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
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"civic_pulse/internal/domain/entities"
	"civic_pulse/internal/usecase/interfaces"
)

var ErrMissingClassifierURL = errors.New("missing CLASSIFIER_URL")

const defaultTimeout = 20 * time.Second

// predictionResponse mirrors the /predict JSON body of the classifier.
type predictionResponse struct {
	PredictedClass string             `json:"predicted_class"`
	Confidence     float64            `json:"confidence"`
	Probabilities  map[string]float64 `json:"probabilities"`
	RiskScore      int                `json:"risk_score"`
}

// HTTPClassifierGateway sends a stored photo to {baseURL}/predict as
// multipart form data and maps the response to a Classification.
//
// Every failure mode (transport, timeout, non-2xx, malformed body, blank
// class) collapses into interfaces.ErrClassifierUnavailable so the caller's
// risk fallback applies. One attempt per submission, no retries.

type HTTPClassifierGateway struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IClassifierGateway = (*HTTPClassifierGateway)(nil)

func NewHTTPClassifierGateway(baseURL string) (*HTTPClassifierGateway, error) {
	if isClassifierMockEnabled() {
		log.Printf("[classifier][gateway] mock mode enabled")
		return &HTTPClassifierGateway{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[classifier][gateway] missing CLASSIFIER_URL")
		return nil, ErrMissingClassifierURL
	}

	log.Printf("[classifier][gateway] classifier client initialized url=%s", baseURL)
	return &HTTPClassifierGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeoutFromEnv()},
	}, nil
}

func (g *HTTPClassifierGateway) Classify(ctx context.Context, photoPath string) (entities.Classification, error) {
	if g != nil && g.mockMode {
		log.Printf("[classifier][gateway] mock classify photo=%s", filepath.Base(photoPath))
		return entities.Classification{
			PredictedClass: "Low",
			Confidence:     1,
			Probabilities:  map[string]float64{"Low": 1},
			RiskScore:      1,
		}, nil
	}
	if g == nil || g.client == nil {
		return entities.Classification{}, interfaces.ErrClassifierUnavailable
	}

	body, contentType, err := buildPhotoForm(photoPath)
	if err != nil {
		log.Printf("[classifier][gateway] cannot read photo %q err=%v", photoPath, err)
		return entities.Classification{}, fmt.Errorf("%w: %v", interfaces.ErrClassifierUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/predict", body)
	if err != nil {
		return entities.Classification{}, fmt.Errorf("%w: %v", interfaces.ErrClassifierUnavailable, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[classifier][gateway] request failed err=%v", err)
		return entities.Classification{}, fmt.Errorf("%w: %v", interfaces.ErrClassifierUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[classifier][gateway] unexpected status=%d", resp.StatusCode)
		return entities.Classification{}, fmt.Errorf("%w: status %d", interfaces.ErrClassifierUnavailable, resp.StatusCode)
	}

	var pr predictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		log.Printf("[classifier][gateway] malformed response err=%v", err)
		return entities.Classification{}, fmt.Errorf("%w: %v", interfaces.ErrClassifierUnavailable, err)
	}
	if strings.TrimSpace(pr.PredictedClass) == "" {
		log.Printf("[classifier][gateway] response missing predicted_class")
		return entities.Classification{}, fmt.Errorf("%w: missing predicted_class", interfaces.ErrClassifierUnavailable)
	}

	log.Printf("[classifier][gateway] classify success class=%s risk=%d confidence=%.3f", pr.PredictedClass, pr.RiskScore, pr.Confidence)
	return entities.Classification{
		PredictedClass: pr.PredictedClass,
		Confidence:     pr.Confidence,
		Probabilities:  pr.Probabilities,
		RiskScore:      pr.RiskScore,
	}, nil
}

// buildPhotoForm reads the stored photo into a multipart body with a single
// "photo" file field, matching what the classifier expects.
func buildPhotoForm(photoPath string) (io.Reader, string, error) {
	f, err := os.Open(photoPath)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("photo", filepath.Base(photoPath))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func timeoutFromEnv() time.Duration {
	if v := strings.TrimSpace(os.Getenv("CLASSIFIER_TIMEOUT")); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
		log.Printf("[classifier][gateway] ignoring invalid CLASSIFIER_TIMEOUT=%q", v)
	}
	return defaultTimeout
}

func isClassifierMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CLASSIFIER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
