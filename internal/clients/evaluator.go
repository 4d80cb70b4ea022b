// Package clients holds the outbound HTTP integrations: the n8n analysis
// webhook, the direct scoring API and Supabase storage. Every call is
// bounded by the same 30 second timeout.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/magnolias-hr/magnolias-api/internal/apperrors"
	"gorm.io/datatypes"
)

const requestTimeout = 30 * time.Second

// Neutral result written when the scoring API is unreachable or errors.
// This is the recovery policy, not an error: the application still moves to
// evaluated and waits for a human.
const (
	DefaultScore    = 50
	DefaultFeedback = "Automatic evaluation unavailable. Pending manual review."
)

// EvaluationRequest carries the wire contract of the scoring API. The field
// names are fixed by the external service and must not be renamed.
type EvaluationRequest struct {
	CVURL        string         `json:"cv_url"`
	Answers      datatypes.JSON `json:"respuestas_json"`
	PostingID    uint           `json:"vacante_id"`
	Requirements string         `json:"requisitos"`
	Skills       datatypes.JSON `json:"skills"`
}

type EvaluationResult struct {
	Score    float64 `json:"puntaje_ia"`
	Feedback string  `json:"feedback"`
}

type EvaluatorClient struct {
	baseURL string
	http    *http.Client
}

func NewEvaluatorClient(baseURL string) *EvaluatorClient {
	return &EvaluatorClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Evaluate calls the scoring endpoint. It never returns an error: any
// failure yields the neutral default result.
func (c *EvaluatorClient) Evaluate(ctx context.Context, req EvaluationRequest) EvaluationResult {
	log.Printf("Evaluating application for posting %d", req.PostingID)

	var result EvaluationResult
	if err := c.post(ctx, "/api/evaluar", req, &result); err != nil {
		log.Printf("Evaluation call failed: %v", err)
		return EvaluationResult{Score: DefaultScore, Feedback: DefaultFeedback}
	}
	return result
}

// AnalyzeCV asks the scoring service for a standalone CV analysis. Unlike
// Evaluate there is no fallback result, so errors propagate.
func (c *EvaluatorClient) AnalyzeCV(ctx context.Context, cvURL string) (map[string]any, error) {
	var result map[string]any
	if err := c.post(ctx, "/api/analizar-cv", map[string]string{"cv_url": cvURL}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *EvaluatorClient) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode request: %v", apperrors.ErrExternal, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", apperrors.ErrExternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrExternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: evaluator returned %d", apperrors.ErrExternal, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", apperrors.ErrExternal, err)
	}
	return nil
}
