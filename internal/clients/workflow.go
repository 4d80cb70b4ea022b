package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/magnolias-hr/magnolias-api/internal/apperrors"
)

// WorkflowClient triggers the n8n workflow that runs the deep CV and
// answer analysis for a submitted application.
type WorkflowClient struct {
	webhookURL string
	http       *http.Client
}

func NewWorkflowClient(webhookURL string) *WorkflowClient {
	return &WorkflowClient{
		webhookURL: webhookURL,
		http:       &http.Client{Timeout: requestTimeout},
	}
}

type workflowResponse struct {
	Analysis struct {
		FinalScore     *float64 `json:"scoreFinal"`
		Recommendation string   `json:"recomendacion"`
	} `json:"analisis"`
}

// TriggerAnalysis posts the application id to the webhook. Any failure
// (network, timeout, non-2xx) is returned so the caller can fall back.
func (c *WorkflowClient) TriggerAnalysis(ctx context.Context, applicationID uint) error {
	body, err := json.Marshal(map[string]uint{"applicationId": applicationID})
	if err != nil {
		return fmt.Errorf("%w: encode request: %v", apperrors.ErrExternal, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", apperrors.ErrExternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: workflow webhook: %v", apperrors.ErrExternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: workflow webhook returned %d", apperrors.ErrExternal, resp.StatusCode)
	}

	var parsed workflowResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err == nil && parsed.Analysis.FinalScore != nil {
		log.Printf("Workflow finished for application %d: score %.0f, recommendation %q",
			applicationID, *parsed.Analysis.FinalScore, parsed.Analysis.Recommendation)
	}
	return nil
}
