// Package analysis is the client for the external analysis service: the
// collaborator that computes CIDR math, duplicate detection and AI
// recommendations. Its output is consumed as an opaque, already-computed
// AnalysisResult; no analysis happens in this repository.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/secnet-tools/nsg-report/pkg/models/domain"
)

// Explorer fetches analysis results for NSGs by name.
type Explorer interface {
	GetAnalysis(ctx context.Context, nsgName string) (*domain.AnalysisResult, error)
}

type client struct {
	http     *http.Client
	endpoint string
	apiKey   string
}

func NewClient(cfg *Config) Explorer {
	return &client{
		http:     &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
	}
}

func (c *client) GetAnalysis(ctx context.Context, nsgName string) (*domain.AnalysisResult, error) {
	u := fmt.Sprintf("%s/api/v1/analysis/%s", c.endpoint, url.PathEscape(nsgName))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build analysis request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analysis for %q: %w", nsgName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analysis service returned %d for %q", resp.StatusCode, nsgName)
	}

	var result domain.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis for %q: %w", nsgName, err)
	}
	return &result, nil
}
