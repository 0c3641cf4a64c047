package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sportsworldcentral/swc-client-go/internal/types"
)

// GetHealthCheck verifies the API is reachable and responding.
func GetHealthCheck(ctx context.Context, call types.CallFunc, baseURL string) (*types.HealthCheck, error) {
	resp, err := call(ctx, baseURL, HealthCheckEndpoint, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var hc types.HealthCheck
	if err := json.NewDecoder(resp.Body).Decode(&hc); err != nil {
		return nil, fmt.Errorf("decode health check: %w", err)
	}
	return &hc, nil
}
