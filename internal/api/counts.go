package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sportsworldcentral/swc-client-go/internal/types"
)

// GetCounts retrieves record counts for every entity table.
func GetCounts(ctx context.Context, call types.CallFunc, baseURL string) (*types.Counts, error) {
	resp, err := call(ctx, baseURL, GetCountsEndpoint, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var counts types.Counts
	if err := json.NewDecoder(resp.Body).Decode(&counts); err != nil {
		return nil, fmt.Errorf("decode counts: %w", err)
	}
	return &counts, nil
}
