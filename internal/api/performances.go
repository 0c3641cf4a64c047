package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sportsworldcentral/swc-client-go/internal/types"
)

// ListPerformances retrieves weekly scoring records matching the given filters.
func ListPerformances(ctx context.Context, call types.CallFunc, baseURL string, p types.ListPerformancesParams) ([]types.Performance, error) {
	resp, err := call(ctx, baseURL, ListPerformancesEndpoint, p.Query())
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var performances []types.Performance
	if err := json.NewDecoder(resp.Body).Decode(&performances); err != nil {
		return nil, fmt.Errorf("decode performances: %w", err)
	}
	return performances, nil
}
