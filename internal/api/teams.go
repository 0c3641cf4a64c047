package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sportsworldcentral/swc-client-go/internal/types"
)

// ListTeams retrieves fantasy teams matching the given filters.
func ListTeams(ctx context.Context, call types.CallFunc, baseURL string, p types.ListTeamsParams) ([]types.Team, error) {
	resp, err := call(ctx, baseURL, ListTeamsEndpoint, p.Query())
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var teams []types.Team
	if err := json.NewDecoder(resp.Body).Decode(&teams); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}
	return teams, nil
}
