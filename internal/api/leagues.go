package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sportsworldcentral/swc-client-go/internal/types"
)

// ListLeagues retrieves leagues matching the given filters.
func ListLeagues(ctx context.Context, call types.CallFunc, baseURL string, p types.ListLeaguesParams) ([]types.League, error) {
	resp, err := call(ctx, baseURL, ListLeaguesEndpoint, p.Query())
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var leagues []types.League
	if err := json.NewDecoder(resp.Body).Decode(&leagues); err != nil {
		return nil, fmt.Errorf("decode leagues: %w", err)
	}
	return leagues, nil
}

// GetLeague retrieves a single league by ID, including its teams.
func GetLeague(ctx context.Context, call types.CallFunc, baseURL string, leagueID int) (*types.League, error) {
	endpoint := fmt.Sprintf("%s%d", ListLeaguesEndpoint, leagueID)
	resp, err := call(ctx, baseURL, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var league types.League
	if err := json.NewDecoder(resp.Body).Decode(&league); err != nil {
		return nil, fmt.Errorf("decode league: %w", err)
	}
	return &league, nil
}
