package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sportsworldcentral/swc-client-go/internal/types"
)

// ListPlayers retrieves players matching the given filters.
func ListPlayers(ctx context.Context, call types.CallFunc, baseURL string, p types.ListPlayersParams) ([]types.Player, error) {
	resp, err := call(ctx, baseURL, ListPlayersEndpoint, p.Query())
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var players []types.Player
	if err := json.NewDecoder(resp.Body).Decode(&players); err != nil {
		return nil, fmt.Errorf("decode players: %w", err)
	}
	return players, nil
}

// GetPlayer retrieves a single player by ID.
func GetPlayer(ctx context.Context, call types.CallFunc, baseURL string, playerID int) (*types.Player, error) {
	endpoint := fmt.Sprintf("%s%d", ListPlayersEndpoint, playerID)
	resp, err := call(ctx, baseURL, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var player types.Player
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return &player, nil
}
