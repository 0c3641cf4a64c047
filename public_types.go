package swc

import "github.com/sportsworldcentral/swc-client-go/internal/types"

// Public type aliases so SDK consumers can import only the swc package.
type (
	// Domain entities
	League      = types.League
	Team        = types.Team
	Player      = types.Player
	Performance = types.Performance

	// Responses
	HealthCheck = types.HealthCheck
	Counts      = types.Counts

	// Request parameters
	Params                 = types.Params
	ListLeaguesParams      = types.ListLeaguesParams
	ListPlayersParams      = types.ListPlayersParams
	ListPerformancesParams = types.ListPerformancesParams
	ListTeamsParams        = types.ListTeamsParams
)

// String returns a pointer to v, for filling optional param fields.
func String(v string) *string { return &v }

// Int returns a pointer to v, for filling optional param fields.
func Int(v int) *int { return &v }
