package types

// HealthCheck is the payload returned by the API root endpoint.
type HealthCheck struct {
	Message string `json:"message"`
}

// Counts reports how many records each entity table holds.
type Counts struct {
	LeagueCount int `json:"league_count"`
	TeamCount   int `json:"team_count"`
	PlayerCount int `json:"player_count"`
}
