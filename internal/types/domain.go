package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Dates arrive from the API as ISO "YYYY-MM-DD" strings; they are kept as
// strings rather than time.Time so round-trips are lossless.

// Player represents an NFL player tracked by the SWC API.
type Player struct {
	PlayerID        int    `json:"player_id"`
	GSISID          string `json:"gsis_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Position        string `json:"position"`
	LastChangedDate string `json:"last_changed_date"`
}

// Performance represents one week of fantasy scoring for a player.
type Performance struct {
	PerformanceID   int     `json:"performance_id"`
	PlayerID        int     `json:"player_id"`
	WeekNumber      string  `json:"week_number"`
	FantasyPoints   float64 `json:"fantasy_points"`
	LastChangedDate string  `json:"last_changed_date"`
}

// Team represents a fantasy team within a league.
type Team struct {
	TeamID          int      `json:"team_id"`
	TeamName        string   `json:"team_name"`
	LeagueID        int      `json:"league_id"`
	LastChangedDate string   `json:"last_changed_date"`
	Players         []Player `json:"players,omitempty"`
}

// League represents a fantasy league.
type League struct {
	LeagueID        int    `json:"league_id"`
	LeagueName      string `json:"league_name"`
	ScoringType     string `json:"scoring_type"`
	LastChangedDate string `json:"last_changed_date"`
	Teams           []Team `json:"teams,omitempty"`
}
