package types

import "strconv"

// ------------------------------
// List-endpoint parameters
// ------------------------------

// Params is the query-parameter mapping for one API call. Keys whose value
// is nil are dropped before the request is issued, so optional filters can
// be threaded through without sentinel values.
type Params map[string]*string

// ListLeaguesParams filters the leagues listing. Nil fields are omitted
// from the request.
type ListLeaguesParams struct {
	Skip                   *int
	Limit                  *int
	MinimumLastChangedDate *string
	LeagueName             *string
}

// Query converts the params to their wire representation.
func (p ListLeaguesParams) Query() Params {
	return Params{
		"skip":                      intString(p.Skip),
		"limit":                     intString(p.Limit),
		"minimum_last_changed_date": p.MinimumLastChangedDate,
		"league_name":               p.LeagueName,
	}
}

// ListPlayersParams filters the players listing. Nil fields are omitted
// from the request.
type ListPlayersParams struct {
	Skip                   *int
	Limit                  *int
	MinimumLastChangedDate *string
	FirstName              *string
	LastName               *string
}

// Query converts the params to their wire representation.
func (p ListPlayersParams) Query() Params {
	return Params{
		"skip":                      intString(p.Skip),
		"limit":                     intString(p.Limit),
		"minimum_last_changed_date": p.MinimumLastChangedDate,
		"first_name":                p.FirstName,
		"last_name":                 p.LastName,
	}
}

// ListPerformancesParams filters the performances listing. Nil fields are
// omitted from the request.
type ListPerformancesParams struct {
	Skip                   *int
	Limit                  *int
	MinimumLastChangedDate *string
}

// Query converts the params to their wire representation.
func (p ListPerformancesParams) Query() Params {
	return Params{
		"skip":                      intString(p.Skip),
		"limit":                     intString(p.Limit),
		"minimum_last_changed_date": p.MinimumLastChangedDate,
	}
}

// ListTeamsParams filters the teams listing. Nil fields are omitted from
// the request.
type ListTeamsParams struct {
	Skip                   *int
	Limit                  *int
	MinimumLastChangedDate *string
	TeamName               *string
	LeagueID               *int
}

// Query converts the params to their wire representation.
func (p ListTeamsParams) Query() Params {
	return Params{
		"skip":                      intString(p.Skip),
		"limit":                     intString(p.Limit),
		"minimum_last_changed_date": p.MinimumLastChangedDate,
		"team_name":                 p.TeamName,
		"league_id":                 intString(p.LeagueID),
	}
}

func intString(v *int) *string {
	if v == nil {
		return nil
	}
	s := strconv.Itoa(*v)
	return &s
}
