package swc

import (
	"context"
	"fmt"
	"io"
)

// Entity keys for bulk data files.
const (
	BulkPlayers      = "players"
	BulkLeagues      = "leagues"
	BulkPerformances = "performances"
	BulkTeams        = "teams"
	BulkTeamPlayers  = "team_players"
)

// Basenames of the published bulk exports, keyed by entity. The configured
// format only ever changes the extension; the key set is fixed.
var bulkFileBases = map[string]string{
	BulkPlayers:      "player_data",
	BulkLeagues:      "league_data",
	BulkPerformances: "performance_data",
	BulkTeams:        "team_data",
	BulkTeamPlayers:  "team_player_data",
}

// bulkFileNames builds the entity -> filename table for the given format.
func bulkFileNames(format string) map[string]string {
	names := make(map[string]string, len(bulkFileBases))
	for entity, base := range bulkFileBases {
		names[entity] = base + "." + format
	}
	return names
}

// BulkFileName returns the configured filename for the given entity, e.g.
// "player_data.csv" for BulkPlayers with the csv format.
func (c *Client) BulkFileName(entity string) (string, error) {
	name, ok := c.bulkFileNames[entity]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
	return name, nil
}

// BulkFileNames returns a copy of the entity -> filename table.
func (c *Client) BulkFileNames() map[string]string {
	names := make(map[string]string, len(c.bulkFileNames))
	for entity, name := range c.bulkFileNames {
		names[entity] = name
	}
	return names
}

// DownloadBulkFile fetches the bulk export for the given entity from the
// configured bulk base URL and returns its raw contents. Parsing the CSV or
// Parquet payload is left to the caller.
//
// Downloads go through the same retry policy and error taxonomy as API
// calls.
func (c *Client) DownloadBulkFile(ctx context.Context, entity string) ([]byte, error) {
	name, err := c.BulkFileName(entity)
	if err != nil {
		return nil, err
	}
	resp, err := c.call(ctx, c.cfg.bulkBaseURL(), "/"+name, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read bulk file %s: %w", name, err)
	}
	return data, nil
}

// DownloadBulkPlayerFile fetches the players bulk export.
func (c *Client) DownloadBulkPlayerFile(ctx context.Context) ([]byte, error) {
	return c.DownloadBulkFile(ctx, BulkPlayers)
}

// DownloadBulkLeagueFile fetches the leagues bulk export.
func (c *Client) DownloadBulkLeagueFile(ctx context.Context) ([]byte, error) {
	return c.DownloadBulkFile(ctx, BulkLeagues)
}

// DownloadBulkPerformanceFile fetches the performances bulk export.
func (c *Client) DownloadBulkPerformanceFile(ctx context.Context) ([]byte, error) {
	return c.DownloadBulkFile(ctx, BulkPerformances)
}

// DownloadBulkTeamFile fetches the teams bulk export.
func (c *Client) DownloadBulkTeamFile(ctx context.Context) ([]byte, error) {
	return c.DownloadBulkFile(ctx, BulkTeams)
}

// DownloadBulkTeamPlayerFile fetches the team/player assignment bulk export.
func (c *Client) DownloadBulkTeamPlayerFile(ctx context.Context) ([]byte, error) {
	return c.DownloadBulkFile(ctx, BulkTeamPlayers)
}
