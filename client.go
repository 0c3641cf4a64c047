package swc

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sportsworldcentral/swc-client-go/internal/api"
	"github.com/sportsworldcentral/swc-client-go/internal/types"
)

// API endpoint paths, re-exported for callers using the raw Call surface.
const (
	HealthCheckEndpoint      = api.HealthCheckEndpoint
	ListLeaguesEndpoint      = api.ListLeaguesEndpoint
	ListPlayersEndpoint      = api.ListPlayersEndpoint
	ListPerformancesEndpoint = api.ListPerformancesEndpoint
	ListTeamsEndpoint        = api.ListTeamsEndpoint
	GetCountsEndpoint        = api.GetCountsEndpoint
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the SportsWorldCentral fantasy football API.
//
// A Client is created once per logical session and is stateless across
// calls, so it is safe for concurrent use. The retry-wrapped call path and
// the bulk filename table are derived at construction and never change.
type Client struct {
	cfg       Config
	http      *http.Client
	log       zerolog.Logger
	userAgent string

	// call is the invocation path every request goes through: either a
	// single attempt, or the same attempt wrapped in the backoff policy
	// when cfg.Backoff is set.
	call types.CallFunc

	bulkFileNames map[string]string
}

// New constructs a Client from cfg. Additional options can be provided via
// functional arguments. No network I/O happens here.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("swc: base URL cannot be empty")
	}

	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
		log:  log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap HTTP transport to stamp the User-Agent header on all requests.
	c.wrapTransportWithUserAgent()

	c.call = c.apiCall
	if cfg.Backoff {
		c.call = c.withBackoff(c.apiCall)
	}

	c.bulkFileNames = bulkFileNames(cfg.fileFormat())
	c.log.Debug().
		Str("base_url", cfg.BaseURL).
		Bool("backoff", cfg.Backoff).
		Int("backoff_max_seconds", cfg.BackoffMaxSeconds).
		Str("bulk_file_format", cfg.fileFormat()).
		Msg("client configured")

	return c, nil
}

// apiCall is the single-attempt invocation path.
func (c *Client) apiCall(ctx context.Context, baseURL, endpoint string, params types.Params) (*http.Response, error) {
	route := metricRoute(endpoint)
	start := time.Now()
	resp, err := api.Get(ctx, c.http, c.log, baseURL, endpoint, params)
	requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(route, "error").Inc()
		return nil, err
	}
	requestsTotal.WithLabelValues(route, "success").Inc()
	return resp, nil
}

// wrapTransportWithUserAgent wraps the HTTP client's transport so every
// request carries the SDK User-Agent.
func (c *Client) wrapTransportWithUserAgent() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	ua := c.userAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	c.http.Transport = &userAgentTransport{base: baseTransport, userAgent: ua}
}

// userAgentTransport wraps an http.RoundTripper to set the User-Agent header.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(cloned)
}

// Call issues a GET against the API base URL plus endpoint, going through
// the retry policy when it is enabled. Params mapped to nil are stripped
// and never sent as empty query arguments.
//
// The raw response is returned for success statuses; non-2xx statuses come
// back as *StatusError and network failures as *TransportError. The caller
// owns the response body.
func (c *Client) Call(ctx context.Context, endpoint string, params Params) (*http.Response, error) {
	return c.call(ctx, c.cfg.BaseURL, endpoint, params)
}

// --------------------------------------------------------------------
// Endpoint operations - delegated to internal/api
// --------------------------------------------------------------------

// GetHealthCheck verifies the API is reachable and responding.
func (c *Client) GetHealthCheck(ctx context.Context) (*HealthCheck, error) {
	return api.GetHealthCheck(ctx, c.call, c.cfg.BaseURL)
}

// ListLeagues retrieves leagues matching the given filters.
func (c *Client) ListLeagues(ctx context.Context, p ListLeaguesParams) ([]League, error) {
	return api.ListLeagues(ctx, c.call, c.cfg.BaseURL, p)
}

// GetLeague retrieves a single league by ID, including its teams.
func (c *Client) GetLeague(ctx context.Context, leagueID int) (*League, error) {
	return api.GetLeague(ctx, c.call, c.cfg.BaseURL, leagueID)
}

// ListPlayers retrieves players matching the given filters.
func (c *Client) ListPlayers(ctx context.Context, p ListPlayersParams) ([]Player, error) {
	return api.ListPlayers(ctx, c.call, c.cfg.BaseURL, p)
}

// GetPlayer retrieves a single player by ID.
func (c *Client) GetPlayer(ctx context.Context, playerID int) (*Player, error) {
	return api.GetPlayer(ctx, c.call, c.cfg.BaseURL, playerID)
}

// ListPerformances retrieves weekly scoring records matching the given filters.
func (c *Client) ListPerformances(ctx context.Context, p ListPerformancesParams) ([]Performance, error) {
	return api.ListPerformances(ctx, c.call, c.cfg.BaseURL, p)
}

// ListTeams retrieves fantasy teams matching the given filters.
func (c *Client) ListTeams(ctx context.Context, p ListTeamsParams) ([]Team, error) {
	return api.ListTeams(ctx, c.call, c.cfg.BaseURL, p)
}

// GetCounts retrieves record counts for every entity table.
func (c *Client) GetCounts(ctx context.Context) (*Counts, error) {
	return api.GetCounts(ctx, c.call, c.cfg.BaseURL)
}
