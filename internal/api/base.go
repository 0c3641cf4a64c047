// Package api implements one HTTP attempt per call plus the typed endpoint
// helpers built on top of it. Retry layering happens in the root package;
// everything here is strictly single-shot.
package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	swcerrors "github.com/sportsworldcentral/swc-client-go/internal/errors"
	"github.com/sportsworldcentral/swc-client-go/internal/types"
)

// API endpoint paths, relative to the configured base URL.
const (
	HealthCheckEndpoint      = "/"
	ListLeaguesEndpoint      = "/v0/leagues/"
	ListPlayersEndpoint      = "/v0/players/"
	ListPerformancesEndpoint = "/v0/performances/"
	ListTeamsEndpoint        = "/v0/teams/"
	GetCountsEndpoint        = "/v0/counts/"
)

// Get issues a single synchronous GET against baseURL+endpoint. Params with
// nil values are stripped before the request is built and never appear as
// empty query arguments.
//
// Non-2xx statuses are returned as *errors.StatusError with the body
// captured; network failures as *errors.TransportError. The response body
// is closed on every error path; on success the caller owns it.
func Get(ctx context.Context, httpClient *http.Client, log zerolog.Logger, baseURL, endpoint string, params types.Params) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := filterParams(params)
	u := strings.TrimRight(baseURL, "/") + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	log.Debug().
		Str("base_url", baseURL).
		Str("endpoint", endpoint).
		Str("query", query.Encode()).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Msg("API request")

	resp, err := httpClient.Do(req)
	if err != nil {
		terr := &swcerrors.TransportError{Endpoint: endpoint, Err: err}
		log.Error().Err(err).Str("endpoint", endpoint).Str("query", query.Encode()).Msg("request error")
		return nil, terr
	}

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
		_ = resp.Body.Close()
		serr := &swcerrors.StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
		log.Error().
			Str("endpoint", endpoint).
			Str("query", query.Encode()).
			Int("status_code", resp.StatusCode).
			Str("body", serr.Body).
			Msg("HTTP status error")
		return nil, serr
	}

	log.Debug().Str("endpoint", endpoint).Int("status_code", resp.StatusCode).Msg("API response")
	return resp, nil
}

// filterParams produces the outgoing query values, dropping nil entries.
func filterParams(params types.Params) url.Values {
	q := url.Values{}
	for key, val := range params {
		if val == nil {
			continue
		}
		q.Set(key, *val)
	}
	return q
}
