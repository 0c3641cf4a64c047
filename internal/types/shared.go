package types

import (
	"context"
	"net/http"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// CallFunc issues one logical GET against baseURL+endpoint and returns the
// raw response. The client installs either a single-attempt implementation
// or a backoff-wrapped one at construction; the endpoint helpers in
// internal/api stay agnostic of which they were handed.
type CallFunc func(ctx context.Context, baseURL, endpoint string, params Params) (*http.Response, error)
