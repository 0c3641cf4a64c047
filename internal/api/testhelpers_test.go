package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/sportsworldcentral/swc-client-go/internal/types"
)

// testCall adapts Get into the CallFunc shape the endpoint helpers expect,
// without any retry layering.
func testCall(hc *http.Client) types.CallFunc {
	return func(ctx context.Context, baseURL, endpoint string, params types.Params) (*http.Response, error) {
		return Get(ctx, hc, zerolog.Nop(), baseURL, endpoint, params)
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
