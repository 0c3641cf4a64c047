package swc

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps each HTTP request and response for troubleshooting
// API communication problems (timeouts, malformed requests, unexpected
// responses).
//
// Dumps include full bodies, so only enable it in development or staging.
// Activated with WithDebugLogging or by setting SWC_DEBUG=true (or the
// general DEBUG=true) in the environment.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := dt.base
	if next == nil {
		next = http.DefaultTransport
	}

	if debugLoggingRequested() {
		if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		}
	}

	resp, err := next.RoundTrip(req)
	if err != nil {
		if debugLoggingRequested() {
			log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}

	if debugLoggingRequested() {
		if respDump, err := httputil.DumpResponse(resp, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

// debugLoggingRequested reports whether HTTP debug logging was requested
// via the environment. Both SWC_DEBUG=true and the general DEBUG=true are
// honored so the SDK can participate in application-wide debug runs.
func debugLoggingRequested() bool {
	return os.Getenv("SWC_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
