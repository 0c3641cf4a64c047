package swc

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultUserAgent = "swc-client-go"

// Option configures a Client during construction in New.
//
// Options are applied before the User-Agent transport wrapper is installed,
// so transport-related options (like debug logging) will be placed
// underneath it. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPClient replaces the underlying http.Client used by the SDK.
//
// Use this to supply custom transports, proxies, or TLS settings. The
// client must not be nil.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero. Note that with backoff
// enabled a single logical call may span several such requests.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithUserAgent overrides the User-Agent header stamped on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return fmt.Errorf("user agent must not be empty")
		}
		c.userAgent = ua
		return nil
	}
}

// WithLogger routes the client's diagnostic events to the given logger
// instead of the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// dumped to the log when enabled is true.
//
// The debug transport is installed beneath the User-Agent wrapper; dumps are
// emitted before the request is forwarded to the next transport. Do not
// enable this option in production environments as it logs full bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
