package swc

import (
	"context"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	swcerrors "github.com/sportsworldcentral/swc-client-go/internal/errors"
	"github.com/sportsworldcentral/swc-client-go/internal/types"
)

// withBackoff wraps base in the retry policy: exponential waits doubling
// per attempt with randomized jitter, until the call succeeds or the
// cumulative elapsed time exceeds the configured ceiling. The time bound is
// the sole termination criterion; there is no attempt cap.
//
// Only transport and status errors are retried. Any other error class is
// treated as permanent and returned on the first occurrence, as is a
// cancelled context.
func (c *Client) withBackoff(base types.CallFunc) types.CallFunc {
	maxElapsed := time.Duration(c.cfg.BackoffMaxSeconds) * time.Second

	return func(ctx context.Context, baseURL, endpoint string, params types.Params) (*http.Response, error) {
		exp := backoff.NewExponentialBackOff()
		exp.Multiplier = 2
		exp.MaxElapsedTime = maxElapsed
		exp.Reset()

		route := metricRoute(endpoint)
		var resp *http.Response
		op := func() error {
			var err error
			resp, err = base(ctx, baseURL, endpoint, params)
			if err == nil {
				return nil
			}
			if !swcerrors.Retryable(err) {
				return backoff.Permanent(err)
			}
			retryableFailuresTotal.WithLabelValues(route).Inc()
			return err
		}

		if err := backoff.Retry(op, backoff.WithContext(exp, ctx)); err != nil {
			return nil, err
		}
		return resp, nil
	}
}
