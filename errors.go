package swc

import (
	"errors"

	swcerrors "github.com/sportsworldcentral/swc-client-go/internal/errors"
)

// ErrUnknownEntity is returned when a bulk file is requested for an entity
// the table does not know about.
var ErrUnknownEntity = errors.New("unknown bulk file entity")

// Error taxonomy re-exported so callers compare against a single package.
//
// StatusError is a completed HTTP exchange whose status indicates failure;
// TransportError is a failure to complete the network exchange at all. Both
// are returned unchanged after the retry budget (if any) is exhausted.
type (
	StatusError    = swcerrors.StatusError
	TransportError = swcerrors.TransportError
)

// AsStatusError unwraps err into a *StatusError if it is one.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	ok := errors.As(err, &se)
	return se, ok
}

// AsTransportError unwraps err into a *TransportError if it is one.
func AsTransportError(err error) (*TransportError, bool) {
	var te *TransportError
	ok := errors.As(err, &te)
	return te, ok
}
