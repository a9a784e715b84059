package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/MKhiriev/go-vault-sync/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// ValidationError carries a structured 400 rejection. Callers treat it as
// data, not as a fault: the message surfaces to the user and the operation
// result stays non-fatal.
type ValidationError struct {
	Invalid models.Invalid
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("server validation rejection: %s", e.Invalid.FirstMessage())
}

// AsValidation unwraps a [ValidationError] if err carries one.
func AsValidation(err error) (models.Invalid, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Invalid, true
	}
	return models.Invalid{}, false
}

// IsNoConnectionError reports whether err indicates the server is unreachable
// rather than rejecting the request. Timeouts, DNS failures, and refused
// connections all count.
func IsNoConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
