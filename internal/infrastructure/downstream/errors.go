package downstream

import (
	"errors"
	"fmt"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
)

// StatusError is returned when a downstream replied with a non-2xx status.
// The body is kept for logging; handlers never expose it.
type StatusError struct {
	Service string
	Code    int
	Body    []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: downstream returned status %d", e.Service, e.Code)
}

// Is lets errors.Is(err, domain.ErrDownstream) match any status failure.
func (e *StatusError) Is(target error) bool {
	return target == domain.ErrDownstream
}

// TransportError is returned when the request never produced a usable
// response: DNS/connect/timeout failures and non-decodable bodies.
type TransportError struct {
	Service string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, domain.ErrDownstream) match transport failures too.
func (e *TransportError) Is(target error) bool {
	return target == domain.ErrDownstream
}

// StatusCode extracts the downstream HTTP status from err, or 0 when the
// failure never reached a status line.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
