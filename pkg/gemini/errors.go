package gemini

import (
	"FridgeMate/domain"
	"errors"
	"fmt"
)

const (
	ReasonTransport = "transport"
	ReasonStatus    = "status"
	ReasonEmpty     = "empty_response"
	ReasonParse     = "parse"
	ReasonSchema    = "schema"
)

// GatewayError is returned for every failed round trip to the model: network
// failure, bad status, non-JSON text or a body that does not match the
// declared schema. It matches domain.ErrGeminiProcessingFailed.
type GatewayError struct {
	Op         string
	Reason     string
	StatusCode int
	Err        error
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gemini %s: %s (status %d): %v", e.Op, e.Reason, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("gemini %s: %s: %v", e.Op, e.Reason, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func (e *GatewayError) Is(target error) bool {
	return target == domain.ErrGeminiProcessingFailed
}

// Transient reports whether a second attempt could succeed.
func (e *GatewayError) Transient() bool {
	switch e.Reason {
	case ReasonTransport:
		return true
	case ReasonStatus:
		return e.StatusCode == 429 || e.StatusCode >= 500
	}
	return false
}

func IsGatewayError(err error) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr)
}
