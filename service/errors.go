package service

import "errors"

var (
	ErrGeneratorNotSet = errors.New("generator not set")
	ErrValidatorNotSet = errors.New("validator not set")
)

// ProviderError means the inference call itself failed (auth, quota,
// transport, timeout). The client library owns its own retry/backoff, so
// this layer surfaces it without retrying.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// ExtractionError means the model's output never produced a valid
// extraction: either retries exhausted on shape violations or a non-shape
// validation failure. Details carries the last underlying error text.
type ExtractionError struct {
	Message string
	Details string
}

func (e *ExtractionError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}
