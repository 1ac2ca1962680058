package llm

import "errors"

var (
	// ErrUnavailable means the generative API could not be reached.
	ErrUnavailable = errors.New("generative api unavailable")

	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput means the response did not decode into the expected shape.
	ErrInvalidOutput = errors.New("invalid llm output format")

	ErrRetryExhausted = errors.New("llm retry attempts exhausted")

	// ErrMissingAPIKey means generation was requested without a configured key.
	ErrMissingAPIKey = errors.New("API_KEY environment variable not set")

	// ErrNoCandidates means the API answered but returned no usable text,
	// usually because the prompt was blocked.
	ErrNoCandidates = errors.New("llm returned no candidates")
)
