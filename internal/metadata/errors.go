package metadata

import "errors"

var (
	ErrTruncatedInput    = errors.New("metadata: truncated input")
	ErrSectionTooLarge   = errors.New("metadata: section larger than buffer")
	ErrEmptyPayload      = errors.New("metadata: empty payload")
	ErrMalformedMetadata = errors.New("metadata: malformed metadata")
	ErrPayloadTooLarge   = errors.New("metadata: payload too large")
)

// Reason returns a stable label for err, suitable for logs and metric labels.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTruncatedInput):
		return "truncated_input"
	case errors.Is(err, ErrSectionTooLarge):
		return "section_too_large"
	case errors.Is(err, ErrEmptyPayload):
		return "empty_payload"
	case errors.Is(err, ErrMalformedMetadata):
		return "malformed_metadata"
	case errors.Is(err, ErrPayloadTooLarge):
		return "payload_too_large"
	default:
		return "unknown"
	}
}
