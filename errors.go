package steamquery

import "errors"

// The closed set of failure kinds an operation can return. Every operation
// either yields its documented payload or exactly one of these, usually joined
// with the underlying cause. Branch with errors.Is.
var (
	// ErrTransport means the HTTP call itself never completed (DNS, connect,
	// timeout).
	ErrTransport = errors.New("transport request failed")
	// ErrHTTPStatus means a response arrived with a non-200 status code.
	ErrHTTPStatus = errors.New("unexpected http status")
	// ErrEmptyBody means a 200 response carried no body.
	ErrEmptyBody = errors.New("empty response body")
	// ErrMalformedPayload means the body was not valid JSON, or a community
	// page did not contain the expected XML shape.
	ErrMalformedPayload = errors.New("malformed response payload")
	// ErrMissingEnvelope means valid JSON arrived without the expected
	// envelope key.
	ErrMissingEnvelope = errors.New("missing response envelope")
	// ErrAPIFailure means the envelope's own success indicator signalled
	// failure regardless of HTTP status.
	ErrAPIFailure = errors.New("api returned no result")
	// ErrTooManyIDs means a batch exceeded the documented 100 id cap.
	ErrTooManyIDs = errors.New("too many steam ids")
	// ErrInvalidAppID means an app id argument was not coercible to a number.
	ErrInvalidAppID = errors.New("invalid app id")
)
