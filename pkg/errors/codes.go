package errors

import "net/http"

// ErrorCode uniquely identifies a failure category across the service.
// Codes are stable strings so they can be returned in API responses and
// used as metric labels without leaking Go type information.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common codes shared by every layer.
const (
	CodeOK             ErrorCode = "OK"
	CodeUnknown        ErrorCode = "COMMON_000"
	CodeInternal       ErrorCode = "COMMON_001"
	CodeInvalidParam   ErrorCode = "COMMON_002"
	CodeUnauthorized   ErrorCode = "COMMON_003"
	CodeNotFound       ErrorCode = "COMMON_004"
	CodeRateLimit      ErrorCode = "COMMON_005"
	CodeTimeout        ErrorCode = "COMMON_006"
	CodeInvalidConfig  ErrorCode = "COMMON_007"
	CodeNotImplemented ErrorCode = "COMMON_008"
)

// Recognition pipeline codes.
const (
	// CodeTransport covers network and HTTP-level failures when calling the
	// remote inference endpoint (connection refused, non-2xx status).
	CodeTransport ErrorCode = "NER_001"

	// CodeDecode covers responses that are not valid JSON or do not match
	// the expected token-prediction shape.
	CodeDecode ErrorCode = "NER_002"

	// CodeMalformedToken marks a token prediction with a missing or invalid
	// required field. The error detail names the offending token index.
	CodeMalformedToken ErrorCode = "NER_003"

	// CodeSpanOverlap marks two entity spans whose character ranges overlap.
	CodeSpanOverlap ErrorCode = "NER_004"

	// CodeSpanOutOfRange marks an entity span extending past the input text.
	CodeSpanOutOfRange ErrorCode = "NER_005"
)

// HTTPStatus maps an ErrorCode to the HTTP status code the API layer should
// respond with. Unmapped codes degrade to 500.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidParam, CodeMalformedToken, CodeSpanOverlap, CodeSpanOutOfRange:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeRateLimit:
		return http.StatusTooManyRequests
	case CodeTimeout:
		return http.StatusGatewayTimeout
	case CodeTransport, CodeDecode:
		return http.StatusBadGateway
	case CodeNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
