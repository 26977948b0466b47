// Package errors_test provides unit tests for the AppError type, factory
// functions, and error-chain helpers defined in pkg/errors.
package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/ner-spotlight/pkg/errors"
)

func TestNew_FieldsAreSetCorrectly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		code    errors.ErrorCode
		message string
	}{
		{"internal error", errors.CodeInternal, "unexpected failure"},
		{"transport", errors.CodeTransport, "inference endpoint unreachable"},
		{"decode", errors.CodeDecode, "response is not a token list"},
		{"invalid param", errors.CodeInvalidParam, "text must not be empty"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ae := errors.New(tc.code, tc.message)

			require.NotNil(t, ae)
			assert.Equal(t, tc.code, ae.Code)
			assert.Equal(t, tc.message, ae.Message)
			assert.Empty(t, ae.Detail)
			assert.Nil(t, ae.Cause)
		})
	}
}

func TestError_FormatIncludesCodeAndDetail(t *testing.T) {
	t.Parallel()

	ae := errors.New(errors.CodeTransport, "request failed")
	assert.Equal(t, "[NER_001] request failed", ae.Error())

	withDetail := ae.WithDetail("status=503")
	assert.Equal(t, "[NER_001] request failed: status=503", withDetail.Error())
	// The original is not mutated.
	assert.Empty(t, ae.Detail)
}

func TestWrap_NilErrorReturnsNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, errors.Wrap(nil, errors.CodeTransport, "ignored"))
}

func TestWrap_PreservesCodeWhenUnknown(t *testing.T) {
	t.Parallel()

	inner := errors.MalformedToken(2, "missing score field")
	wrapped := errors.Wrap(inner, errors.CodeUnknown, "merge failed")

	require.NotNil(t, wrapped)
	assert.Equal(t, errors.CodeMalformedToken, wrapped.Code)
	assert.True(t, stderrors.Is(wrapped, wrapped))

	var ae *errors.AppError
	require.True(t, stderrors.As(wrapped.Unwrap(), &ae))
	assert.Equal(t, errors.CodeMalformedToken, ae.Code)
}

func TestWrap_ChainTraversal(t *testing.T) {
	t.Parallel()

	root := fmt.Errorf("connection refused")
	mid := errors.Wrap(root, errors.CodeTransport, "POST failed")
	outer := errors.Wrap(mid, errors.CodeInternal, "recognize failed")

	assert.True(t, errors.IsCode(outer, errors.CodeTransport))
	assert.True(t, errors.IsCode(outer, errors.CodeInternal))
	assert.False(t, errors.IsCode(outer, errors.CodeDecode))
	assert.True(t, stderrors.Is(outer, root))
}

func TestGetCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(fmt.Errorf("plain")))
	assert.Equal(t, errors.CodeDecode, errors.GetCode(errors.Decode("bad JSON")))
	assert.Equal(t, errors.CodeTransport,
		errors.GetCode(fmt.Errorf("outer: %w", errors.Transport("down"))))
}

func TestMalformedToken_ReferencesIndex(t *testing.T) {
	t.Parallel()

	ae := errors.MalformedToken(7, "missing word field")

	assert.Equal(t, errors.CodeMalformedToken, ae.Code)
	assert.Contains(t, ae.Error(), "index 7")
	assert.Contains(t, ae.Error(), "missing word field")
}

func TestOverlapAndOutOfRange(t *testing.T) {
	t.Parallel()

	ov := errors.Overlap(10, 8)
	assert.Equal(t, errors.CodeSpanOverlap, ov.Code)
	assert.Contains(t, ov.Detail, "ends at 10")

	oor := errors.OutOfRange(42, 17)
	assert.Equal(t, errors.CodeSpanOutOfRange, oor.Code)
	assert.Contains(t, oor.Detail, "text length is 17")
}

func TestHTTPStatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code errors.ErrorCode
		want int
	}{
		{errors.CodeOK, http.StatusOK},
		{errors.CodeInvalidParam, http.StatusBadRequest},
		{errors.CodeMalformedToken, http.StatusBadRequest},
		{errors.CodeSpanOverlap, http.StatusBadRequest},
		{errors.CodeUnauthorized, http.StatusUnauthorized},
		{errors.CodeRateLimit, http.StatusTooManyRequests},
		{errors.CodeTransport, http.StatusBadGateway},
		{errors.CodeDecode, http.StatusBadGateway},
		{errors.CodeTimeout, http.StatusGatewayTimeout},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.CodeUnknown, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.code.HTTPStatus(), "code %s", tc.code)
	}
}

func TestWithCause(t *testing.T) {
	t.Parallel()

	root := fmt.Errorf("boom")
	ae := errors.Internal("wrapped later").WithCause(root)

	assert.True(t, stderrors.Is(ae, root))

	var nilErr *errors.AppError
	assert.Nil(t, nilErr.WithCause(root))
	assert.Nil(t, nilErr.WithDetail("x"))
}
