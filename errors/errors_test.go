package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	wrapped := Wrap(ErrUnrecognizedScheme, "lambda signature")

	assert.Contains(t, wrapped.Error(), "lambda signature")
	assert.Contains(t, wrapped.Error(), "unrecognized member-function naming scheme")
	assert.True(t, Is(wrapped, ErrUnrecognizedScheme))
	assert.False(t, Is(wrapped, ErrMalformedSignature))
}

func TestWithDetailPreservesSentinel(t *testing.T) {
	err := WithDetail(ErrMalformedSignature, "std::_Mem_fn<int>")

	assert.True(t, IsMalformedSignature(err))
	assert.False(t, IsUnrecognizedScheme(err))

	details := GetAllDetails(err)
	require.Len(t, details, 1)
	assert.Equal(t, "std::_Mem_fn<int>", details[0])
}

func TestSentinelHelpers(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		unrecognized bool
		malformed    bool
	}{
		{"nil", nil, false, false},
		{"plain error", New("other"), false, false},
		{"unrecognized", ErrUnrecognizedScheme, true, false},
		{"wrapped unrecognized", Wrap(ErrUnrecognizedScheme, "ctx"), true, false},
		{"malformed with hint", WithHint(ErrMalformedSignature, "hint"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unrecognized, IsUnrecognizedScheme(tt.err))
			assert.Equal(t, tt.malformed, IsMalformedSignature(tt.err))
		})
	}
}

func TestNewInvalidConfigError(t *testing.T) {
	err := NewInvalidConfigError("display.indent_depth_limit must be >= 0, got %d", -1)

	assert.True(t, Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "got -1")
}

func TestWithHintf(t *testing.T) {
	err := WithHintf(ErrUnrecognizedScheme, "supported schemes: %s", "msvc, libcxx")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "supported schemes: msvc, libcxx", hints[0])
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func ExampleWrap() {
	err := Wrap(ErrUnmatchedParenthesis, "extract")
	fmt.Println(err)
	// Output: extract: no matched parenthesis group
}
