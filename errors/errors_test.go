package errors_test

import (
	"testing"

	"github.com/speakeasy-api/querystyle/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const errTest = errors.Error("unsupported value")

func TestError_Is_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		target   error
		expected bool
	}{
		{
			name:     "exact match",
			target:   errors.Error("unsupported value"),
			expected: true,
		},
		{
			name:     "message with separator",
			target:   errors.New("unsupported value -- bool"),
			expected: true,
		},
		{
			name:     "different error",
			target:   errors.Error("nested containers not supported"),
			expected: false,
		},
		{
			name:     "prefix without separator",
			target:   errors.New("unsupported values"),
			expected: false,
		},
		{
			name:     "nil target",
			target:   nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, errTest.Is(tt.target))
		})
	}
}

func TestError_Wrap_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cause    error
		expected string
	}{
		{
			name:     "with cause",
			cause:    errors.New("chan int"),
			expected: "unsupported value -- chan int",
		},
		{
			name:     "nil cause",
			cause:    nil,
			expected: "unsupported value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := errTest.Wrap(tt.cause)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
			assert.ErrorIs(t, err, errTest)
		})
	}
}

func TestError_Wrapf_Success(t *testing.T) {
	t.Parallel()
	err := errTest.Wrapf("field %q", "color")
	assert.Equal(t, `unsupported value -- field "color"`, err.Error())
	assert.True(t, errors.Is(err, errTest))
}

func TestWrappedError_Unwrap_Success(t *testing.T) {
	t.Parallel()
	cause := errors.New("root cause")
	err := errTest.Wrap(cause)

	assert.ErrorIs(t, err, cause)
}

func TestWrappedError_As_Success(t *testing.T) {
	t.Parallel()
	err := errTest.Wrap(errors.New("cause"))

	var target errors.Error
	require.True(t, errors.As(err, &target))
	assert.Equal(t, errTest, target)
}

func TestJoin_Success(t *testing.T) {
	t.Parallel()
	err1 := errors.New("error 1")
	err2 := errors.New("error 2")

	joined := errors.Join(err1, nil, err2)
	require.Error(t, joined)
	assert.Equal(t, "error 1\nerror 2", joined.Error())
	assert.NoError(t, errors.Join())
}
