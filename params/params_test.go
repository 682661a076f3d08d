package params_test

import (
	"context"
	"math"
	"testing"

	"github.com/speakeasy-api/querystyle/params"
	"github.com/speakeasy-api/querystyle/pointer"
	"github.com/speakeasy-api/querystyle/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type color struct {
	R int
	G int
	B int
}

type inner struct {
	A int    `json:"a"`
	B string `json:"b"`
}

type body struct {
	X int   `json:"x"`
	Y inner `json:"y"`
}

func TestParameter_Defaults_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      params.ParameterIn
		style   style.SerializationStyle
		explode bool
	}{
		{in: params.ParameterInPath, style: style.SerializationStyleSimple, explode: false},
		{in: params.ParameterInHeader, style: style.SerializationStyleSimple, explode: false},
		{in: params.ParameterInQuery, style: style.SerializationStyleForm, explode: true},
		{in: params.ParameterInCookie, style: style.SerializationStyleForm, explode: true},
		{in: params.ParameterInBody, style: style.SerializationStyleForm, explode: true},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			t.Parallel()
			p := &params.Parameter{Name: "id", In: tt.in}
			assert.Equal(t, tt.style, p.GetStyle())
			assert.Equal(t, tt.explode, p.GetExplode())
		})
	}

	var nilParam *params.Parameter
	assert.Empty(t, nilParam.GetStyle())
	assert.False(t, nilParam.GetExplode())

	p := &params.Parameter{In: params.ParameterInQuery, Style: pointer.From(style.SerializationStyleDeepObject)}
	assert.Equal(t, style.SerializationStyleDeepObject, p.GetStyle())
	assert.False(t, p.GetExplode())
}

func TestParameter_Encode_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		parameter params.Parameter
		value     any
		expected  string
	}{
		{
			name:      "path simple",
			parameter: params.Parameter{Name: "id", In: params.ParameterInPath},
			value:     []string{"a b", "c/d"},
			expected:  "a%20b,c%2Fd",
		},
		{
			name:      "path simple explode object",
			parameter: params.Parameter{Name: "id", In: params.ParameterInPath, Explode: pointer.From(true)},
			value:     color{R: 100, G: 200, B: 150},
			expected:  "R=100,G=200,B=150",
		},
		{
			name:      "header passthrough",
			parameter: params.Parameter{Name: "X-Trace", In: params.ParameterInHeader},
			value:     "a b",
			expected:  "a b",
		},
		{
			name:      "query form exploded",
			parameter: params.Parameter{Name: "color", In: params.ParameterInQuery},
			value:     []string{"blue", "black"},
			expected:  "color=blue&color=black",
		},
		{
			name:      "query form not exploded",
			parameter: params.Parameter{Name: "color", In: params.ParameterInQuery, Explode: pointer.From(false)},
			value:     []string{"blue", "black"},
			expected:  "color=blue,black",
		},
		{
			name:      "query escaping",
			parameter: params.Parameter{Name: "q", In: params.ParameterInQuery},
			value:     "#hello world",
			expected:  "q=%23hello%20world",
		},
		{
			name:      "query allow reserved",
			parameter: params.Parameter{Name: "q", In: params.ParameterInQuery, AllowReserved: true},
			value:     "a/b#c",
			expected:  "q=a/b#c",
		},
		{
			name:      "query deep object",
			parameter: params.Parameter{Name: "color", In: params.ParameterInQuery, Style: pointer.From(style.SerializationStyleDeepObject)},
			value:     color{R: 100, G: 200, B: 150},
			expected:  "color[R]=100&color[G]=200&color[B]=150",
		},
		{
			name: "body deep form",
			parameter: params.Parameter{
				Name:       "value",
				In:         params.ParameterInBody,
				Style:      pointer.From(style.SerializationStyleDeepForm),
				DeepFields: []string{"y"},
			},
			value:    body{X: 36, Y: inner{A: 12, B: "#hello"}},
			expected: "x=36&y[a]=12&y[b]=%23hello",
		},
		{
			name:      "cookie form",
			parameter: params.Parameter{Name: "session", In: params.ParameterInCookie},
			value:     "abc",
			expected:  "session=abc",
		},
		{
			name:      "query normalized",
			parameter: params.Parameter{Name: "q", In: params.ParameterInQuery, Normalize: true},
			value:     "cafe\u0301",
			expected:  "q=caf%C3%A9",
		},
		{
			name:      "query not normalized",
			parameter: params.Parameter{Name: "q", In: params.ParameterInQuery},
			value:     "cafe\u0301",
			expected:  "q=cafe%CC%81",
		},
		{
			name:      "path normalized",
			parameter: params.Parameter{Name: "id", In: params.ParameterInPath, Normalize: true},
			value:     []string{"e\u0301", "a"},
			expected:  "%C3%A9,a",
		},
		{
			name:      "query infinity",
			parameter: params.Parameter{Name: "q", In: params.ParameterInQuery},
			value:     math.Inf(-1),
			expected:  "q=-inf",
		},
		{
			name:      "simple without name",
			parameter: params.Parameter{In: params.ParameterInPath},
			value:     5,
			expected:  "5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			actual, err := tt.parameter.Encode(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestParameter_Encode_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		parameter *params.Parameter
		value     any
		expected  error
	}{
		{name: "nil parameter", parameter: nil, value: 1, expected: params.ErrMissingName},
		{name: "missing name", parameter: &params.Parameter{In: params.ParameterInQuery}, value: 1, expected: params.ErrMissingName},
		{name: "unknown location", parameter: &params.Parameter{Name: "a", In: "matrix"}, value: 1, expected: params.ErrUnknownLocation},
		{
			name:      "style without encoder",
			parameter: &params.Parameter{Name: "a", In: params.ParameterInPath, Style: pointer.From(style.SerializationStyleMatrix)},
			value:     1,
			expected:  params.ErrUnsupportedStyle,
		},
		{
			name:      "deep object in header",
			parameter: &params.Parameter{Name: "a", In: params.ParameterInHeader, Style: pointer.From(style.SerializationStyleDeepObject)},
			value:     1,
			expected:  params.ErrUnsupportedStyle,
		},
		{
			name:      "deep form in path",
			parameter: &params.Parameter{Name: "a", In: params.ParameterInPath, Style: pointer.From(style.SerializationStyleDeepForm)},
			value:     1,
			expected:  params.ErrUnsupportedStyle,
		},
		{
			name:      "encoder error",
			parameter: &params.Parameter{Name: "a", In: params.ParameterInQuery},
			value:     true,
			expected:  style.ErrUnsupportedValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.parameter.Encode(tt.value)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestSet_Success(t *testing.T) {
	t.Parallel()
	set, err := params.NewSet(
		&params.Parameter{Name: "limit", In: params.ParameterInQuery},
		&params.Parameter{Name: "id", In: params.ParameterInPath},
		&params.Parameter{Name: "id", In: params.ParameterInQuery},
		&params.Parameter{Name: "unused", In: params.ParameterInQuery},
	)
	require.NoError(t, err)
	assert.Equal(t, 4, set.Len())

	p, ok := set.Get("id", params.ParameterInPath)
	require.True(t, ok)
	assert.Equal(t, style.SerializationStyleSimple, p.GetStyle())

	_, ok = set.Get("id", params.ParameterInCookie)
	assert.False(t, ok)

	values := map[string]any{"limit": 10, "id": 3}
	bindings := set.Bind(func(name string) (any, bool) {
		v, ok := values[name]
		return v, ok
	})
	require.Len(t, bindings, 3)
	assert.Equal(t, params.ParameterInPath, bindings[0].Parameter.In)
	assert.Equal(t, "limit", bindings[1].Parameter.Name)
	assert.Equal(t, "id", bindings[2].Parameter.Name)
	assert.Equal(t, params.ParameterInQuery, bindings[2].Parameter.In)

	assert.Equal(t, []params.Key{{Name: "unused", In: params.ParameterInQuery}}, set.Unbound(bindings))
	assert.Len(t, set.Unbound(nil), 4)
	assert.Equal(t, 4, set.Len())

	var empty *params.Set
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Unbound(bindings))
}

func TestSet_Error(t *testing.T) {
	t.Parallel()
	_, err := params.NewSet(
		&params.Parameter{Name: "a", In: params.ParameterInQuery},
		&params.Parameter{Name: "a", In: params.ParameterInQuery},
	)
	require.ErrorIs(t, err, params.ErrDuplicateParameter)

	_, err = params.NewSet(&params.Parameter{In: params.ParameterInBody})
	require.ErrorIs(t, err, params.ErrMissingName)
}

func TestEncodeAll_Success(t *testing.T) {
	t.Parallel()
	bindings := []params.Binding{
		{Parameter: &params.Parameter{Name: "value", In: params.ParameterInQuery}, Value: inner{A: 12, B: "#hello"}},
		{Parameter: &params.Parameter{Name: "empty", In: params.ParameterInQuery, Style: pointer.From(style.SerializationStyleSimple)}, Value: ""},
		{Parameter: &params.Parameter{Name: "limit", In: params.ParameterInQuery}, Value: 10},
		{Parameter: &params.Parameter{Name: "color", In: params.ParameterInQuery, Style: pointer.From(style.SerializationStyleDeepObject)}, Value: color{R: 1, G: 2, B: 3}},
	}

	actual, err := params.EncodeAll(t.Context(), bindings, params.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	assert.Equal(t, "a=12&b=%23hello&limit=10&color[R]=1&color[G]=2&color[B]=3", actual)

	actual, err = params.EncodeAll(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, actual)
}

func TestEncodeAll_Error(t *testing.T) {
	t.Parallel()
	bindings := []params.Binding{
		{Parameter: &params.Parameter{Name: "ok", In: params.ParameterInQuery}, Value: 1},
		{Parameter: &params.Parameter{Name: "flag", In: params.ParameterInQuery}, Value: true},
	}

	_, err := params.EncodeAll(t.Context(), bindings)
	require.ErrorIs(t, err, style.ErrUnsupportedValue)
	assert.Contains(t, err.Error(), `"flag"`)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err = params.EncodeAll(ctx, bindings[:1])
	require.ErrorIs(t, err, context.Canceled)
}
