package value_test

import (
	"testing"
	"time"

	"github.com/speakeasy-api/querystyle/sequencedmap"
	"github.com/speakeasy-api/querystyle/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type base struct {
	ID int `json:"id"`
}

type item struct {
	base
	Name   string      `json:"name"`
	Skip   string      `json:"-"`
	Note   string      `json:"note,omitempty"`
	Ptr    *int        `json:"ptr"`
	Extra  value.Value `json:"extra,omitempty"`
	Plain  bool
	hidden int
}

type shadow struct {
	base
	ID string `json:"id"`
}

type color struct {
	R uint8 `json:"R"`
	G uint8 `json:"G"`
	B uint8 `json:"B"`
}

func TestOf_Success(t *testing.T) {
	t.Parallel()
	seven := 7
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "nil", input: nil, expected: "none"},
		{name: "bool", input: true, expected: "bool(true)"},
		{name: "int8", input: int8(-3), expected: "int(-3)"},
		{name: "uint64", input: uint64(18446744073709551615), expected: "int(18446744073709551615)"},
		{name: "float32", input: float32(0.5), expected: "f32(0.5)"},
		{name: "float64", input: 0.25, expected: "f64(0.25)"},
		{name: "string", input: "blue", expected: "str(blue)"},
		{name: "pointer", input: &seven, expected: "int(7)"},
		{name: "nil pointer", input: (*int)(nil), expected: "none"},
		{name: "nil slice", input: []string(nil), expected: "none"},
		{name: "byte slice", input: []byte("ab"), expected: "bytes(ab)"},
		{name: "slice", input: []string{"blue", "black"}, expected: "seq{str(blue),str(black)}"},
		{name: "array", input: [2]int{5, 6}, expected: "tuple{int(5),int(6)}"},
		{name: "empty slice", input: []int{}, expected: "seq{}"},
		{
			name:     "map sorted by key",
			input:    map[string]int{"R": 100, "G": 200, "B": 150},
			expected: "map{str(B):int(150),str(G):int(200),str(R):int(100)}",
		},
		{name: "int keyed map", input: map[int]string{10: "b", 2: "a"}, expected: "map{int(2):str(a),int(10):str(b)}"},
		{name: "nil map", input: map[string]int(nil), expected: "none"},
		{
			name: "ordered map",
			input: sequencedmap.New(
				sequencedmap.NewElem("b", 1),
				sequencedmap.NewElem("a", 2),
			),
			expected: "map{str(b):int(1),str(a):int(2)}",
		},
		{name: "struct", input: color{R: 100, G: 200, B: 150}, expected: "struct{R:int(100),G:int(200),B:int(150)}"},
		{
			name:     "struct tags and embedding",
			input:    item{base: base{ID: 1}, Name: "x", Skip: "y", hidden: 1},
			expected: "struct{id:int(1),name:str(x),ptr:none,Plain:bool(false)}",
		},
		{
			name:     "struct with value field",
			input:    &item{Note: "n", Ptr: &seven, Extra: value.Some(value.Int(2))},
			expected: "struct{id:int(0),name:str(),note:str(n),ptr:int(7),extra:some(int(2)),Plain:bool(false)}",
		},
		{name: "outer field shadows embedded", input: shadow{base: base{ID: 1}, ID: "x"}, expected: "struct{id:str(x)}"},
		{name: "empty struct", input: struct{}{}, expected: "struct{}"},
		{name: "text marshaler", input: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), expected: "str(2024-01-02T03:04:05Z)"},
		{name: "value passes through", input: value.Unit(), expected: "unit"},
		{name: "interface slice", input: []any{1, "a", nil}, expected: "seq{int(1),str(a),none}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := trace(value.Of(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestOf_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input any
	}{
		{name: "channel", input: make(chan int)},
		{name: "function", input: func() {}},
		{name: "complex", input: complex(1, 2)},
		{name: "nested channel", input: []any{make(chan int)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := trace(value.Of(tt.input))
			require.ErrorIs(t, err, value.ErrSerialization)
		})
	}
}
