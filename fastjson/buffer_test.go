package fastjson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_AppendForms(t *testing.T) {
	b := NewBuffer()
	b.AppendByte('[')
	b.AppendInt(-42)
	b.AppendByte(',')
	b.AppendFloat(2.5)
	b.AppendByte(',')
	b.AppendString("true")
	b.AppendByte(']')
	require.Equal(t, "[-42,2.5,true]", b.String())
	require.Equal(t, len("[-42,2.5,true]"), b.Len())
}

func TestBuffer_FloatTrimsTrailingZeros(t *testing.T) {
	cases := map[float64]string{
		2.5:     "2.5",
		-0.125:  "-0.125",
		1e21:    "1e+21",
		1e-7:    "1e-07",
		1.0 / 3: "0.333333333333333",
	}
	for in, want := range cases {
		b := NewBuffer()
		b.AppendFloat(in)
		require.Equal(t, want, b.String(), "AppendFloat(%v)", in)
	}
}

func TestBuffer_GrowsPastInitialCapacity(t *testing.T) {
	b := NewBuffer()
	chunk := strings.Repeat("x", 1000)
	for i := 0; i < 10; i++ {
		b.AppendString(chunk)
	}
	require.Equal(t, 10000, b.Len())
	require.Equal(t, strings.Repeat("x", 10000), b.String())
}

func TestBuffer_Reset(t *testing.T) {
	b := NewBuffer()
	b.AppendString("hello")
	b.Reset()
	require.Zero(t, b.Len())
	b.AppendString("world")
	require.Equal(t, "world", b.String())
}
