package urlparse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeURIComponent(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"plain", "plain"},
		{"hello%20world", "hello world"},
		{"a+b", "a b"},
		{"%E2%9C%93", "\xe2\x9c\x93"},
		{"%41%42%43", "ABC"},
		{"%2b", "+"},
		{"%2B", "+"},
		{"100%25", "100%"},
		{"a%3Db%26c", "a=b&c"},
		{"caf%C3%A9", "café"},
		{"%D0%BF%D1%80%D0%B8", "при"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, DecodeURIComponent(c.in), "DecodeURIComponent(%q)", c.in)
	}
}

func TestDecodeURIComponent_MalformedEscapesPassThrough(t *testing.T) {
	cases := []struct{ in, want string }{
		{"%", "%"},
		{"%4", "%4"},
		{"%zz", "%zz"},
		{"%4g", "%4g"},
		{"%g4", "%g4"},
		{"100%", "100%"},
		{"%%41", "%A"},
		{"a%", "a%"},
		{"%1", "%1"},
		{"% 20", "% 20"},
		{"%-12", "%-12"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, DecodeURIComponent(c.in), "DecodeURIComponent(%q)", c.in)
	}
}

// percentEncode escapes every non-alphanumeric byte, the strictest encoder a
// caller could use.
func percentEncode(b []byte) string {
	const upperhex = "0123456789ABCDEF"
	out := make([]byte, 0, len(b)*3)
	for _, c := range b {
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			out = append(out, c)
			continue
		}
		out = append(out, '%', upperhex[c>>4], upperhex[c&15])
	}
	return string(out)
}

func TestDecodeURIComponent_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("hello world"),
		[]byte("a=b&c=d?e+f%g"),
		{0x00, 0x01, 0x7f, 0x80, 0xfe, 0xff},
		[]byte("✓ mixed 中文 bytes"),
	}
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	inputs = append(inputs, all)

	for _, in := range inputs {
		enc := percentEncode(in)
		require.Equal(t, string(in), DecodeURIComponent(enc), "round trip via %q", enc)
	}
}

func TestHexTable(t *testing.T) {
	for i := 0; i < 256; i++ {
		want := int8(-1)
		switch {
		case i >= '0' && i <= '9':
			want = int8(i - '0')
		case i >= 'a' && i <= 'f':
			want = int8(i - 'a' + 10)
		case i >= 'A' && i <= 'F':
			want = int8(i - 'A' + 10)
		}
		require.Equal(t, want, hexTable[i], fmt.Sprintf("hexTable[%#x]", i))
	}
}
