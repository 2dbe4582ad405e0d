// Package urlparse splits URL-like strings into a raw pathname and a
// percent-decoded query mapping.
package urlparse

// hexTable maps an ASCII byte to its hex value, or -1 for non-hex bytes.
var hexTable = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = int8(c - '0')
	}
	for c := 'a'; c <= 'f'; c++ {
		t[c] = int8(c - 'a' + 10)
	}
	for c := 'A'; c <= 'F'; c++ {
		t[c] = int8(c - 'A' + 10)
	}
	return
}()
