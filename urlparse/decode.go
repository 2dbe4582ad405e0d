package urlparse

// DecodeURIComponent decodes %XX triplets and turns '+' into a space, the
// URL-form convention. The decode is permissive: a '%' not followed by two
// hex digits, or with fewer than two bytes left, passes through verbatim.
// The decoded bytes are returned as-is, with no UTF-8 validation.
func DecodeURIComponent(encoded string) string {
	out := make([]byte, 0, len(encoded))
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c == '%' && i+2 < len(encoded) {
			hi := hexTable[encoded[i+1]]
			lo := hexTable[encoded[i+2]]
			if hi >= 0 && lo >= 0 {
				out = append(out, byte(hi)<<4|byte(lo))
				i += 2
				continue
			}
		} else if c == '+' {
			out = append(out, ' ')
			continue
		}
		out = append(out, c)
	}
	return string(out)
}
