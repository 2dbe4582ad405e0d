package fastjson

// escapeTable maps a byte to its short JSON escape, or "" when the byte needs
// no escape (or a \u00xx form).
var escapeTable = [256]string{
	'"':  `\"`,
	'\\': `\\`,
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
}

const lowerhex = "0123456789abcdef"

// appendQuoted writes s as a JSON string literal. Bytes are scanned for
// escape-worthy positions and the verbatim runs in between are flushed in
// single bulk copies. Bytes >= 0x80 pass through untouched; the input is
// assumed to be valid UTF-8 already.
func appendQuoted(b *Buffer, s string) {
	b.AppendByte('"')
	last := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		if i > last {
			b.AppendString(s[last:i])
		}
		if esc := escapeTable[c]; esc != "" {
			b.AppendString(esc)
		} else {
			b.AppendString(`\u00`)
			b.AppendByte(lowerhex[c>>4])
			b.AppendByte(lowerhex[c&0xf])
		}
		last = i + 1
	}
	if last < len(s) {
		b.AppendString(s[last:])
	}
	b.AppendByte('"')
}
