// Package fastjson renders dynamic value trees into compact JSON text.
//
// The serializer never fails: non-finite numbers, unrepresentable kinds and
// over-deep containers all come out as the literal null, so the output is
// always a syntactically valid JSON document.
package fastjson

import (
	"strconv"
)

const initialBufferSize = 4096

// Buffer is a grow-on-demand byte buffer. The committed region is [0, pos).
type Buffer struct {
	buf []byte
	pos int
}

func NewBuffer() *Buffer {
	return &Buffer{buf: make([]byte, initialBufferSize)}
}

func (b *Buffer) AppendByte(c byte) {
	b.ensure(1)
	b.buf[b.pos] = c
	b.pos++
}

func (b *Buffer) AppendBytes(p []byte) {
	b.ensure(len(p))
	copy(b.buf[b.pos:], p)
	b.pos += len(p)
}

// AppendFloat formats a finite double with %.15g semantics: up to 15
// significant digits, trailing zeros removed.
func (b *Buffer) AppendFloat(v float64) {
	var tmp [32]byte
	b.AppendBytes(strconv.AppendFloat(tmp[:0], v, 'g', 15, 64))
}

// AppendInt formats a signed integer in base 10.
func (b *Buffer) AppendInt(v int64) {
	var tmp [20]byte
	b.AppendBytes(strconv.AppendInt(tmp[:0], v, 10))
}

func (b *Buffer) AppendString(s string) {
	b.ensure(len(s))
	copy(b.buf[b.pos:], s)
	b.pos += len(s)
}

// Bytes returns the committed prefix. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte { return b.buf[:b.pos] }

func (b *Buffer) Len() int { return b.pos }

func (b *Buffer) Reset() { b.pos = 0 }

func (b *Buffer) String() string { return string(b.buf[:b.pos]) }

func (b *Buffer) ensure(needed int) {
	if b.pos+needed <= len(b.buf) {
		return
	}
	grown := make([]byte, (b.pos+needed)*2)
	copy(grown, b.buf[:b.pos])
	b.buf = grown
}
