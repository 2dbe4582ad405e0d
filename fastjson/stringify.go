package fastjson

import (
	"math"
	"sort"

	"github.com/spf13/cast"
)

// maxDepth bounds container recursion. A container entered past the bound
// serializes as null, which keeps cyclic values terminating.
const maxDepth = 10

// maxSafeInteger is 2^53-1, the edge of the contiguous integer range an
// IEEE-754 double represents exactly. Integers inside it emit without a
// fractional part or exponent.
const maxSafeInteger = 1<<53 - 1

// Stringify renders v as compact JSON text. It never fails; see the package
// comment for the null substitutions.
func Stringify(v interface{}) string {
	b := NewBuffer()
	appendValue(b, v, 0)
	return b.String()
}

// AppendStringify renders v into an existing buffer.
func AppendStringify(b *Buffer, v interface{}) {
	appendValue(b, v, 0)
}

func appendValue(b *Buffer, v interface{}, depth int) {
	switch val := v.(type) {
	case nil:
		b.AppendString("null")
	case Undefined, *Undefined:
		b.AppendString("null")
	case bool:
		if val {
			b.AppendString("true")
		} else {
			b.AppendString("false")
		}
	case string:
		appendQuoted(b, val)
	case []byte:
		appendQuoted(b, string(val))
	case float64:
		appendNumber(b, val)
	case float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		appendNumber(b, cast.ToFloat64(val))
	case []interface{}:
		appendArray(b, val, depth)
	case *Object:
		if val == nil {
			b.AppendString("null")
			return
		}
		appendObject(b, val, depth)
	case Object:
		appendObject(b, &val, depth)
	case map[string]interface{}:
		appendMap(b, val, depth)
	default:
		if tj, ok := v.(ToJSONer); ok {
			appendValue(b, tj.ToJSON(), depth)
			return
		}
		b.AppendString("null")
	}
}

func appendArray(b *Buffer, arr []interface{}, depth int) {
	if depth > maxDepth {
		b.AppendString("null")
		return
	}
	b.AppendByte('[')
	for i, el := range arr {
		if i > 0 {
			b.AppendByte(',')
		}
		appendValue(b, el, depth+1)
	}
	b.AppendByte(']')
}

func appendMap(b *Buffer, m map[string]interface{}, depth int) {
	if depth > maxDepth {
		b.AppendString("null")
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	b.AppendByte('{')
	first := true
	for _, k := range keys {
		val := m[k]
		if isUndefined(val) {
			continue
		}
		if !first {
			b.AppendByte(',')
		}
		first = false
		appendQuoted(b, k)
		b.AppendByte(':')
		appendValue(b, val, depth+1)
	}
	b.AppendByte('}')
}

func appendNumber(b *Buffer, num float64) {
	switch {
	case math.IsNaN(num) || math.IsInf(num, 0):
		b.AppendString("null")
	case num == math.Trunc(num) && num >= -maxSafeInteger && num <= maxSafeInteger:
		b.AppendInt(int64(num))
	default:
		b.AppendFloat(num)
	}
}

func appendObject(b *Buffer, obj *Object, depth int) {
	if obj.ToJSON != nil {
		// The replacement sits at the same position, so depth stays put.
		appendValue(b, obj.ToJSON(), depth)
		return
	}
	if depth > maxDepth {
		b.AppendString("null")
		return
	}
	b.AppendByte('{')
	first := true
	for _, m := range obj.Members {
		if isUndefined(m.Value) {
			continue
		}
		if !first {
			b.AppendByte(',')
		}
		first = false
		appendQuoted(b, m.Key)
		b.AppendByte(':')
		appendValue(b, m.Value, depth+1)
	}
	b.AppendByte('}')
}
