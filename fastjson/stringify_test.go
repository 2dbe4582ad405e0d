package fastjson

import (
	"math"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/thesixers/vibe/util"
)

type stamped struct{}

func (stamped) ToJSON() interface{} { return "X" }

func TestStringify_Primitives(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
	}{
		{nil, "null"},
		{Undefined{}, "null"},
		{true, "true"},
		{false, "false"},
		{"hi", `"hi"`},
		{[]byte("hi"), `"hi"`},
		{float64(0), "0"},
		{float64(-1), "-1"},
		{1, "1"},
		{int64(9007199254740991), "9007199254740991"},
		{int64(-9007199254740991), "-9007199254740991"},
		{2.5, "2.5"},
		{0.30000000000000004, "0.3"},
		{1e21, "1e+21"},
		{math.NaN(), "null"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Stringify(c.in), "Stringify(%v)", c.in)
	}
}

func TestStringify_SafeIntegersHaveNoFractionOrExponent(t *testing.T) {
	for _, n := range []float64{0, 1, -1, 42, 1 << 30, 9007199254740991, -9007199254740991} {
		out := Stringify(n)
		require.NotContains(t, out, ".")
		require.NotContains(t, out, "e")
	}
}

func TestStringify_StringEscapes(t *testing.T) {
	require.Equal(t, `"hi\n"`, Stringify("hi\n"))
	require.Equal(t, `"a\"b\\c"`, Stringify(`a"b\c`))
	require.Equal(t, `"\b\f\n\r\t"`, Stringify("\b\f\n\r\t"))
	// Control bytes without a short escape use lowercase \u00xx; DEL and
	// anything >= 0x20 pass through verbatim.
	require.Equal(t, "\"\\u0001\x7f\"", Stringify("\x01\x7f"))
	require.Equal(t, `"\u0000\u001f"`, Stringify("\x00\x1f"))
	// Bytes >= 0x80 are not validated or transformed.
	require.Equal(t, "\"\xe2\x9c\x93\"", Stringify("\xe2\x9c\x93"))
}

func TestStringify_StringsRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"line\nbreak\tand\rmore",
		"quote\" backslash\\ slash/",
		"mixed \x01\x02\x1f controls",
		"unicode ✓ ☺ 中文",
		strings.Repeat("long \"escaped\"\n", 512),
	}
	for _, in := range inputs {
		out := Stringify(in)
		require.True(t, gjson.Valid(out), "invalid JSON: %s", out)
		var back string
		require.NoError(t, json.Unmarshal([]byte(out), &back))
		require.Equal(t, in, back)
	}
}

func TestStringify_Arrays(t *testing.T) {
	require.Equal(t, "[]", Stringify([]interface{}{}))
	require.Equal(t, "[1,2.5,null,true]", Stringify([]interface{}{1, 2.5, math.NaN(), true}))
	// Undefined elements are kept as null, not skipped.
	require.Equal(t, "[null,1]", Stringify([]interface{}{Undefined{}, 1}))
	require.Equal(t, `[[1],[[2]]]`, Stringify([]interface{}{
		[]interface{}{1},
		[]interface{}{[]interface{}{2}},
	}))
}

func TestStringify_ObjectOrderAndUndefined(t *testing.T) {
	obj := NewObject(
		Member{Key: "a", Value: 1},
		Member{Key: "b", Value: "hi\n"},
		Member{Key: "c", Value: nil},
		Member{Key: "d", Value: Undefined{}},
	)
	require.Equal(t, `{"a":1,"b":"hi\n","c":null}`, Stringify(obj))

	// Member order is preserved as given, not sorted.
	ordered := NewObject(
		Member{Key: "z", Value: 1},
		Member{Key: "a", Value: 2},
	)
	require.Equal(t, `{"z":1,"a":2}`, Stringify(ordered))

	// Set keeps the position of an existing member.
	ordered.Set("z", 3)
	require.Equal(t, `{"z":3,"a":2}`, Stringify(ordered))
}

func TestStringify_MapUsesSortedKeys(t *testing.T) {
	m := map[string]interface{}{
		"b": 2,
		"a": 1,
		"c": Undefined{},
	}
	require.Equal(t, `{"a":1,"b":2}`, Stringify(m))
}

func TestStringify_ToJSONHook(t *testing.T) {
	obj := NewObject(Member{Key: "t", Value: &Object{ToJSON: func() interface{} { return "X" }}})
	require.Equal(t, `{"t":"X"}`, Stringify(obj))

	// Host types can substitute themselves through the interface hook.
	require.Equal(t, `["X"]`, Stringify([]interface{}{stamped{}}))
}

func TestStringify_DepthCap(t *testing.T) {
	arr := make([]interface{}, 1)
	arr[0] = arr
	out := Stringify(arr)
	want := strings.Repeat("[", 11) + "null" + strings.Repeat("]", 11)
	require.Equal(t, want, out)
	require.True(t, gjson.Valid(out))
}

func TestStringify_ToJSONCycleStillTerminates(t *testing.T) {
	// A toJSON hook that hands back a container holding the object itself:
	// the substitution keeps the depth, but the container re-enters the
	// depth-bumping path, so the walk still bottoms out.
	var obj *Object
	obj = &Object{ToJSON: func() interface{} { return []interface{}{obj} }}
	out := Stringify(obj)
	require.True(t, gjson.Valid(out))
	require.Equal(t, strings.Repeat("[", 11)+"null"+strings.Repeat("]", 11), out)
}

func TestStringify_UnrepresentableKinds(t *testing.T) {
	require.Equal(t, "null", Stringify(struct{ X int }{X: 1}))
	require.Equal(t, "null", Stringify(make(chan int)))
	require.Equal(t, "null", Stringify(func() {}))
	require.Equal(t, `[null]`, Stringify([]interface{}{func() {}}))
}

func TestStringify_TypedNilObject(t *testing.T) {
	require.Equal(t, "null", Stringify((*Object)(nil)))
	require.Equal(t, `[null]`, Stringify([]interface{}{(*Object)(nil)}))
	require.Equal(t, `{"o":null}`, Stringify(NewObject(Member{Key: "o", Value: (*Object)(nil)})))
}

func TestStringify_ConcurrentUse(t *testing.T) {
	v := NewObject(
		Member{Key: "s", Value: "a\nb"},
		Member{Key: "n", Value: 1.5},
		Member{Key: "l", Value: []interface{}{1, 2, 3}},
	)
	want := Stringify(v)
	util.ConcurrentRun(func() {
		for i := 0; i < 200; i++ {
			require.Equal(t, want, Stringify(v))
		}
	}, 8)
}

func TestStringify_NestedMixed(t *testing.T) {
	v := NewObject(
		Member{Key: "list", Value: []interface{}{1, "two", nil, true}},
		Member{Key: "obj", Value: NewObject(Member{Key: "inner", Value: 2.25})},
	)
	out := Stringify(v)
	require.Equal(t, `{"list":[1,"two",null,true],"obj":{"inner":2.25}}`, out)
	require.EqualValues(t, 2.25, gjson.Get(out, "obj.inner").Float())
}
