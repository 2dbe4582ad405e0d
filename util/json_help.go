package util

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

type Encoder = json.Encoder

type RawMessage = json.RawMessage

func GJson(data []byte) gjson.Result { return gjson.ParseBytes(data) }

// JsMarshal ...
func JsMarshal(val interface{}) (bts []byte) {
	bts, _ = Marshal(val)
	return
}

func Marshal(v interface{}) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	encoder := NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func NewEncoder(w io.Writer) *Encoder {
	return json.NewEncoder(w)
}

func SetJson(data []byte, path string, val interface{}) []byte {
	bts, _ := sjson.SetBytes(data, path, val)
	return bts
}

func Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// UnmarshalFromString ...
func UnmarshalFromString(data string, v interface{}) error {
	return Unmarshal([]byte(data), v)
}
