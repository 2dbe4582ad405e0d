package rpc

import (
	"github.com/thesixers/vibe/util"
)

type RawMessage = util.RawMessage

func JSONDecode(data []byte, v interface{}) error { return util.Unmarshal(data, v) }

func JSONEncode(v interface{}) ([]byte, error) { return util.Marshal(v) }
