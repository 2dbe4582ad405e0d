package rpc

import (
	"github.com/thesixers/vibe/fastjson"
	"github.com/thesixers/vibe/urlparse"
	"github.com/thesixers/vibe/util"
)

// NewBridge wires the text-encoding method set onto a fresh server:
// stringify, parseUrl, parseQuery, decodeURI and version.
func NewBridge(args ...interface{}) Server {
	s := NewServer(args...)
	s.Use(Recover(s.Logger()), CallLog(s.Logger()))
	s.Register("stringify", methodStringify)
	s.Register("parseUrl", methodParseURL)
	s.Register("parseQuery", methodParseQuery)
	s.Register("decodeURI", methodDecodeURI)
	s.Register("version", methodVersion)
	return s
}

// methodDecodeURI percent-decodes its argument. A missing or non-string
// argument degrades to the empty string.
func methodDecodeURI(_ Context, params RawMessage) (interface{}, error) {
	args, err := decodeArgs(params)
	if err != nil {
		return nil, NewError(ErrBadParams, err.Error())
	}
	raw, ok := firstString(args)
	if !ok {
		return "", nil
	}
	return urlparse.DecodeURIComponent(raw), nil
}

// methodParseQuery decodes a query string, tolerating a leading '?'. A
// missing or non-string argument degrades to an empty mapping.
func methodParseQuery(_ Context, params RawMessage) (interface{}, error) {
	args, err := decodeArgs(params)
	if err != nil {
		return nil, NewError(ErrBadParams, err.Error())
	}
	raw, ok := firstString(args)
	if !ok {
		return map[string]string{}, nil
	}
	return urlparse.ParseQuery(raw), nil
}

// methodParseURL requires a string argument; anything else is a bad-params
// fault, the one entry point that signals a type error instead of degrading.
func methodParseURL(_ Context, params RawMessage) (interface{}, error) {
	args, err := decodeArgs(params)
	if err != nil {
		return nil, NewError(ErrBadParams, err.Error())
	}
	raw, ok := firstString(args)
	if !ok {
		return nil, NewError(ErrBadParams, "URL string expected")
	}
	return urlparse.Parse(raw), nil
}

// methodStringify renders its first argument as JSON text and returns that
// text as a string result. Called with no argument it returns the literal
// string "undefined".
func methodStringify(_ Context, params RawMessage) (interface{}, error) {
	args, err := decodeArgs(params)
	if err != nil {
		return nil, NewError(ErrBadParams, err.Error())
	}
	if len(args) == 0 {
		return "undefined", nil
	}
	return fastjson.Stringify(args[0]), nil
}

func methodVersion(_ Context, _ RawMessage) (interface{}, error) {
	return util.Version, nil
}
