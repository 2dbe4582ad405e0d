package rpc

import (
	"errors"
	"fmt"
	"net/http"
)

const maxRequestContentLength = 1 << 20 * 5

func decodeArgs(raw RawMessage) (args []interface{}, err error) {
	if len(raw) == 0 {
		return
	}
	if err = JSONDecode(raw, &args); err != nil {
		return nil, errors.New("non-array args")
	}
	return
}

// firstString returns the first positional argument when it is a string.
func firstString(args []interface{}) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	s, ok := args[0].(string)
	return s, ok
}

func getValidateRequestStatus(r *http.Request) (int, error) {
	if r.Method == http.MethodOptions {
		return 0, nil
	}
	if r.Method != http.MethodPost {
		return http.StatusMethodNotAllowed, errors.New("method isn't allowed")
	}
	if r.ContentLength > maxRequestContentLength {
		err := fmt.Errorf("content length too large (%d>%d)", r.ContentLength, maxRequestContentLength)
		return http.StatusRequestEntityTooLarge, err
	}
	return 0, nil
}
