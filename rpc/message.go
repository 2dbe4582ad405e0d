package rpc

const (
	ErrParse          ErrorCode = -32700
	ErrInvalidRequest ErrorCode = -32600
	ErrNoMethod       ErrorCode = -32601
	ErrBadParams      ErrorCode = -32602
	ErrInternal       ErrorCode = -32603
)

// Error ... Error codes
type Error struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *Error) Error() string { return e.Message }

func (e *Error) ErrorCode() int { return int(e.Code) }

func (e *Error) ErrorData() interface{} { return e.Data }

// ErrorCode ... Error codes
type ErrorCode int

type ItfRPCError interface {
	ErrorCode() int
	Error() string
	ErrorData() interface{}
}

type RPCMessage struct {
	ID      RawMessage `json:"id,omitempty"`
	Version string     `json:"jsonrpc,omitempty"`
	Method  string     `json:"method,omitempty"`
	Params  RawMessage `json:"params,omitempty"`
	Result  RawMessage `json:"result,omitempty"`
	Error   *Error     `json:"error,omitempty"`
}

func (r *RPCMessage) hasValidID() bool { return len(r.ID) > 0 && r.ID[0] != '{' && r.ID[0] != '[' }

// NewError ...
func NewError(code ErrorCode, msg string, data ...interface{}) *Error {
	ee := &Error{Code: code, Message: msg}
	if len(data) > 0 {
		ee.Data = data[0]
	}
	return ee
}
