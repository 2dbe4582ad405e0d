package rpc

import (
	"net/http"
	"time"

	"github.com/thesixers/vibe/util"
)

type Handler func(c Context)

// Method handles one registered call. The returned value is encoded as the
// result; a returned error (ItfRPCError or plain) becomes the error member.
type Method func(c Context, params RawMessage) (interface{}, error)

type Server interface {
	Handler(c Context)
	Logger() util.ItfLogger
	Methods() []string
	Register(name string, m Method)
	ServeHTTP(writer http.ResponseWriter, request *http.Request)
	Use(handlers ...Handler)
}

type server struct {
	methods map[string]Method
	chain   []Handler
	logger  util.ItfLogger
}

// Handler runs the middleware chain and the method dispatch for one call.
func (s *server) Handler(c Context) {
	if ctx, ok := c.(*rpcContext); ok {
		ctx.server = s
	}
	c.AddHandler(s.handleReadBody())
	c.AddHandler(s.chain...)
	c.AddHandler(s.handleCall())
	c.Next()
}

func (s *server) Logger() util.ItfLogger { return s.logger }

func (s *server) Methods() []string {
	names := make([]string, 0, len(s.methods))
	for name := range s.methods {
		names = append(names, name)
	}
	return names
}

func (s *server) Register(name string, m Method) { s.methods[name] = m }

func (s *server) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	s.Handler(NewContext(request.Context(), writer, request))
}

func (s *server) Use(handlers ...Handler) { s.chain = append(s.chain, handlers...) }

func (s *server) handleCall() Handler {
	return func(c Context) {
		defer c.Next()
		if c.Wrote() {
			return
		}
		method := s.methods[c.Msg().Method]
		if method == nil {
			c.WriteResponse(NewError(ErrNoMethod, "wrong method"))
			return
		}
		ret, err := method(c, c.Msg().Params)
		if err != nil {
			c.WriteResponse(err)
			return
		}
		data, e := JSONEncode(ret)
		if e != nil {
			c.WriteResponse(NewError(ErrInternal, e.Error()))
			return
		}
		c.WriteResponse(RawMessage(data))
	}
}

func (s *server) handleReadBody() Handler {
	return func(c Context) {
		defer c.Next()
		ctx, ok := c.(*rpcContext)
		if !ok {
			return
		}
		if e := ctx.ReadBody(); e != nil {
			return
		}
		if c.Wrote() {
			return
		}
		c.SetValue(TimeBeginContextKey, time.Now())
	}
}

func NewServer(args ...interface{}) Server {
	s := &server{methods: make(map[string]Method)}
	for _, arg := range args {
		switch v := arg.(type) {
		case util.ItfLogger:
			s.logger = v
		}
	}
	if s.logger == nil {
		s.logger = util.AppLogger()
	}
	return s
}
