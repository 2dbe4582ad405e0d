package rpc

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/thesixers/vibe/util"
)

type StdLogger interface {
	Printf(format string, v ...interface{})
	Print(v ...interface{})
	Println(v ...interface{})
}

// CallLog tags each call with a short id and logs method and elapsed time.
func CallLog(logger util.ItfLogger) Handler {
	return func(c Context) {
		began := time.Now()
		if v, ok := c.GetValue(TimeBeginContextKey); ok {
			if t, ok2 := v.(time.Time); ok2 {
				began = t
			}
		}
		callID := util.UUIDShort()
		c.SetValue(CallIDContextKey, callID)
		c.Next()
		logger.Infof("call[%s] method=%s cost=%s", callID, c.Msg().Method, time.Since(began))
	}
}

func Recover(args ...interface{}) Handler {
	var logger StdLogger
	for _, arg := range args {
		switch _arg := arg.(type) {
		case StdLogger:
			logger = _arg
		}
	}
	if logger == nil {
		logger = log.Default()
	}

	return func(c Context) {
		defer func() {
			if err := recover(); err != nil {
				c.Abort()
				stack := make([]byte, 4<<10)
				n := runtime.Stack(stack, false)
				stack = stack[:n]
				logger.Printf("panic: %v\n%s", err, stack)
				c.WriteResponse(NewError(ErrInternal, fmt.Sprintf("panic: %v", err)))
			}
		}()
		c.Next()
	}
}
