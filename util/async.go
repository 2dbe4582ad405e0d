package util

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

func ConcurrentRun(fn func(), num int) {
	if num <= 0 {
		num = 1
	}
	var w sync.WaitGroup
	w.Add(num)
	for i := 0; i < num; i++ {
		go func() {
			fn()
			w.Done()
		}()
	}
	w.Wait()
}

func WaitSignal() {
	notifier := make(chan os.Signal, 1)
	signal.Notify(notifier,
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	<-notifier
}
