// Package siginfo calls a function each time the process gets SIGINFO (^T on BSD and macOS terminals).
// Long running commands use it to report progress on demand.
package siginfo

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SIGINFO isn't part of the stdlib, but it's 29 on most systems
const SIGINFO = syscall.Signal(29)

// SetHandler calls f on every SIGINFO until the returned stop function is called.
// f runs on its own goroutine. stop waits for a running f to return and may be called more than once.
func SetHandler(f func()) (stop func()) {
	return setHandler(f, SIGINFO)
}

func setHandler(f func(), sigs ...os.Signal) func() {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, sigs...)

	go func() {
		defer close(done)
		for range ch {
			f()
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(ch)
			<-done
		})
	}
}
