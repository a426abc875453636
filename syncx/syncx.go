// Package syncx bridges asynchronous units of work into synchronous
// call sites. The bridge is intentionally minimal: it offers a blocking
// wait and nothing else. There is no cancellation or timeout.
package syncx

// Future holds the eventual result of a unit of work started with Go.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn on its own goroutine and returns a Future for its result.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn()
	}()
	return f
}

// Wait blocks until the work has finished and returns its result. Wait
// may be called any number of times, from any goroutine, and always
// returns the same values.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// Done returns a channel closed when the work has finished. It lets a
// Future participate in a select without committing to the blocking
// Wait.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await runs fn on its own goroutine and immediately blocks for the
// result. It is the one-call form of Go followed by Wait.
func Await[T any](fn func() (T, error)) (T, error) {
	return Go(fn).Wait()
}
