package core

import (
	"context"
)

// ToChan runs produce on a new goroutine and delivers its single value on
// the returned channel, which is closed afterwards. The channel is buffered so
// the goroutine never blocks on an abandoned receiver.
func ToChan[T any](produce func() T) <-chan T {
	out := make(chan T, 1)

	go func() {
		defer close(out)
		out <- produce()
	}()

	return out
}

// FromChanFirstOrDefault waits for the first value on out. It returns
// defaultV and false when out is closed empty or ctx is done first. A value
// already waiting on out wins over a done ctx.
func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) (T, bool) {
	select {
	case v, ok := <-out:
		return received(v, ok, defaultV)
	default:
	}

	select {
	case v, ok := <-out:
		return received(v, ok, defaultV)
	case <-ctx.Done():
		return defaultV, false
	}
}

func received[T any](v T, ok bool, defaultV T) (T, bool) {
	if !ok {
		return defaultV, false
	}
	return v, true
}
