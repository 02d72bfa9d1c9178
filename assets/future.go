package assets

import (
	"context"
	"fmt"
)

// LoadFunc loads a model. LoadModel bound to a name is the usual one.
type LoadFunc func(ctx context.Context) (*Model, error)

// Future is a model load running in the background. It resolves exactly once.
type Future struct {
	done  chan struct{}
	model *Model
	err   error
}

// LoadAsync starts load on its own goroutine.
func LoadAsync(ctx context.Context, load LoadFunc) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.model = nil
				f.err = Error.New("loader panic: %v", r)
			}
		}()

		f.model, f.err = load(ctx)
		if f.err == nil && (f.model == nil || f.model.Mesh == nil) {
			f.err = Error.New("loader returned no model")
		}
	}()
	return f
}

// Resolved returns an already-finished Future.
func Resolved(model *Model, err error) *Future {
	f := &Future{done: make(chan struct{}), model: model, err: err}
	close(f.done)
	return f
}

// Poll reports the result without blocking. done is false while the load is
// still running.
func (f *Future) Poll() (model *Model, done bool, err error) {
	select {
	case <-f.done:
		return f.model, true, f.err
	default:
		return nil, false, nil
	}
}

// Wait blocks until the load resolves or ctx is done.
func (f *Future) Wait(ctx context.Context) (*Model, error) {
	select {
	case <-f.done:
		return f.model, f.err
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for model: %w", ctx.Err())
	}
}

// Named returns a LoadFunc for the embedded model name.
func Named(name string) LoadFunc {
	return func(ctx context.Context) (*Model, error) {
		return LoadModel(ctx, name)
	}
}
