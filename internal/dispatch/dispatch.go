// Package dispatch provides executors that decide where callbacks run.
package dispatch

import (
	"context"
	"sync"
)

// Executor runs a task on some execution context.
type Executor interface {
	Execute(task func())
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(task func())

// Execute implements Executor.
func (f ExecutorFunc) Execute(task func()) {
	f(task)
}

// Inline runs tasks immediately on the calling goroutine.
var Inline Executor = ExecutorFunc(func(task func()) { task() })

// Loop is a main-loop executor: tasks queued from any goroutine run one at a
// time on the goroutine that calls Run.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return new(Loop{wake: make(chan struct{}, 1)})
}

// Execute queues task. It never blocks.
func (l *Loop) Execute(task func()) {
	l.mu.Lock()
	l.pending = append(l.pending, task)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run drains queued tasks until ctx is done.
// Tasks queued before cancellation but not yet started are dropped.
func (l *Loop) Run(ctx context.Context) error {
	for {
		for _, task := range l.take() {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			task()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

func (l *Loop) take() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	tasks := l.pending
	l.pending = nil
	return tasks
}
