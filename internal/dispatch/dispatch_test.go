package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInline(t *testing.T) {
	ran := false
	Inline.Execute(func() { ran = true })
	assert.True(t, ran)
}

func TestExecutorFunc(t *testing.T) {
	var calls int
	exec := ExecutorFunc(func(task func()) {
		calls++
		task()
	})
	ran := false
	exec.Execute(func() { ran = true })
	assert.True(t, ran)
	assert.Equal(t, 1, calls)
}

func TestLoopRunsTasksOnRunGoroutine(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	var order []int
	for i := range 3 {
		wg.Go(func() {
			loop.Execute(func() { order = append(order, i) })
		})
	}
	wg.Wait()
	loop.Execute(cancel)

	err := loop.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.ElementsMatch(t, []int{0, 1, 2}, order)
}

func TestLoopPreservesQueueOrder(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())

	var got []string
	loop.Execute(func() { got = append(got, "a") })
	loop.Execute(func() {
		got = append(got, "b")
		loop.Execute(func() {
			got = append(got, "c")
			cancel()
		})
	})

	_ = loop.Run(ctx)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestLoopStopsWhenContextDone(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := loop.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
