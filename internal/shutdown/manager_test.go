package shutdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsInReverseOrderOnce(t *testing.T) {
	m := NewManager(nil)
	var order []string
	m.Register("history", Func(func() { order = append(order, "history") }))
	m.Register("ui", Func(func() { order = append(order, "ui") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"ui", "history"}, order)
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel still open")
	}
}

func TestShutdownSkipsHungComponent(t *testing.T) {
	m := NewManager(nil)
	m.timeout = 20 * time.Millisecond

	block := make(chan struct{})
	defer close(block)
	reached := false
	m.Register("after", Func(func() { reached = true }))
	m.Register("hung", Func(func() { <-block }))

	start := time.Now()
	m.Shutdown()
	assert.True(t, reached)
	assert.Less(t, time.Since(start), time.Second)
}

func TestListenStopsWithShutdown(t *testing.T) {
	m := NewManager(nil)
	m.Listen()
	m.Shutdown()
	<-m.Done()
}
