package app

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"office97/internal/logger"
	"office97/internal/shutdown"
)

type stopCounter struct{ stops int }

func (s *stopCounter) Stop() { s.stops++ }

type closeCounter struct {
	closes int
	err    error
}

func (c *closeCounter) Close() error {
	c.closes++
	return c.err
}

func TestLifecycleShutdownOnce(t *testing.T) {
	orch := &stopCounter{}
	store := &closeCounter{err: errors.New("disk gone")}
	l := NewLifecycle(orch, store, logger.NoOpLogger{})

	l.Shutdown()
	l.Shutdown()

	assert.Equal(t, 1, orch.stops)
	assert.Equal(t, 1, store.closes)
}

func TestLifecycleWithoutStore(t *testing.T) {
	orch := &stopCounter{}
	NewLifecycle(orch, nil, logger.NoOpLogger{}).Shutdown()
	assert.Equal(t, 1, orch.stops)
}

func TestSignalShutdownLeavesTeardownToRunLoop(t *testing.T) {
	orch := &stopCounter{}
	store := &closeCounter{}
	a := &Application{
		fyneApp:   test.NewTempApp(t),
		lifecycle: NewLifecycle(orch, store, logger.NoOpLogger{}),
		shutdown:  shutdown.NewManager(nil),
		logger:    logger.NoOpLogger{},
	}
	a.registerShutdown()

	// A termination signal only quits the UI.
	a.shutdown.Shutdown()
	assert.Zero(t, orch.stops)
	assert.Zero(t, store.closes)

	a.finish()
	assert.Equal(t, 1, orch.stops)
	assert.Equal(t, 1, store.closes)
}
