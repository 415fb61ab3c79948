package app

import (
	"io"

	"office97/internal/logger"
)

type stoppable interface {
	Stop()
}

// Lifecycle releases the shell's resources once, in reverse dependency
// order.
type Lifecycle struct {
	orchestrator stoppable
	store        io.Closer
	logger       logger.Logger
	isShutdown   bool
}

func NewLifecycle(orch stoppable, store io.Closer, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		orchestrator: orch,
		store:        store,
		logger:       log,
	}
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.orchestrator != nil {
		l.orchestrator.Stop()
		l.logger.Debug("Lifecycle", "orchestrator stopped", nil)
	}

	if l.store != nil {
		if err := l.store.Close(); err != nil {
			l.logger.Error("Lifecycle", err, map[string]interface{}{
				"component": "history",
			})
		} else {
			l.logger.Debug("Lifecycle", "history store closed", nil)
		}
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
