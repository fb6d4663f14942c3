package app

import (
	"qr-kiosk/internal/logger"
	"qr-kiosk/internal/shutdown"
)

// Lifecycle tracks what must be stopped on process exit. Screen changes never stop
// anything registered here.
type Lifecycle struct {
	manager    *shutdown.Manager
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{
		manager: shutdown.NewManager(log),
		logger:  log,
	}
}

func (l *Lifecycle) Register(component shutdown.Shutdownable) {
	l.manager.Register(component)
}

func (l *Lifecycle) Listen(onSignal func()) {
	l.manager.Listen(onSignal)
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
	l.manager.Shutdown()
}
