package shutdown

import (
	"context"
	"testing"
	"time"

	"qr-kiosk/internal/logger"
)

type recordingComponent struct {
	id       int
	order    *[]int
	deadline bool
}

func (r *recordingComponent) Shutdown(ctx context.Context) {
	_, r.deadline = ctx.Deadline()
	*r.order = append(*r.order, r.id)
}

type stuckComponent struct {
	released chan struct{}
}

func (s *stuckComponent) Shutdown(ctx context.Context) {
	<-ctx.Done()
	close(s.released)
}

func TestShutdown_ReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.Nop())

	var order []int
	components := []*recordingComponent{
		{id: 1, order: &order},
		{id: 2, order: &order},
		{id: 3, order: &order},
	}
	for _, c := range components {
		m.Register(c)
	}

	m.Shutdown()
	m.Shutdown()

	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("expected [3 2 1], got %v", order)
	}
	for _, c := range components {
		if !c.deadline {
			t.Errorf("component %d got a context without deadline", c.id)
		}
	}
}

func TestShutdown_StuckComponentIsCancelled(t *testing.T) {
	m := NewManager(logger.Nop())
	m.timeout = 20 * time.Millisecond

	stuck := &stuckComponent{released: make(chan struct{})}
	m.Register(stuck)

	finished := make(chan struct{})
	go func() {
		m.Shutdown()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not give up on a stuck component")
	}

	select {
	case <-stuck.released:
	case <-time.After(5 * time.Second):
		t.Error("the stuck component's context was never cancelled")
	}
}

func TestListen_StopsWithShutdown(t *testing.T) {
	m := NewManager(logger.Nop())

	called := make(chan struct{}, 1)
	m.Listen(func() { called <- struct{}{} })
	m.Shutdown()

	select {
	case <-called:
		t.Error("signal callback must not fire without a signal")
	default:
	}
}
