package application_test

import (
	"sync"
	"testing"
	"time"

	"vn.io.arda/toast/internal/application"
	"vn.io.arda/toast/internal/domain"
)

// recordingHub captures broadcast events for verification.
type recordingHub struct {
	mu     sync.Mutex
	events []domain.Event
}

func (h *recordingHub) Broadcast(ev domain.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
}

func (h *recordingHub) byType(t domain.EventType) []domain.Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []domain.Event
	for _, ev := range h.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// fastConfig keeps lifecycle tests quick.
func fastConfig() application.Config {
	return application.Config{
		DisplayDuration: 40 * time.Millisecond,
		TransitionDelay: 20 * time.Millisecond,
	}
}

func TestNotify_DistinctMessagesStack(t *testing.T) {
	m := application.New(nil, application.Config{DisplayDuration: time.Minute})

	m.Notify("first", domain.SeverityInfo, 0)
	m.Notify("second", domain.SeverityInfo, 0)

	snap := m.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 visible toasts, got %d", len(snap))
	}
	if snap[0].Message != "first" || snap[1].Message != "second" {
		t.Fatalf("arrival order not preserved: %q, %q", snap[0].Message, snap[1].Message)
	}
}

func TestNotify_DuplicateSuppressed(t *testing.T) {
	m := application.New(nil, application.Config{DisplayDuration: time.Minute})

	m.Notify("saved", domain.SeveritySuccess, 0)
	m.Notify("saved", domain.SeveritySuccess, 0)

	if got := len(m.Snapshot()); got != 1 {
		t.Fatalf("expected 1 visible toast, got %d", got)
	}
}

func TestNotify_EmptyMessageIsNoOp(t *testing.T) {
	m := application.New(nil, application.Config{DisplayDuration: time.Minute})

	m.Notify("", domain.SeverityInfo, 0)
	if got := len(m.Snapshot()); got != 0 {
		t.Fatalf("expected no toasts, got %d", got)
	}

	// The empty call must not have touched the gate either.
	m.Notify("real", domain.SeverityInfo, 0)
	if got := len(m.Snapshot()); got != 1 {
		t.Fatalf("expected 1 toast after real message, got %d", got)
	}
}

func TestNotify_GateResetsWhenHidingStarts(t *testing.T) {
	m := application.New(nil, fastConfig())

	m.Notify("ping", domain.SeverityInfo, 80*time.Millisecond)

	// Before the first instance starts hiding, the duplicate is dropped.
	m.Notify("ping", domain.SeverityInfo, 80*time.Millisecond)
	if got := len(m.Snapshot()); got != 1 {
		t.Fatalf("expected duplicate to be suppressed, got %d toasts", got)
	}

	// Wait for the hide transition to begin, then the same message is
	// accepted again while the old instance is still fading.
	waitFor(t, func() bool {
		for _, toast := range m.Snapshot() {
			if toast.State == domain.StateHiding {
				return true
			}
		}
		return false
	})

	m.Notify("ping", domain.SeverityInfo, time.Minute)

	visible := 0
	for _, toast := range m.Snapshot() {
		if toast.State == domain.StateVisible {
			visible++
		}
	}
	if visible != 1 {
		t.Fatalf("expected a fresh visible toast after gate reset, got %d", visible)
	}
}

func TestDismiss_AfterExpiryIsSafe(t *testing.T) {
	hub := &recordingHub{}
	m := application.New(hub, fastConfig())

	m.Notify("going", domain.SeverityInfo, 20*time.Millisecond)
	m.Notify("staying", domain.SeverityInfo, time.Minute)

	shown := hub.byType(domain.EventToastShown)
	if len(shown) != 2 {
		t.Fatalf("expected 2 shown events, got %d", len(shown))
	}
	goingID := shown[0].Toast.ID

	// Let the first toast expire and fully remove itself.
	waitFor(t, func() bool {
		return len(hub.byType(domain.EventToastRemoved)) == 1
	})

	// Late dismissal of the removed toast: no panic, no effect on others.
	m.Dismiss(goingID)
	m.Dismiss(goingID)

	snap := m.Snapshot()
	if len(snap) != 1 || snap[0].Message != "staying" {
		t.Fatalf("late dismiss disturbed the container: %+v", snap)
	}
	if got := len(hub.byType(domain.EventToastHiding)); got != 1 {
		t.Fatalf("expected exactly 1 hiding event, got %d", got)
	}
}

func TestLifecycle_VisibleHidingRemoved(t *testing.T) {
	hub := &recordingHub{}
	m := application.New(hub, application.Config{TransitionDelay: 30 * time.Millisecond})

	m.Notify("Saved", domain.SeveritySuccess, 80*time.Millisecond)

	snap := m.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 toast, got %d", len(snap))
	}
	if snap[0].State != domain.StateVisible {
		t.Fatalf("expected visible state, got %s", snap[0].State)
	}
	if snap[0].StyleClass != "success" || snap[0].Icon != "check-circle" {
		t.Fatalf("unexpected styling: %s/%s", snap[0].StyleClass, snap[0].Icon)
	}
	if snap[0].Message != "Saved" {
		t.Fatalf("unexpected message %q", snap[0].Message)
	}

	waitFor(t, func() bool {
		return len(hub.byType(domain.EventToastHiding)) == 1
	})

	waitFor(t, func() bool {
		return len(hub.byType(domain.EventToastRemoved)) == 1
	})
	if got := len(m.Snapshot()); got != 0 {
		t.Fatalf("expected empty container after removal, got %d", got)
	}

	removed := hub.byType(domain.EventToastRemoved)[0]
	if removed.Toast.State != domain.StateRemoved {
		t.Fatalf("removed event carries state %s", removed.Toast.State)
	}
}

func TestDismiss_BeforeExpiry(t *testing.T) {
	hub := &recordingHub{}
	m := application.New(hub, application.Config{TransitionDelay: 20 * time.Millisecond})

	m.Notify("dismiss me", domain.SeverityWarning, time.Minute)
	id := m.Snapshot()[0].ID

	m.Dismiss(id)

	if got := len(hub.byType(domain.EventToastHiding)); got != 1 {
		t.Fatalf("expected 1 hiding event, got %d", got)
	}
	waitFor(t, func() bool {
		return len(hub.byType(domain.EventToastRemoved)) == 1
	})
}

func TestNotify_UnknownSeverityFallsBackToInfo(t *testing.T) {
	m := application.New(nil, application.Config{DisplayDuration: time.Minute})

	m.Notify("odd", domain.Severity("fatal"), 0)

	snap := m.Snapshot()
	if snap[0].Severity != domain.SeverityInfo {
		t.Fatalf("expected info severity, got %s", snap[0].Severity)
	}
	if snap[0].Icon != "info-circle" || snap[0].StyleClass != "info" {
		t.Fatalf("unexpected fallback styling: %s/%s", snap[0].Icon, snap[0].StyleClass)
	}
}

// waitFor polls cond for up to a second.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within 1s")
}
