package application

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"vn.io.arda/toast/internal/domain"
)

// DefaultDisplayDuration is how long a toast stays visible unless the
// caller asks for something else.
const DefaultDisplayDuration = 1500 * time.Millisecond

// DefaultTransitionDelay is the fixed exit-transition window between the
// hiding and removed states.
const DefaultTransitionDelay = 350 * time.Millisecond

// Broadcaster is the port for pushing lifecycle events to connected
// rendering clients. Implementation lives in transport/http/sse_hub.go.
type Broadcaster interface {
	Broadcast(event domain.Event)
}

// Config tunes the Manager. Zero values fall back to the defaults above.
type Config struct {
	DisplayDuration time.Duration
	TransitionDelay time.Duration
}

// Manager owns the toast container and the de-dup gate. The host
// application constructs exactly one and injects it wherever toasts are
// triggered; all mutation goes through its methods.
//
// Timers are never cancelled: whichever of {duration timer, user dismissal}
// fires first performs the hide transition, the loser hits the state guard
// and becomes a no-op.
type Manager struct {
	hub Broadcaster

	displayDuration time.Duration
	transitionDelay time.Duration

	mu sync.Mutex
	// container holds toasts in arrival order, newest last.
	container   []*domain.Toast
	lastMessage string
}

// New creates the Manager. hub may be nil (headless use, e.g. tests that
// only inspect Snapshot).
func New(hub Broadcaster, cfg Config) *Manager {
	if cfg.DisplayDuration <= 0 {
		cfg.DisplayDuration = DefaultDisplayDuration
	}
	if cfg.TransitionDelay <= 0 {
		cfg.TransitionDelay = DefaultTransitionDelay
	}
	return &Manager{
		hub:             hub,
		displayDuration: cfg.DisplayDuration,
		transitionDelay: cfg.TransitionDelay,
	}
}

// Notify displays a toast. An empty message, or one identical to the most
// recently accepted message, is silently dropped. duration <= 0 uses the
// configured default. Never blocks and never fails.
func (m *Manager) Notify(message string, severity domain.Severity, duration time.Duration) {
	if message == "" {
		return
	}
	if duration <= 0 {
		duration = m.displayDuration
	}

	m.mu.Lock()
	if message == m.lastMessage {
		m.mu.Unlock()
		log.Debug().Str("message", message).Msg("duplicate toast suppressed")
		return
	}
	m.lastMessage = message

	severity = severity.Normalize()
	t := &domain.Toast{
		ID:         uuid.New(),
		Message:    message,
		Severity:   severity,
		Icon:       severity.Icon(),
		StyleClass: severity.StyleClass(),
		DurationMs: duration.Milliseconds(),
		State:      domain.StateVisible,
		CreatedAt:  time.Now(),
	}
	m.container = append(m.container, t)
	cp := *t
	m.mu.Unlock()

	m.broadcast(domain.Event{Type: domain.EventToastShown, Toast: &cp})

	log.Debug().
		Str("id", t.ID.String()).
		Str("severity", string(severity)).
		Dur("duration", duration).
		Msg("toast shown")

	id := t.ID
	time.AfterFunc(duration, func() { m.hide(id) })
}

// Dismiss is the dismiss affordance: it starts the hide transition for the
// given toast. Unknown IDs and toasts already hiding or removed are safe
// no-ops; no other toast is ever affected.
func (m *Manager) Dismiss(id uuid.UUID) {
	m.hide(id)
}

// Snapshot returns a copy of the container in arrival order (visible and
// hiding toasts).
func (m *Manager) Snapshot() []domain.Toast {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Toast, len(m.container))
	for i, t := range m.container {
		out[i] = *t
	}
	return out
}

// hide moves a toast from visible to hiding, resets the de-dup gate, and
// schedules the final removal. Idempotent: only the visible→hiding edge
// does anything.
func (m *Manager) hide(id uuid.UUID) {
	m.mu.Lock()
	t := m.find(id)
	if t == nil || t.State != domain.StateVisible {
		m.mu.Unlock()
		return
	}
	t.State = domain.StateHiding
	// Gate resets as soon as any toast starts hiding, so the same message
	// may reappear while its previous instance is still fading out.
	m.lastMessage = ""
	cp := *t
	m.mu.Unlock()

	m.broadcast(domain.Event{Type: domain.EventToastHiding, Toast: &cp})

	time.AfterFunc(m.transitionDelay, func() { m.remove(id) })
}

// remove drops a hiding toast from the container permanently.
func (m *Manager) remove(id uuid.UUID) {
	m.mu.Lock()
	t := m.find(id)
	if t == nil || t.State != domain.StateHiding {
		m.mu.Unlock()
		return
	}
	t.State = domain.StateRemoved
	for i, c := range m.container {
		if c == t {
			m.container = append(m.container[:i], m.container[i+1:]...)
			break
		}
	}
	cp := *t
	m.mu.Unlock()

	m.broadcast(domain.Event{Type: domain.EventToastRemoved, Toast: &cp})

	log.Debug().Str("id", id.String()).Msg("toast removed")
}

// find returns the container entry with the given ID, or nil.
// Caller holds m.mu.
func (m *Manager) find(id uuid.UUID) *domain.Toast {
	for _, t := range m.container {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (m *Manager) broadcast(ev domain.Event) {
	if m.hub == nil {
		return
	}
	m.hub.Broadcast(ev)
}
