package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContainerID is the stable identifier of the singleton toast container,
// so stylesheets and client code can target it.
const ContainerID = "arda-toast-container"

// Severity classifies a toast and determines its icon and style class.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Normalize maps unknown severities to info.
func (s Severity) Normalize() Severity {
	switch s {
	case SeveritySuccess, SeverityError, SeverityWarning:
		return s
	default:
		return SeverityInfo
	}
}

// Icon returns the icon name rendered alongside the message.
func (s Severity) Icon() string {
	switch s {
	case SeveritySuccess:
		return "check-circle"
	case SeverityError:
		return "times-circle"
	case SeverityWarning:
		return "exclamation-triangle"
	default:
		return "info-circle"
	}
}

// StyleClass returns the CSS class applied to the toast element.
func (s Severity) StyleClass() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// ToastState is the lifecycle state of a displayed toast.
// Transitions: visible → hiding → removed. Terminal state: removed.
type ToastState string

const (
	// StateVisible means the toast is displayed in the container.
	StateVisible ToastState = "visible"
	// StateHiding means the exit transition has started; the toast is still
	// in the container until the transition delay elapses.
	StateHiding ToastState = "hiding"
	// StateRemoved means the toast has left the container for good.
	StateRemoved ToastState = "removed"
)

// Toast is a single displayed notification. The rendering layer draws it
// from this state; the entity itself holds no UI handles.
type Toast struct {
	ID         uuid.UUID  `json:"id"`
	Message    string     `json:"message"`
	Severity   Severity   `json:"severity"`
	Icon       string     `json:"icon"`
	StyleClass string     `json:"style_class"`
	DurationMs int64      `json:"duration_ms"`
	State      ToastState `json:"state"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ToastCommand is the pre-display DTO produced by event handlers and the
// direct command topic. Duration <= 0 means "use the configured default".
type ToastCommand struct {
	Message  string
	Severity Severity
	Duration time.Duration
}
