package domain

// EventType names a lifecycle event pushed to the rendering layer.
type EventType string

const (
	// EventToastShown fires when a toast enters the container.
	EventToastShown EventType = "toast.shown"
	// EventToastHiding fires when the exit transition starts.
	EventToastHiding EventType = "toast.hiding"
	// EventToastRemoved fires when the toast leaves the container.
	EventToastRemoved EventType = "toast.removed"
	// EventPaginationResized fires when a session's page group size changed.
	EventPaginationResized EventType = "pagination.resized"
)

// Event is what the SSE stream carries. Exactly one of Toast or
// PageGroupSize is set, depending on Type.
type Event struct {
	Type          EventType `json:"type"`
	Toast         *Toast    `json:"toast,omitempty"`
	PageGroupSize int       `json:"page_group_size,omitempty"`
}
