package http

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"vn.io.arda/toast/internal/application"
	"vn.io.arda/toast/internal/domain"
	"vn.io.arda/toast/internal/pagination"
)

// Handler holds all HTTP handler methods.
type Handler struct {
	manager *application.Manager
	hub     *Hub

	// sizers tracks one ResponsiveSizer per page session. The sizer has no
	// interaction with the Manager; it only feeds pagination signals back
	// to its own session.
	sizersMu sync.Mutex
	sizers   map[string]*pagination.Sizer
}

// NewHandler creates a new Handler.
func NewHandler(m *application.Manager, hub *Hub) *Handler {
	return &Handler{
		manager: m,
		hub:     hub,
		sizers:  make(map[string]*pagination.Sizer),
	}
}

// --- REST Handlers ---

type notifyRequest struct {
	Message    string `json:"message"`
	Severity   string `json:"severity"`
	DurationMs int    `json:"duration_ms"`
}

// PostToast POST /toasts — the notify call exposed to page code.
// Empty and duplicate messages are silently absorbed, so this always
// answers 202.
func (h *Handler) PostToast(c echo.Context) error {
	var req notifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	h.manager.Notify(
		req.Message,
		domain.Severity(req.Severity),
		time.Duration(req.DurationMs)*time.Millisecond,
	)
	return c.NoContent(http.StatusAccepted)
}

// ListToasts GET /toasts — current container render state.
func (h *Handler) ListToasts(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"container_id": domain.ContainerID,
		"toasts":       h.manager.Snapshot(),
	})
}

// DismissToast POST /toasts/:id/dismiss — the dismiss affordance.
// Unknown or already-gone IDs are a no-op, not an error.
func (h *Handler) DismissToast(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid toast id")
	}
	h.manager.Dismiss(id)
	return c.NoContent(http.StatusNoContent)
}

// --- Viewport Handler ---

type viewportRequest struct {
	Width int `json:"width"`
}

// Viewport PUT /viewport — viewport-resize notification for the session.
// When the page group size changes, a pagination.resized event is pushed to
// that session's SSE clients.
func (h *Handler) Viewport(c echo.Context) error {
	sessionID := mustSession(c)

	var req viewportRequest
	if err := c.Bind(&req); err != nil || req.Width <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid width")
	}

	s := h.sizerFor(sessionID, req.Width)
	s.Resize(req.Width)

	return c.JSON(http.StatusOK, map[string]int{"page_group_size": s.Size()})
}

// sizerFor returns the session's sizer, creating and wiring it on first use.
func (h *Handler) sizerFor(sessionID string, initialWidth int) *pagination.Sizer {
	h.sizersMu.Lock()
	defer h.sizersMu.Unlock()

	if s, ok := h.sizers[sessionID]; ok {
		return s
	}

	s := pagination.NewSizer(&pagination.Pager{}, initialWidth)
	s.OnResize(func(size int) {
		h.hub.SendTo(sessionID, domain.Event{
			Type:          domain.EventPaginationResized,
			PageGroupSize: size,
		})
	})
	h.sizers[sessionID] = s
	return s
}

// --- SSE Handler ---

// Stream GET /toasts/stream — SSE endpoint the rendering layer draws from.
func (h *Handler) Stream(c echo.Context) error {
	sessionID := mustSession(c)

	// SSE headers
	w := c.Response()
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable Nginx/APISIX buffering

	// Register client
	sendCh := make(chan []byte, 32)
	client := h.hub.Register(sessionID, sendCh)
	defer h.hub.Unregister(client)

	// Send initial "connected" event carrying the container identity
	fmt.Fprintf(w, "event: connected\ndata: {\"container_id\":%q}\n\n", domain.ContainerID)
	w.Flush()

	log.Info().Str("session", sessionID).Msg("SSE stream opened")

	ctx := c.Request().Context()
	for {
		select {
		case msg, ok := <-sendCh:
			if !ok {
				return nil
			}
			if _, err := w.Write(msg); err != nil {
				return nil
			}
			w.Flush()

		case <-ctx.Done():
			log.Info().Str("session", sessionID).Msg("SSE stream closed by client")
			return nil
		}
	}
}

// --- Healthcheck ---

// Health GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "ok",
		"sse_clients": h.hub.ConnectedCount(),
	})
}

// --- Helpers ---

func mustSession(c echo.Context) string {
	sessionID, _ := c.Get("sessionID").(string)
	return sessionID
}
