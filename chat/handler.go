package chat

import (
	_ "embed"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amondal/halchat/domain"
)

//go:embed static/index.html
var indexPage []byte

// Handler handles chat HTTP requests.
type Handler struct {
	completer *Completer
}

// NewHandler creates a new chat handler.
func NewHandler(completer *Completer) *Handler {
	return &Handler{completer: completer}
}

// RegisterRoutes registers chat routes.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/healthz", h.Health)
	e.GET("/history", h.History)
	e.POST("/chat", h.Chat)
	e.POST("/reset", h.Reset)
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ResetRequest is the optional body of POST /reset.
type ResetRequest struct {
	SessionID string `json:"session_id,omitempty"`
}

// Chat handles one completion request.
// POST /chat
func (h *Handler) Chat(c echo.Context) error {
	ctx := c.Request().Context()

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No message provided"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No message provided"})
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = domain.DefaultSessionID
	}

	outcome, err := h.completer.Complete(ctx, sessionID, req.Message)
	if err != nil {
		log.Printf("ERROR: completion failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if outcome.Kind != domain.OutcomeReply {
		log.Printf("WARN: upstream returned no usable reply (%s)", outcome.Kind)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": outcome.Text})
	}

	return c.JSON(http.StatusOK, map[string]string{"response": outcome.Text})
}

// Reset clears the session transcript.
// POST /reset
func (h *Handler) Reset(c echo.Context) error {
	ctx := c.Request().Context()

	var req ResetRequest
	_ = c.Bind(&req) // body is optional
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = domain.DefaultSessionID
	}

	if err := h.completer.Reset(ctx, sessionID); err != nil {
		log.Printf("ERROR: failed to reset transcript: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to reset conversation"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "reset"})
}

// History returns the session transcript.
// GET /history
func (h *Handler) History(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		sessionID = domain.DefaultSessionID
	}

	turns, err := h.completer.History(ctx, sessionID)
	if err != nil {
		log.Printf("ERROR: failed to get history: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get history"})
	}
	if turns == nil {
		turns = []domain.Turn{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"turns": turns})
}

// Index serves the chat page.
// GET /
func (h *Handler) Index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, indexPage)
}

// Health is the liveness endpoint.
// GET /healthz
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
