package handlers

import (
	"net/http"

	"naccost-lab/internal/streaming"
	"naccost-lab/pkg/logger"
)

// StreamingHandler handles WebSocket streaming endpoints
type StreamingHandler struct {
	hub    *streaming.WebSocketHub
	logger *logger.Logger
}

// NewStreamingHandler creates a new StreamingHandler
func NewStreamingHandler(hub *streaming.WebSocketHub, log *logger.Logger) *StreamingHandler {
	return &StreamingHandler{
		hub:    hub,
		logger: log.WithComponent("streaming-handler"),
	}
}

// ServeAnalysisEvents handles GET /ws/analysis
func (h *StreamingHandler) ServeAnalysisEvents(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		writeError(w, http.StatusServiceUnavailable, "streaming is not available")
		return
	}
	h.hub.ServeWebSocket(w, r)
}
