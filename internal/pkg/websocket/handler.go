package websocket

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler upgrades HTTP requests to collaboration connections.
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Establish a WebSocket connection for live schedule collaboration
// @Description Upgrades the HTTP connection to a WebSocket. Room membership and schedule/cursor events are exchanged as JSON envelopes over the socket.
// @Tags collaboration
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 400 {object} dto.APIResponse "Upgrade failed"
// @Router /collab/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		logger: h.logger.With().Str("remoteAddr", conn.RemoteAddr().String()).Logger(),
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("Collaboration connection established")
}
