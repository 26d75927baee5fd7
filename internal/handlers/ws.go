package handlers

import (
	"log"
	"net/http"

	"github.com/Aarontamirat/voting-app/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket connection for live meeting updates
// @Description  Connect via WebSocket to receive attendance, status and vote events
// @Tags         websocket
// @Param        id path string true "Meeting ID"
// @Router       /ws/meeting/{id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	meetingID := c.Param("id")
	if meetingID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meeting id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(meetingID, conn)
	defer h.hub.RemoveConnection(meetingID, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
