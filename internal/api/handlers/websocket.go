package handlers

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"go.uber.org/zap"

	ws "github.com/mael/portfolio-showcase/internal/websocket"
)

type WebSocketHandler struct {
	hub      *ws.Hub
	upgrader gorilla.Upgrader
	log      *zap.Logger
}

func NewWebSocketHandler(hub *ws.Hub, log *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origins are already filtered by the CORS middleware config;
			// the feed itself is read-only.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	ws.NewClient(h.hub, conn).Register()
}
