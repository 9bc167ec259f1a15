package handlers

import (
	"log"
	"net/http"

	"github.com/Dosada05/athletics-system/live"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// В продакшене здесь должна быть проверка Origin.
		return true
	},
}

type WebSocketHandler struct {
	hub *live.Hub
}

func NewWebSocketHandler(hub *live.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// ServeWs обрабатывает WebSocket подключения для конкретного соревнования.
// Клиент подключается к /ws/competitions/{competitionID} и получает
// обновления программы и протоколов забегов этого соревнования.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	competitionID := chi.URLParam(r, "competitionID")
	if competitionID == "" {
		http.Error(w, "Missing competitionID", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader.Upgrade сам отправляет HTTP ошибку клиенту.
		log.Printf("Failed to upgrade connection for competition %s: %v", competitionID, err)
		return
	}

	roomID := "competition:" + competitionID

	client := &live.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: roomID,
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
