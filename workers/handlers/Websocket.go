package handlers

import (
	"net/http"

	"gosyncswap/realtime"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS is wide open on this API, origin checks follow suit
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Websocket upgrades the connection, registers it for broadcasts and echoes
// every inbound text message back to the sender. A read or write error is the
// disconnect signal.
func Websocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := realtime.NewClient(conn)
	Hub.Register(client)
	defer func() {
		Hub.Unregister(client)
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if err := client.SendText("Echo: " + string(data)); err != nil {
			return
		}
	}
}
