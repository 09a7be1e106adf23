// Package ws implements the live tweet feed over websockets.
package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// Client is one connected websocket subscriber.
type Client struct {
	conn *websocket.Conn
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS upgrades the request, registers the connection with the hub
// and watches it for closure. Subscribers only receive: any inbound
// read error, including a client-initiated close, unregisters the
// connection so the hub stops writing to it.
func ServeWS(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	client := &Client{conn: conn}
	hub.Register(client)

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Unregister(client)
				conn.Close()
				return
			}
		}
	}()
}
