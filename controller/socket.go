package controller

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// browser clients connect cross-origin from the frontend host
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the request and hands the connection to the room hub.
func (c *Controller) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %s", err)
		return
	}
	c.Hub.HandleConnection(conn)
}
