package room

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 32 * 1024
	sendBuffer     = 256
)

// Session binds one websocket connection to a channel id. The id is fresh
// per connection; reconnecting clients come back as a new participant.
type Session struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

func newSession(id string, conn *websocket.Conn, hub *Hub) *Session {
	return &Session{
		id:   id,
		conn: conn,
		send: make(chan []byte, sendBuffer),
		hub:  hub,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Enqueue(data []byte) bool {
	select {
	case s.send <- data:
		return true
	default:
		return false
	}
}

func (s *Session) readPump() {
	defer func() {
		s.hub.dispatch(disconnectIntent{c: s})
		s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		s.hub.receive(s, raw)
	}
}

func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case data := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
