package room

import (
	"encoding/json"
	"log"
	"sync/atomic"
	"time"

	"github.com/auxroom/auxroom-api/config"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const intentBuffer = 256

// conn is the hub's view of one connected channel.
type conn interface {
	ID() string
	// Enqueue hands data to the channel's writer. Delivery is best-effort;
	// it reports false when the outbound buffer is full.
	Enqueue(data []byte) bool
}

type intent interface{}

type (
	registerIntent   struct{ c conn }
	disconnectIntent struct{ c conn }

	joinIntent struct {
		c        conn
		roomID   string
		username string
	}
	leaveIntent struct {
		c      conn
		roomID string
	}
	queueIntent struct {
		c       conn
		roomID  string
		payload map[string]any
	}
	voteIntent struct {
		c      conn
		roomID string
	}
	playbackIntent struct {
		c         conn
		roomID    string
		isPlaying bool
		position  float64
	}
	reactionIntent struct {
		c        conn
		roomID   string
		reaction string
	}
	expireIntent struct{ roomID string }
)

// Hub serializes every room mutation through one dispatch goroutine. Each
// intent is handled to completion, mutations and broadcasts included, before
// the next begins, so compound transitions (enqueue-then-promote,
// clear-votes-then-advance) are atomic without locks.
type Hub struct {
	table    *Table
	sessions map[string]conn // connection registry: channel id -> session
	intents  chan intent

	// grace is how long an empty room survives before its table entry is
	// reclaimed. A rejoin during the window makes the expiry re-check fail.
	grace time.Duration
	after func(d time.Duration, fn func())

	roomCount    atomic.Int64
	sessionCount atomic.Int64
}

func NewHub() *Hub {
	return &Hub{
		table:    NewTable(),
		sessions: make(map[string]conn),
		intents:  make(chan intent, intentBuffer),
		grace:    config.GetRoomGrace(),
		after: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// Run consumes intents until the process exits.
func (h *Hub) Run() {
	for i := range h.intents {
		h.handle(i)
	}
}

// HandleConnection owns wsConn for the rest of its life: it assigns the
// channel id, registers the session, and starts the read and write pumps.
func (h *Hub) HandleConnection(wsConn *websocket.Conn) {
	s := newSession(uuid.NewString(), wsConn, h)
	h.dispatch(registerIntent{c: s})
	go s.writePump()
	go s.readPump()
	log.Printf("channel %s connected", s.ID())
}

// RoomCount reports how many rooms are live. Safe from any goroutine.
func (h *Hub) RoomCount() int64 {
	return h.roomCount.Load()
}

// SessionCount reports how many channels are connected. Safe from any
// goroutine.
func (h *Hub) SessionCount() int64 {
	return h.sessionCount.Load()
}

func (h *Hub) dispatch(i intent) {
	h.intents <- i
}

// receive parses one raw client frame and queues the resulting intent.
// Malformed frames and frames without a room id are dropped: the protocol is
// fire-and-forget and there is no error channel back to the sender.
func (h *Hub) receive(c conn, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return
	}

	switch env.Event {
	case EventJoinRoom:
		var p JoinRoomPayload
		if json.Unmarshal(env.Data, &p) != nil || p.RoomID == "" {
			return
		}
		h.dispatch(joinIntent{c: c, roomID: p.RoomID, username: p.Username})
	case EventLeaveRoom:
		var p LeaveRoomPayload
		if json.Unmarshal(env.Data, &p) != nil || p.RoomID == "" {
			return
		}
		h.dispatch(leaveIntent{c: c, roomID: p.RoomID})
	case EventQueueTrack:
		var p QueueTrackPayload
		if json.Unmarshal(env.Data, &p) != nil || p.RoomID == "" {
			return
		}
		h.dispatch(queueIntent{c: c, roomID: p.RoomID, payload: p.Track})
	case EventVoteSkip:
		var p VoteSkipPayload
		if json.Unmarshal(env.Data, &p) != nil || p.RoomID == "" {
			return
		}
		h.dispatch(voteIntent{c: c, roomID: p.RoomID})
	case EventPlaybackUpdate:
		var p PlaybackUpdatePayload
		if json.Unmarshal(env.Data, &p) != nil || p.RoomID == "" {
			return
		}
		h.dispatch(playbackIntent{c: c, roomID: p.RoomID, isPlaying: p.IsPlaying, position: p.Position})
	case EventTrackReaction:
		var p TrackReactionPayload
		if json.Unmarshal(env.Data, &p) != nil || p.RoomID == "" {
			return
		}
		h.dispatch(reactionIntent{c: c, roomID: p.RoomID, reaction: p.Reaction})
	}
}

func (h *Hub) handle(i intent) {
	switch v := i.(type) {
	case registerIntent:
		h.sessions[v.c.ID()] = v.c
	case disconnectIntent:
		h.handleDisconnect(v.c)
	case joinIntent:
		h.handleJoin(v.c, v.roomID, v.username)
	case leaveIntent:
		h.handleLeave(v.c.ID(), v.roomID)
	case queueIntent:
		h.handleQueue(v.c.ID(), v.roomID, v.payload)
	case voteIntent:
		h.handleVote(v.c.ID(), v.roomID)
	case playbackIntent:
		h.handlePlayback(v)
	case reactionIntent:
		h.handleReaction(v)
	case expireIntent:
		h.handleExpire(v.roomID)
	}

	h.roomCount.Store(int64(h.table.Len()))
	h.sessionCount.Store(int64(len(h.sessions)))
}

func (h *Hub) handleJoin(c conn, roomID, username string) {
	rm := h.table.Ensure(roomID)
	if username == "" {
		username = defaultUsername(c.ID())
	}
	user := Participant{ID: c.ID(), Username: username}
	rm.AddMember(user)

	h.broadcast(rm, EventUserJoined, UserJoinedPayload{User: user, Members: rm.Members()})
	h.unicast(c, EventRoomState, rm.snapshot())
	log.Printf("channel %s joined room %s", c.ID(), roomID)
}

func (h *Hub) handleLeave(channelID, roomID string) {
	rm, ok := h.table.Get(roomID)
	if !ok {
		return
	}
	rm.RemoveMember(channelID)
	h.afterLeave(rm, channelID)
	log.Printf("channel %s left room %s", channelID, roomID)
}

func (h *Hub) handleDisconnect(c conn) {
	delete(h.sessions, c.ID())
	h.table.Each(func(rm *Room) {
		if rm.RemoveMember(c.ID()) {
			h.afterLeave(rm, c.ID())
		}
	})
	log.Printf("channel %s disconnected", c.ID())
}

func (h *Hub) afterLeave(rm *Room, channelID string) {
	if rm.Empty() {
		h.scheduleExpiry(rm.ID)
		return
	}
	h.broadcast(rm, EventUserLeft, UserLeftPayload{UserID: channelID, Members: rm.Members()})
}

// scheduleExpiry arms a deferred re-check rather than a guaranteed deletion.
// Overlapping timers for the same room are harmless: the expiry handler
// re-reads live membership and at most one deletion executes.
func (h *Hub) scheduleExpiry(roomID string) {
	h.after(h.grace, func() {
		h.dispatch(expireIntent{roomID: roomID})
	})
}

func (h *Hub) handleExpire(roomID string) {
	rm, ok := h.table.Get(roomID)
	if !ok || !rm.Empty() {
		return
	}
	h.table.Delete(roomID)
	log.Printf("room %s reclaimed after grace period", roomID)
}

func (h *Hub) handleQueue(channelID, roomID string, payload map[string]any) {
	rm, ok := h.table.Get(roomID)
	if !ok {
		return
	}
	track := Track{Payload: payload, AddedBy: channelID, QueuedAt: time.Now()}
	rm.Enqueue(track)
	h.broadcast(rm, EventTrackQueued, TrackQueuedPayload{Track: track, Queue: rm.Queue()})

	// Queueing into an idle room starts playback.
	if next, ok := rm.Promote(); ok {
		h.broadcast(rm, EventTrackChanged, TrackChangedPayload{Track: next, Queue: rm.Queue()})
	}
}

func (h *Hub) handleVote(channelID, roomID string) {
	rm, ok := h.table.Get(roomID)
	if !ok {
		return
	}
	votes, threshold, ok := rm.CastVote(channelID)
	if !ok {
		// nothing playing, nothing to skip
		return
	}
	h.broadcast(rm, EventVoteUpdate, VoteUpdatePayload{Votes: votes, Threshold: threshold})

	if votes >= threshold {
		current := rm.Skip()
		h.broadcast(rm, EventTrackSkipped, TrackSkippedPayload{CurrentTrack: current, Queue: rm.Queue()})
	}
}

func (h *Hub) handlePlayback(v playbackIntent) {
	rm, ok := h.table.Get(v.roomID)
	if !ok {
		return
	}
	h.broadcastExcept(rm, v.c.ID(), EventPlaybackSync, PlaybackSyncPayload{
		IsPlaying: v.isPlaying,
		Position:  v.position,
	})
}

func (h *Hub) handleReaction(v reactionIntent) {
	rm, ok := h.table.Get(v.roomID)
	if !ok {
		return
	}
	h.broadcast(rm, EventReactionAdded, ReactionAddedPayload{
		UserID:   v.c.ID(),
		Reaction: v.reaction,
	})
}

func (h *Hub) broadcast(rm *Room, event string, payload any) {
	h.broadcastExcept(rm, "", event, payload)
}

func (h *Hub) broadcastExcept(rm *Room, exceptID, event string, payload any) {
	data, err := encodeEvent(event, payload)
	if err != nil {
		log.Printf("encode %s: %s", event, err)
		return
	}
	for _, p := range rm.Members() {
		if p.ID == exceptID {
			continue
		}
		h.send(p.ID, data)
	}
}

func (h *Hub) unicast(c conn, event string, payload any) {
	data, err := encodeEvent(event, payload)
	if err != nil {
		log.Printf("encode %s: %s", event, err)
		return
	}
	if !c.Enqueue(data) {
		log.Printf("channel %s send buffer full, dropping %s", c.ID(), event)
	}
}

func (h *Hub) send(channelID string, data []byte) {
	c, ok := h.sessions[channelID]
	if !ok {
		return
	}
	if !c.Enqueue(data) {
		log.Printf("channel %s send buffer full, dropping event", channelID)
	}
}

func encodeEvent(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: data})
}

func defaultUsername(id string) string {
	if len(id) > 6 {
		id = id[:6]
	}
	return "User " + id
}
