package room

import "encoding/json"

// Client -> server intents.
const (
	EventJoinRoom       = "join_room"
	EventLeaveRoom      = "leave_room"
	EventQueueTrack     = "queue_track"
	EventVoteSkip       = "vote_skip"
	EventPlaybackUpdate = "playback_update"
	EventTrackReaction  = "track_reaction"
)

// Server -> client events.
const (
	EventRoomState     = "room_state"
	EventUserJoined    = "user_joined"
	EventUserLeft      = "user_left"
	EventTrackQueued   = "track_queued"
	EventTrackChanged  = "track_changed"
	EventTrackSkipped  = "track_skipped"
	EventVoteUpdate    = "vote_update"
	EventPlaybackSync  = "playback_sync"
	EventReactionAdded = "reaction_added"
)

// Envelope frames every message in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type JoinRoomPayload struct {
	RoomID   string `json:"roomId"`
	Username string `json:"username,omitempty"`
}

type LeaveRoomPayload struct {
	RoomID string `json:"roomId"`
}

type QueueTrackPayload struct {
	RoomID string         `json:"roomId"`
	Track  map[string]any `json:"track"`
}

type VoteSkipPayload struct {
	RoomID string `json:"roomId"`
}

type PlaybackUpdatePayload struct {
	RoomID    string  `json:"roomId"`
	IsPlaying bool    `json:"isPlaying"`
	Position  float64 `json:"position"`
}

type TrackReactionPayload struct {
	RoomID   string `json:"roomId"`
	Reaction string `json:"reaction"`
}

// RoomStatePayload is the full snapshot unicast to a channel right after it
// joins.
type RoomStatePayload struct {
	Members      []Participant `json:"members"`
	Queue        []Track       `json:"queue"`
	CurrentTrack *Track        `json:"currentTrack"`
}

type UserJoinedPayload struct {
	User    Participant   `json:"user"`
	Members []Participant `json:"members"`
}

type UserLeftPayload struct {
	UserID  string        `json:"userId"`
	Members []Participant `json:"members"`
}

type TrackQueuedPayload struct {
	Track Track   `json:"track"`
	Queue []Track `json:"queue"`
}

type TrackChangedPayload struct {
	Track Track   `json:"track"`
	Queue []Track `json:"queue"`
}

type TrackSkippedPayload struct {
	CurrentTrack *Track  `json:"currentTrack"`
	Queue        []Track `json:"queue"`
}

type VoteUpdatePayload struct {
	Votes     int `json:"votes"`
	Threshold int `json:"threshold"`
}

type PlaybackSyncPayload struct {
	IsPlaying bool    `json:"isPlaying"`
	Position  float64 `json:"position"`
}

type ReactionAddedPayload struct {
	UserID   string `json:"userId"`
	Reaction string `json:"reaction"`
}
