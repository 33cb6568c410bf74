package room

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"
)

// Participant is one (room, channel) membership. The id is the channel id,
// so it is not stable across reconnects.
type Participant struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Track is an opaque catalog payload plus the fields the room stamps on it
// when it is queued.
type Track struct {
	Payload  map[string]any
	AddedBy  string
	QueuedAt time.Time
}

// MarshalJSON flattens the catalog payload and the queue metadata into one
// object, so clients get back the same shape they queued.
func (t Track) MarshalJSON() ([]byte, error) {
	merged := lo.Assign(t.Payload, map[string]any{
		"addedBy":  t.AddedBy,
		"queuedAt": t.QueuedAt.UnixMilli(),
	})
	return json.Marshal(merged)
}

// nowPlaying scopes the skip votes to one current-track epoch. Votes cannot
// exist while the room is idle.
type nowPlaying struct {
	track Track
	votes map[string]struct{}
}

// Room holds one session's membership, queue, and playback state. Rooms are
// mutated only from the hub's dispatch loop and carry no locks of their own.
type Room struct {
	ID      string
	members []Participant
	queue   []Track
	playing *nowPlaying
}

func newRoom(id string) *Room {
	return &Room{ID: id}
}

// AddMember appends p in join order. Reports false if the channel is already
// a member.
func (r *Room) AddMember(p Participant) bool {
	if r.IsMember(p.ID) {
		return false
	}
	r.members = append(r.members, p)
	return true
}

// RemoveMember drops the channel from the member list and discards any skip
// vote it holds. Removing a non-member is a no-op.
func (r *Room) RemoveMember(id string) bool {
	before := len(r.members)
	r.members = lo.Reject(r.members, func(p Participant, _ int) bool {
		return p.ID == id
	})
	if r.playing != nil {
		delete(r.playing.votes, id)
	}
	return len(r.members) != before
}

func (r *Room) IsMember(id string) bool {
	return lo.ContainsBy(r.members, func(p Participant) bool { return p.ID == id })
}

func (r *Room) Members() []Participant {
	if r.members == nil {
		return []Participant{}
	}
	return r.members
}

func (r *Room) Empty() bool {
	return len(r.members) == 0
}

// Enqueue appends t. The queue is strict FIFO; duplicates are allowed.
func (r *Room) Enqueue(t Track) {
	r.queue = append(r.queue, t)
}

func (r *Room) Queue() []Track {
	if r.queue == nil {
		return []Track{}
	}
	return r.queue
}

// Promote moves the head of the queue into the playing slot when the room is
// idle. Reports whether a track started playing.
func (r *Room) Promote() (Track, bool) {
	if r.playing != nil || len(r.queue) == 0 {
		return Track{}, false
	}
	next := r.queue[0]
	r.queue = r.queue[1:]
	r.playing = &nowPlaying{track: next, votes: make(map[string]struct{})}
	return next, true
}

// CastVote records one skip vote for the current track. Re-votes from the
// same channel leave the count unchanged. Reports false while idle.
func (r *Room) CastVote(id string) (votes, threshold int, ok bool) {
	if r.playing == nil {
		return 0, 0, false
	}
	r.playing.votes[id] = struct{}{}
	return len(r.playing.votes), r.SkipThreshold(), true
}

// SkipThreshold is a simple majority of current membership, recomputed on
// every vote so arrivals and departures move the bar.
func (r *Room) SkipThreshold() int {
	return (len(r.members) + 1) / 2
}

// Skip discards the current track and its votes, then promotes the next
// queued track if there is one. Returns the track now playing, or nil.
func (r *Room) Skip() *Track {
	r.playing = nil
	r.Promote()
	return r.CurrentTrack()
}

func (r *Room) CurrentTrack() *Track {
	if r.playing == nil {
		return nil
	}
	return &r.playing.track
}

func (r *Room) VoteCount() int {
	if r.playing == nil {
		return 0
	}
	return len(r.playing.votes)
}

func (r *Room) snapshot() RoomStatePayload {
	return RoomStatePayload{
		Members:      r.Members(),
		Queue:        r.Queue(),
		CurrentTrack: r.CurrentTrack(),
	}
}
