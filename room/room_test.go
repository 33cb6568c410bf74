package room

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTrack(id string) Track {
	return Track{
		Payload:  map[string]any{"id": id, "name": "track " + id},
		AddedBy:  "channel-1",
		QueuedAt: time.UnixMilli(1700000000000),
	}
}

func TestPromoteOnlyWhenIdle(t *testing.T) {
	rm := newRoom("r1")

	_, ok := rm.Promote()
	assert.False(t, ok, "empty queue must not promote")

	rm.Enqueue(testTrack("t1"))
	rm.Enqueue(testTrack("t2"))

	next, ok := rm.Promote()
	require.True(t, ok)
	assert.Equal(t, "t1", next.Payload["id"])
	assert.Len(t, rm.Queue(), 1)

	_, ok = rm.Promote()
	assert.False(t, ok, "must not promote while a track is playing")
	assert.Equal(t, "t1", rm.CurrentTrack().Payload["id"])
}

func TestSkipThreshold(t *testing.T) {
	cases := []struct {
		members int
		want    int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
	}
	for _, c := range cases {
		rm := newRoom("r1")
		for i := 0; i < c.members; i++ {
			rm.AddMember(Participant{ID: string(rune('a' + i))})
		}
		assert.Equal(t, c.want, rm.SkipThreshold(), "members=%d", c.members)
	}
}

func TestCastVoteIdempotent(t *testing.T) {
	rm := newRoom("r1")
	rm.AddMember(Participant{ID: "a"})
	rm.AddMember(Participant{ID: "b"})
	rm.AddMember(Participant{ID: "c"})

	_, _, ok := rm.CastVote("a")
	assert.False(t, ok, "voting while idle must be rejected")

	rm.Enqueue(testTrack("t1"))
	rm.Promote()

	votes, threshold, ok := rm.CastVote("a")
	require.True(t, ok)
	assert.Equal(t, 1, votes)
	assert.Equal(t, 2, threshold)

	votes, _, ok = rm.CastVote("a")
	require.True(t, ok)
	assert.Equal(t, 1, votes, "re-vote must not inflate the count")
}

func TestRemoveMemberDiscardsVote(t *testing.T) {
	rm := newRoom("r1")
	rm.AddMember(Participant{ID: "a"})
	rm.AddMember(Participant{ID: "b"})
	rm.Enqueue(testTrack("t1"))
	rm.Promote()
	rm.CastVote("a")

	require.True(t, rm.RemoveMember("a"))
	assert.Equal(t, 0, rm.VoteCount())
	assert.False(t, rm.RemoveMember("a"), "removing a non-member is a no-op")
}

func TestSkipAdvancesQueueAndClearsVotes(t *testing.T) {
	rm := newRoom("r1")
	rm.AddMember(Participant{ID: "a"})
	rm.Enqueue(testTrack("t1"))
	rm.Promote()
	rm.Enqueue(testTrack("t2"))
	rm.CastVote("a")

	current := rm.Skip()
	require.NotNil(t, current)
	assert.Equal(t, "t2", current.Payload["id"])
	assert.Equal(t, 0, rm.VoteCount(), "votes are scoped to one epoch")
	assert.Empty(t, rm.Queue())

	current = rm.Skip()
	assert.Nil(t, current, "skipping with an empty queue leaves the room idle")
}

func TestTrackMarshalMergesMetadata(t *testing.T) {
	track := testTrack("t1")

	data, err := json.Marshal(track)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "t1", decoded["id"])
	assert.Equal(t, "track t1", decoded["name"])
	assert.Equal(t, "channel-1", decoded["addedBy"])
	assert.Equal(t, float64(1700000000000), decoded["queuedAt"])
}
