package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmb3/spotify/v2"
)

func TestTrackDataFromFullTrack(t *testing.T) {
	track := spotify.FullTrack{
		SimpleTrack: spotify.SimpleTrack{
			ID:       "6rqhFgbbKwnb9MLmUQDhG6",
			URI:      "spotify:track:6rqhFgbbKwnb9MLmUQDhG6",
			Name:     "Bohemian Rhapsody",
			Duration: 354320,
			Artists: []spotify.SimpleArtist{
				{Name: "Queen"},
			},
		},
		Album: spotify.SimpleAlbum{
			Name: "A Night at the Opera",
			Images: []spotify.Image{
				{Height: 640, URL: "https://img/640"},
				{Height: 64, URL: "https://img/64"},
				{Height: 300, URL: "https://img/300"},
			},
		},
	}

	data := TrackDataFromFullTrack(track)
	assert.Equal(t, "6rqhFgbbKwnb9MLmUQDhG6", data.ID)
	assert.Equal(t, "spotify:track:6rqhFgbbKwnb9MLmUQDhG6", data.Uri)
	assert.Equal(t, []string{"Queen"}, data.Artists)
	assert.Equal(t, "A Night at the Opera", data.AlbumName)
	assert.Equal(t, 354320, data.DurationMs)
	require.NotNil(t, data.ImageUrl)
	assert.Equal(t, "https://img/64", *data.ImageUrl)
}

func TestImageURLEmpty(t *testing.T) {
	assert.Nil(t, imageURL(nil))
}

func TestSearchTypeMask(t *testing.T) {
	cases := []struct {
		types string
		want  spotify.SearchType
	}{
		{"track", spotify.SearchTypeTrack},
		{"track,artist", spotify.SearchTypeTrack | spotify.SearchTypeArtist},
		{" track , album ", spotify.SearchTypeTrack | spotify.SearchTypeAlbum},
		{"", spotify.SearchTypeTrack},
		{"bogus", spotify.SearchTypeTrack},
		{"track,artist,album,playlist", spotify.SearchTypeTrack | spotify.SearchTypeArtist | spotify.SearchTypeAlbum | spotify.SearchTypePlaylist},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, searchTypeMask(c.types), "types=%q", c.types)
	}
}

func TestParseTimeRange(t *testing.T) {
	assert.Equal(t, spotify.ShortTermRange, parseTimeRange("short_term"))
	assert.Equal(t, spotify.LongTermRange, parseTimeRange("long_term"))
	assert.Equal(t, spotify.MediumTermRange, parseTimeRange("medium_term"))
	assert.Equal(t, spotify.MediumTermRange, parseTimeRange(""))
}
