package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/zmb3/spotify/v2"
)

type SearchResults struct {
	Tracks    []TrackData    `json:"tracks,omitempty"`
	Artists   []ArtistData   `json:"artists,omitempty"`
	Albums    []AlbumData    `json:"albums,omitempty"`
	Playlists []PlaylistData `json:"playlists,omitempty"`
}

// Search proxies a catalog search. types is the comma-separated form the
// Spotify API itself uses ("track,artist,album,playlist").
func Search(ctx context.Context, spClient *spotify.Client, text string, types string, limit, offset int) (*SearchResults, error) {
	results, err := spClient.Search(ctx, text, searchTypeMask(types), spotify.Limit(limit), spotify.Offset(offset))
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	sr := &SearchResults{}
	if results.Tracks != nil {
		sr.Tracks = lo.Map(results.Tracks.Tracks, TrackDataFromFullTrackIdx)
	}
	if results.Artists != nil {
		sr.Artists = lo.Map(results.Artists.Artists, ArtistDataFromFullArtistIdx)
	}
	if results.Albums != nil {
		sr.Albums = lo.Map(results.Albums.Albums, AlbumDataFromSimpleAlbum)
	}
	if results.Playlists != nil {
		sr.Playlists = lo.Map(results.Playlists.Playlists, PlaylistDataFromSimplePlaylist)
	}
	return sr, nil
}

func searchTypeMask(types string) spotify.SearchType {
	var mask spotify.SearchType
	for _, t := range strings.Split(types, ",") {
		switch strings.TrimSpace(t) {
		case "track":
			mask |= spotify.SearchTypeTrack
		case "artist":
			mask |= spotify.SearchTypeArtist
		case "album":
			mask |= spotify.SearchTypeAlbum
		case "playlist":
			mask |= spotify.SearchTypePlaylist
		}
	}
	if mask == 0 {
		mask = spotify.SearchTypeTrack
	}
	return mask
}
