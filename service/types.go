package service

import (
	"github.com/samber/lo"
	"github.com/zmb3/spotify/v2"
)

type TrackData struct {
	ID         string   `json:"id"`
	Uri        string   `json:"uri"`
	Name       string   `json:"name"`
	Artists    []string `json:"artists"`
	AlbumName  string   `json:"album_name,omitempty"`
	ImageUrl   *string  `json:"image_url"`
	DurationMs int      `json:"duration_ms"`
	Popularity int      `json:"popularity"`
	Explicit   bool     `json:"explicit"`
	PreviewUrl string   `json:"preview_url,omitempty"`
}

type ArtistData struct {
	ID         string   `json:"id"`
	Uri        string   `json:"uri"`
	Name       string   `json:"name"`
	ImageUrl   *string  `json:"image_url"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
	Followers  uint     `json:"followers"`
}

type AlbumData struct {
	ID          string   `json:"id"`
	Uri         string   `json:"uri"`
	Name        string   `json:"name"`
	Artists     []string `json:"artists"`
	ImageUrl    *string  `json:"image_url"`
	ReleaseDate string   `json:"release_date"`
	TotalTracks int      `json:"total_tracks"`
}

type PlaylistData struct {
	ID       string  `json:"id"`
	Uri      string  `json:"uri"`
	Name     string  `json:"name"`
	Owner    string  `json:"owner"`
	ImageUrl *string `json:"image_url"`
}

type SpotifyUser struct {
	ID       string `json:"id"`
	Display  string `json:"display_name"`
	Email    string `json:"email,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Product  string `json:"product,omitempty"`
}

func TrackDataFromFullTrack(t spotify.FullTrack) TrackData {
	return TrackData{
		ID:         t.ID.String(),
		Uri:        string(t.URI),
		Name:       t.Name,
		Artists:    artistNames(t.Artists),
		AlbumName:  t.Album.Name,
		ImageUrl:   imageURL(t.Album.Images),
		DurationMs: int(t.Duration),
		Popularity: int(t.Popularity),
		Explicit:   t.Explicit,
		PreviewUrl: t.PreviewURL,
	}
}

func TrackDataFromFullTrackIdx(t spotify.FullTrack, _ int) TrackData {
	return TrackDataFromFullTrack(t)
}

// TrackDataFromSimpleTrack covers results that come without album detail,
// such as recommendation seeds.
func TrackDataFromSimpleTrack(t spotify.SimpleTrack, _ int) TrackData {
	return TrackData{
		ID:         t.ID.String(),
		Uri:        string(t.URI),
		Name:       t.Name,
		Artists:    artistNames(t.Artists),
		DurationMs: int(t.Duration),
		Explicit:   t.Explicit,
		PreviewUrl: t.PreviewURL,
	}
}

func ArtistDataFromFullArtist(a spotify.FullArtist) ArtistData {
	return ArtistData{
		ID:         a.ID.String(),
		Uri:        string(a.URI),
		Name:       a.Name,
		ImageUrl:   imageURL(a.Images),
		Genres:     a.Genres,
		Popularity: int(a.Popularity),
		Followers:  uint(a.Followers.Count),
	}
}

func ArtistDataFromFullArtistIdx(a spotify.FullArtist, _ int) ArtistData {
	return ArtistDataFromFullArtist(a)
}

func AlbumDataFromSimpleAlbum(a spotify.SimpleAlbum, _ int) AlbumData {
	return AlbumData{
		ID:          a.ID.String(),
		Uri:         string(a.URI),
		Name:        a.Name,
		Artists:     artistNames(a.Artists),
		ImageUrl:    imageURL(a.Images),
		ReleaseDate: a.ReleaseDate,
		TotalTracks: int(a.TotalTracks),
	}
}

func PlaylistDataFromSimplePlaylist(p spotify.SimplePlaylist, _ int) PlaylistData {
	return PlaylistData{
		ID:       p.ID.String(),
		Uri:      string(p.URI),
		Name:     p.Name,
		Owner:    p.Owner.DisplayName,
		ImageUrl: imageURL(p.Images),
	}
}

func artistNames(artists []spotify.SimpleArtist) []string {
	return lo.Map(artists, func(a spotify.SimpleArtist, _ int) string { return a.Name })
}

// imageURL prefers the smallest artwork; thumbnails are what the queue and
// member lists render.
func imageURL(images []spotify.Image) *string {
	if len(images) == 0 {
		return nil
	}
	smallest := images[0]
	for _, img := range images[1:] {
		if img.Height != 0 && (smallest.Height == 0 || img.Height < smallest.Height) {
			smallest = img
		}
	}
	return &smallest.URL
}
