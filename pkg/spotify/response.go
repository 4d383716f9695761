package spotify

import (
	"strings"
	"time"

	"github.com/blaubaer/silentify/pkg/playback"
)

type currentlyPlayingResponse struct {
	Timestamp            int64         `json:"timestamp"`
	IsPlaying            bool          `json:"is_playing"`
	ProgressMs           *int64        `json:"progress_ms"`
	CurrentlyPlayingType string        `json:"currently_playing_type"`
	Item                 *itemResponse `json:"item"`
}

// snapshot classifies the response. Without any item the service plays
// something it does not expose as content, which is an advertisement.
func (this *currentlyPlayingResponse) snapshot() playback.Snapshot {
	if this == nil {
		return playback.Nothing()
	}
	if this.Item == nil {
		return playback.NewAdvertisement()
	}

	var progress *time.Duration
	if v := this.ProgressMs; v != nil {
		buf := time.Duration(*v) * time.Millisecond
		progress = &buf
	}

	return playback.NewTrack(this.Item.info(), progress)
}

type itemResponse struct {
	Id         string           `json:"id"`
	Type       string           `json:"type"`
	Name       string           `json:"name"`
	DurationMs int64            `json:"duration_ms"`
	Artists    []artistResponse `json:"artists,omitempty"`
	Show       *showResponse    `json:"show,omitempty"`
}

func (this itemResponse) info() playback.TrackInfo {
	kind := strings.TrimSpace(this.Type)
	if kind == "" {
		kind = "track"
	}
	return playback.TrackInfo{
		Kind:     kind,
		Name:     this.Name,
		Artists:  this.artistNames(),
		Duration: time.Duration(this.DurationMs) * time.Millisecond,
	}
}

func (this itemResponse) artistNames() []string {
	result := make([]string, 0, len(this.Artists))
	for _, a := range this.Artists {
		if a.Name != "" {
			result = append(result, a.Name)
		}
	}
	if len(result) == 0 && this.Show != nil {
		if v := this.Show.Name; v != "" {
			result = append(result, v)
		}
	}
	return result
}

type artistResponse struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type showResponse struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

type userResponse struct {
	Id          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

type errorResponse struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}
