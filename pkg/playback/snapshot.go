package playback

import (
	"fmt"
	"strings"
	"time"
)

// TrackInfo describes the content item which is currently playing.
type TrackInfo struct {
	Kind     string        `json:"kind"`
	Name     string        `json:"name"`
	Artists  []string      `json:"artists,omitempty"`
	Duration time.Duration `json:"duration"`
}

func (this TrackInfo) ArtistsString() string {
	return strings.Join(this.Artists, ", ")
}

func (this TrackInfo) String() string {
	if len(this.Artists) == 0 {
		return fmt.Sprintf("%s %q", this.Kind, this.Name)
	}
	return fmt.Sprintf("%s %q by %s", this.Kind, this.Name, this.ArtistsString())
}

// Snapshot is the result of one poll of the playback state. The zero
// value is a snapshot of nothing playing.
//
// A Snapshot can only be created using NewTrack, NewAdvertisement or
// Nothing. Only track snapshots carry TrackInfo and progress.
type Snapshot struct {
	content  Content
	track    TrackInfo
	progress *time.Duration
}

func Nothing() Snapshot {
	return Snapshot{}
}

func NewAdvertisement() Snapshot {
	return Snapshot{content: ContentAdvertisement}
}

// NewTrack creates a snapshot of a playing track. progress might be nil if
// the service did not report any progress.
func NewTrack(info TrackInfo, progress *time.Duration) Snapshot {
	result := Snapshot{
		content: ContentTrack,
		track:   info,
	}
	result.track.Artists = append([]string(nil), info.Artists...)
	if progress != nil {
		p := *progress
		result.progress = &p
	}
	return result
}

func (this Snapshot) Content() Content {
	return this.content
}

func (this Snapshot) IsTrack() bool {
	return this.content == ContentTrack
}

func (this Snapshot) IsAdvertisement() bool {
	return this.content == ContentAdvertisement
}

func (this Snapshot) IsNothing() bool {
	return this.content == ContentNothing
}

// Track returns the track information. ok is false if this snapshot is not
// a track.
func (this Snapshot) Track() (info TrackInfo, ok bool) {
	if this.content != ContentTrack {
		return TrackInfo{}, false
	}
	info = this.track
	info.Artists = append([]string(nil), this.track.Artists...)
	return info, true
}

// Progress returns the elapsed playback of the track. ok is false if no
// progress was reported.
func (this Snapshot) Progress() (progress time.Duration, ok bool) {
	if this.content != ContentTrack || this.progress == nil {
		return 0, false
	}
	return *this.progress, true
}

// Elapsed is like Progress but reports a missing progress as zero.
func (this Snapshot) Elapsed() time.Duration {
	v, _ := this.Progress()
	return v
}

// Remaining returns how long the current track is still playing. It is
// never negative; if the reported progress exceeds the duration of the
// track zero is returned. Snapshots which are not tracks return zero.
func (this Snapshot) Remaining() time.Duration {
	if this.content != ContentTrack {
		return 0
	}
	remaining := this.track.Duration - this.Elapsed()
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (this Snapshot) String() string {
	switch this.content {
	case ContentTrack:
		if p, ok := this.Progress(); ok {
			return fmt.Sprintf("%v (%v/%v)", this.track, p, this.track.Duration)
		}
		return fmt.Sprintf("%v (%v)", this.track, this.track.Duration)
	default:
		return this.content.String()
	}
}
