package playback

import (
	"fmt"
	"strings"
)

type Content uint8

const (
	ContentNothing       = Content(0)
	ContentTrack         = Content(1)
	ContentAdvertisement = Content(2)
)

var (
	AllContents = Contents{
		ContentNothing,
		ContentTrack,
		ContentAdvertisement,
	}
)

func (this *Content) Set(plain string) error {
	switch strings.TrimSpace(strings.ToLower(plain)) {
	case "nothing", "none", "":
		*this = ContentNothing
		return nil
	case "track":
		*this = ContentTrack
		return nil
	case "advertisement", "ad":
		*this = ContentAdvertisement
		return nil
	default:
		return fmt.Errorf("illegal-playback-content: %s", plain)
	}
}

func (this Content) String() string {
	v, err := this.MarshalText()
	if err != nil {
		return fmt.Sprintf("illegal-playback-content-%d", this)
	}
	return string(v)
}

func (this Content) MarshalText() (text []byte, err error) {
	switch this {
	case ContentNothing:
		return []byte("nothing"), nil
	case ContentTrack:
		return []byte("track"), nil
	case ContentAdvertisement:
		return []byte("advertisement"), nil
	default:
		return nil, fmt.Errorf("illegal playback content: %d", this)
	}
}

func (this *Content) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

type Contents []Content

func (this Contents) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this Contents) String() string {
	return strings.Join(this.Strings(), ",")
}
