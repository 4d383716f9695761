package monitor

import (
	"fmt"
	"strings"
)

type State uint8

const (
	StatePolling      = State(0)
	StateTrackPlaying = State(1)
	StateAdPlaying    = State(2)
	StateStopped      = State(3)
)

func (this State) String() string {
	v, err := this.MarshalText()
	if err != nil {
		return fmt.Sprintf("illegal-monitor-state-%d", this)
	}
	return string(v)
}

func (this State) MarshalText() (text []byte, err error) {
	switch this {
	case StatePolling:
		return []byte("polling"), nil
	case StateTrackPlaying:
		return []byte("trackPlaying"), nil
	case StateAdPlaying:
		return []byte("adPlaying"), nil
	case StateStopped:
		return []byte("stopped"), nil
	default:
		return nil, fmt.Errorf("illegal monitor state: %d", this)
	}
}

func (this *State) UnmarshalText(text []byte) error {
	switch strings.TrimSpace(strings.ToLower(string(text))) {
	case "polling":
		*this = StatePolling
	case "trackplaying", "track":
		*this = StateTrackPlaying
	case "adplaying", "ad":
		*this = StateAdPlaying
	case "stopped":
		*this = StateStopped
	default:
		return fmt.Errorf("illegal-monitor-state: %s", string(text))
	}
	return nil
}

// IsTerminal reports whether no further polls follow this state.
func (this State) IsTerminal() bool {
	return this == StateStopped
}
