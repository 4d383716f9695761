//go:build linux

package volume

import (
	"fmt"
	"os/exec"
)

// NewSystem mutes the default sink of PulseAudio (or PipeWire with its
// PulseAudio compatibility), falling back to ALSA's Master control.
func NewSystem() (Actuator, error) {
	if _, err := exec.LookPath("pactl"); err == nil {
		return &Exec{
			MuteArgs:    []string{"pactl", "set-sink-mute", "@DEFAULT_SINK@", "1"},
			RestoreArgs: []string{"pactl", "set-sink-mute", "@DEFAULT_SINK@", "0"},
			typ:         TypeSystem,
		}, nil
	}
	if _, err := exec.LookPath("amixer"); err == nil {
		return &Exec{
			MuteArgs:    []string{"amixer", "-q", "set", "Master", "mute"},
			RestoreArgs: []string{"amixer", "-q", "set", "Master", "unmute"},
			typ:         TypeSystem,
		}, nil
	}
	return nil, fmt.Errorf("neither pactl nor amixer found; use volume type %v or %v", TypeCommand, TypeNone)
}
