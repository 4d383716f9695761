//go:build darwin

package volume

// NewSystem mutes the output of the system using AppleScript.
func NewSystem() (Actuator, error) {
	return &Exec{
		MuteArgs:    []string{"osascript", "-e", "set volume with output muted"},
		RestoreArgs: []string{"osascript", "-e", "set volume without output muted"},
		typ:         TypeSystem,
	}, nil
}
