package volume

// Actuator mutes and restores the local audio output. Both operations are
// idempotent.
type Actuator interface {
	Mute() error
	Restore() error

	Dispose() error
	GetType() Type
}
