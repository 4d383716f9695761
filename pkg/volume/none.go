package volume

import (
	log "github.com/echocat/slf4g"
)

// None does not touch the audio output at all. It only reports what would
// have been done.
type None struct{}

func (this *None) Mute() error {
	log.Info("Would mute volume now.")
	return nil
}

func (this *None) Restore() error {
	log.Debug("Would restore volume now.")
	return nil
}

func (this *None) Dispose() error {
	return nil
}

func (this *None) GetType() Type {
	return TypeNone
}
