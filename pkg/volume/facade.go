package volume

import (
	"fmt"
	"sync"
	"sync/atomic"

	log "github.com/echocat/slf4g"
)

// Facade delegates to the Actuator selected by Configuration.Type.
type Facade struct {
	Actuator

	lock  sync.RWMutex
	muted atomic.Bool
}

func (this *Facade) Initialize(conf *Configuration) error {
	this.lock.Lock()
	defer this.lock.Unlock()

	if this.Actuator != nil {
		return nil
	}

	switch conf.Type {
	case TypeSystem:
		buf, err := NewSystem()
		if err != nil {
			return err
		}
		this.Actuator = buf
	case TypeCommand:
		buf, err := NewCommand(conf.MuteCommand, conf.RestoreCommand)
		if err != nil {
			return err
		}
		this.Actuator = buf
	case TypeNone:
		this.Actuator = &None{}
	default:
		return fmt.Errorf("unsupported volume type: %v", conf.Type)
	}

	log.With("type", conf.Type).
		Debug("Volume actuator initialized.")

	return nil
}

func (this *Facade) Mute() error {
	this.lock.RLock()
	defer this.lock.RUnlock()

	if v := this.Actuator; v != nil {
		if err := v.Mute(); err != nil {
			return err
		}
		this.muted.Store(true)
	}
	return nil
}

func (this *Facade) Restore() error {
	this.lock.RLock()
	defer this.lock.RUnlock()

	if v := this.Actuator; v != nil {
		if err := v.Restore(); err != nil {
			return err
		}
		this.muted.Store(false)
	}
	return nil
}

// Dispose restores the volume before the actuator is released if it was
// muted by this Facade, so the audio output is never left muted. A mute
// of the user is left untouched.
func (this *Facade) Dispose() (rErr error) {
	this.lock.Lock()
	defer this.lock.Unlock()

	v := this.Actuator
	if v == nil {
		return nil
	}
	defer func() {
		this.Actuator = nil
	}()
	defer func() {
		if err := v.Dispose(); err != nil && rErr == nil {
			rErr = err
		}
	}()

	if !this.muted.Load() {
		return nil
	}
	if err := v.Restore(); err != nil {
		return err
	}
	this.muted.Store(false)
	return nil
}

func (this *Facade) GetType() Type {
	this.lock.RLock()
	defer this.lock.RUnlock()

	if v := this.Actuator; v != nil {
		return v.GetType()
	}
	return TypeDefault
}
