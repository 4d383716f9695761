package volume

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	log "github.com/echocat/slf4g"
)

const execTimeout = 10 * time.Second

// Exec mutes and restores the volume by executing external commands.
type Exec struct {
	MuteArgs    []string
	RestoreArgs []string

	typ   Type
	run   func(ctx context.Context, args []string) error
	muted *bool
	mutex sync.Mutex
}

func (this *Exec) Mute() error {
	return this.apply(true, this.MuteArgs)
}

func (this *Exec) Restore() error {
	return this.apply(false, this.RestoreArgs)
}

func (this *Exec) apply(muted bool, args []string) error {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	ctx, cancelFunc := context.WithTimeout(context.Background(), execTimeout)
	defer cancelFunc()

	if err := this.runner()(ctx, args); err != nil {
		return err
	}

	if this.muted == nil || *this.muted != muted {
		log.With("muted", muted).
			With("command", args).
			Debug("Volume changed.")
	}
	this.muted = &muted
	return nil
}

func (this *Exec) runner() func(ctx context.Context, args []string) error {
	if v := this.run; v != nil {
		return v
	}
	return runCommand
}

func (this *Exec) Dispose() error {
	return nil
}

func (this *Exec) GetType() Type {
	return this.typ
}

func runCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command to execute")
	}
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("cannot execute %v: %w: %s", args, err, msg)
		}
		return fmt.Errorf("cannot execute %v: %w", args, err)
	}
	return nil
}

// NewCommand creates an actuator which executes the given command lines
// using the shell of the platform.
func NewCommand(muteCommand, restoreCommand string) (*Exec, error) {
	if strings.TrimSpace(muteCommand) == "" {
		return nil, fmt.Errorf("volume.muteCommand is required for volume type %v", TypeCommand)
	}
	if strings.TrimSpace(restoreCommand) == "" {
		return nil, fmt.Errorf("volume.restoreCommand is required for volume type %v", TypeCommand)
	}
	return &Exec{
		MuteArgs:    shellArgs(muteCommand),
		RestoreArgs: shellArgs(restoreCommand),
		typ:         TypeCommand,
	}, nil
}
