package common

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	log "github.com/echocat/slf4g"
)

type settable interface {
	IsZero() bool
	Set(string) error
}

// Prompt requests a value on the terminal.
type Prompt struct {
	Name       string
	CanBeEmpty bool
	Secret     bool

	// Stdin and Stdout default to os.Stdin and os.Stderr.
	Stdin  io.ReadCloser
	Stdout io.Writer
}

// RequestIfRequired asks for a value until of is not zero anymore. Nothing
// is requested if of is already set.
func (this Prompt) RequestIfRequired(of settable) error {
	if !of.IsZero() {
		return nil
	}

	l, err := readline.NewEx(this.readlineConfig())
	if err != nil {
		return fmt.Errorf("could not read from terminal for prompt %q: %w", this.Name, err)
	}
	defer func() {
		_ = l.Close()
	}()

	prompt := fmt.Sprintf("Enter %s: ", this.Name)
	l.SetPrompt(prompt)
	if this.Secret {
		l.SetMaskRune('*')
	}
	l.ResetHistory()
	for of.IsZero() {
		var line string
		if this.Secret {
			var b []byte
			b, err = l.ReadPassword(prompt)
			line = string(b)
		} else {
			line, err = l.Readline()
		}
		if err != nil {
			return fmt.Errorf("could not read from terminal for prompt %q: %w", this.Name, err)
		}
		if err := of.Set(line); err != nil {
			log.WithError(err).
				With("prompt", this.Name).
				Error("Illegal value.")
		}
		if this.CanBeEmpty && of.IsZero() {
			return nil
		}
	}
	return nil
}

func (this Prompt) RequestStringIfRequired(of *string) error {
	buf := rawString(*of)
	if err := this.RequestIfRequired(&buf); err != nil {
		return err
	}
	*of = string(buf)
	return nil
}

func (this Prompt) readlineConfig() *readline.Config {
	result := &readline.Config{
		Stdin:  os.Stdin,
		Stdout: this.stdout(),
	}
	if v := this.Stdin; v != nil {
		// Not a terminal, raw mode must not touch the process' stdin.
		result.Stdin = v
		result.FuncIsTerminal = func() bool { return false }
		result.FuncMakeRaw = func() error { return nil }
		result.FuncExitRaw = func() error { return nil }
	}
	return result
}

func (this Prompt) stdout() io.Writer {
	if v := this.Stdout; v != nil {
		return v
	}
	return os.Stderr
}

type rawString []byte

func (v rawString) IsZero() bool {
	return len(v) == 0
}

func (v *rawString) Set(s string) error {
	*v = rawString(s)
	return nil
}
