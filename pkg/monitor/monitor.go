package monitor

import (
	"context"
	"errors"
	"time"

	log "github.com/echocat/slf4g"

	"github.com/blaubaer/silentify/pkg/playback"
)

// Query retrieves the current playback of a session.
type Query interface {
	CurrentPlayback(ctx context.Context) (playback.Snapshot, error)
}

// Actuator mutes and restores the local audio output. Both operations
// have to be idempotent.
type Actuator interface {
	Mute() error
	Restore() error
}

// Decision is the outcome of one Step.
type Decision struct {
	State State
	Wait  time.Duration
}

type Monitor struct {
	Query         Query
	Actuator      Actuator
	Configuration Configuration

	// Sleep is used to wait between polls and between failed queries. If
	// nil the monitor waits using time.After.
	Sleep func(ctx context.Context, d time.Duration) error

	state State
}

func New(query Query, actuator Actuator, conf Configuration) *Monitor {
	return &Monitor{
		Query:         query,
		Actuator:      actuator,
		Configuration: conf,
	}
}

// State returns the state reached by the latest Step.
func (this *Monitor) State() State {
	return this.state
}

// Run polls until nothing is playing anymore (nil is returned), the
// context is done (the context's error is returned) or a query fails
// unrecoverable (a *playback.QueryError is returned).
func (this *Monitor) Run(ctx context.Context) error {
	for {
		decision, err := this.Step(ctx)
		if err != nil {
			return err
		}
		if decision.State.IsTerminal() {
			return nil
		}

		log.With("wait", decision.Wait).
			Infof("Checking again in %d seconds...", int64(decision.Wait/time.Second))
		if err := this.sleep(ctx, decision.Wait); err != nil {
			return err
		}
		log.With("wait", decision.Wait).
			Debugf("Waited for %d seconds.", int64(decision.Wait/time.Second))

		this.transit(StatePolling)
	}
}

// Step polls the playback once, applies the matching volume action and
// returns how long to wait before the next Step.
func (this *Monitor) Step(ctx context.Context) (Decision, error) {
	snapshot, err := this.query(ctx)
	if err != nil {
		return Decision{}, err
	}

	switch snapshot.Content() {
	case playback.ContentTrack:
		return this.onTrack(snapshot), nil
	case playback.ContentAdvertisement:
		return this.onAdvertisement(), nil
	default:
		return this.onNothing(), nil
	}
}

func (this *Monitor) onTrack(snapshot playback.Snapshot) Decision {
	this.transit(StateTrackPlaying)
	if err := this.Actuator.Restore(); err != nil {
		log.WithError(err).
			Warn("Cannot restore volume.")
	}

	info, _ := snapshot.Track()
	log.With("kind", info.Kind).
		With("name", info.Name).
		With("artists", info.Artists).
		With("duration", info.Duration).
		With("progress", snapshot.Elapsed()).
		Infof("Currently playing %s is %s by %s lasting for %d seconds with %d seconds already played.",
			info.Kind, info.Name, info.ArtistsString(), int64(info.Duration/time.Second), int64(snapshot.Elapsed()/time.Second))

	wait := snapshot.Remaining()
	if minimum := this.Configuration.minimumWait(); wait < minimum {
		wait = minimum
	}
	return Decision{StateTrackPlaying, wait}
}

func (this *Monitor) onAdvertisement() Decision {
	this.transit(StateAdPlaying)
	wait := this.Configuration.adLength()
	log.With("wait", wait).
		Infof("An ad is playing. Muting for %d seconds...", int64(wait/time.Second))
	if err := this.Actuator.Mute(); err != nil {
		log.WithError(err).
			Warn("Cannot mute volume.")
	}
	return Decision{StateAdPlaying, wait}
}

func (this *Monitor) onNothing() Decision {
	this.transit(StateStopped)
	log.Info("Nothing is currently playing. Check that something is playing. Exiting...")
	return Decision{StateStopped, 0}
}

func (this *Monitor) query(ctx context.Context) (playback.Snapshot, error) {
	attempts := this.Configuration.queryAttempts()
	backoff := this.Configuration.QueryBackoff

	var lastErr *playback.QueryError
	for attempt := uint(1); attempt <= attempts; attempt++ {
		snapshot, err := this.Query.CurrentPlayback(ctx)
		if err == nil {
			return snapshot, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return playback.Snapshot{}, ctxErr
		}

		if !errors.As(err, &lastErr) {
			lastErr = &playback.QueryError{Op: "query current playback", Err: err}
		}
		if !lastErr.Retryable || attempt >= attempts {
			break
		}

		wait := backoff
		if lastErr.RetryAfter > wait {
			wait = lastErr.RetryAfter
		}
		log.WithError(err).
			With("attempt", attempt).
			With("attempts", attempts).
			With("wait", wait).
			Warn("Cannot query current playback. Will retry...")
		if err := this.sleep(ctx, wait); err != nil {
			return playback.Snapshot{}, err
		}
		backoff *= 2
	}

	return playback.Snapshot{}, lastErr
}

func (this *Monitor) transit(state State) {
	if this.state == state {
		return
	}
	log.With("lastState", this.state).
		With("state", state).
		Debug("State change detected.")
	this.state = state
}

func (this *Monitor) sleep(ctx context.Context, d time.Duration) error {
	if v := this.Sleep; v != nil {
		return v(ctx, d)
	}
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		log.Debug("Monitor loop interrupted.")
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
