package monitor

import (
	"time"

	"github.com/blaubaer/silentify/pkg/common"
)

const (
	// DefaultAdLength is used as wait time while an advertisement is
	// playing, because the service does not report the length of ads.
	DefaultAdLength = 30 * time.Second

	DefaultQueryAttempts = uint(3)
	DefaultQueryBackoff  = time.Second

	// DefaultMinimumWait is the floor of every wait while a track is
	// playing, so that skewed progress does not poll in a tight loop.
	DefaultMinimumWait = time.Second
)

func NewConfiguration() Configuration {
	return Configuration{
		DefaultAdLength,
		DefaultQueryAttempts,
		DefaultQueryBackoff,
		DefaultMinimumWait,
	}
}

type Configuration struct {
	AdLength time.Duration `yaml:"adLength,omitempty"`

	QueryAttempts uint          `yaml:"queryAttempts,omitempty"`
	QueryBackoff  time.Duration `yaml:"queryBackoff,omitempty"`

	MinimumWait time.Duration `yaml:"minimumWait,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("monitor.adLength", "How long the volume stays muted after an advertisement was detected, before the playback is checked again.").
		Envar("SILENTIFY_MONITOR_AD_LENGTH").
		DurationVar(&this.AdLength)
	using.Flag("monitor.queryAttempts", "How often the playback query is attempted before the monitor gives up.").
		Envar("SILENTIFY_MONITOR_QUERY_ATTEMPTS").
		UintVar(&this.QueryAttempts)
	using.Flag("monitor.queryBackoff", "Initial wait time between failed playback queries. Doubles with each attempt.").
		Envar("SILENTIFY_MONITOR_QUERY_BACKOFF").
		DurationVar(&this.QueryBackoff)
	using.Flag("monitor.minimumWait", "Shortest wait time before the playback is checked again while a track is playing.").
		Envar("SILENTIFY_MONITOR_MINIMUM_WAIT").
		DurationVar(&this.MinimumWait)
}

func (this Configuration) adLength() time.Duration {
	if v := this.AdLength; v > 0 {
		return v
	}
	return DefaultAdLength
}

func (this Configuration) queryAttempts() uint {
	if v := this.QueryAttempts; v > 0 {
		return v
	}
	return 1
}

func (this Configuration) minimumWait() time.Duration {
	if v := this.MinimumWait; v > 0 {
		return v
	}
	return DefaultMinimumWait
}
