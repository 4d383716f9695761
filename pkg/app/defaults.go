package app

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/blaubaer/silentify/pkg/common"
	"github.com/blaubaer/silentify/pkg/monitor"
	"github.com/blaubaer/silentify/pkg/player"
	"github.com/blaubaer/silentify/pkg/spotify"
	"github.com/blaubaer/silentify/pkg/volume"
)

func NewConfiguration() Configuration {
	return Configuration{
		false,

		spotify.NewConfiguration(),
		volume.NewConfiguration(),
		monitor.NewConfiguration(),
		player.NewConfiguration(),
	}
}

type Configuration struct {
	PreventAutoSave bool `yaml:"preventAutoSave"`

	Spotify spotify.Configuration `yaml:"spotify,omitempty"`
	Volume  volume.Configuration  `yaml:"volume,omitempty"`
	Monitor monitor.Configuration `yaml:"monitor,omitempty"`
	Player  player.Configuration  `yaml:"player,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("preventAutoSave", "If provided configuration will NOT automatically be saved upon changes.").
		Envar("SILENTIFY_PREVENT_AUTO_SAVE").
		BoolVar(&this.PreventAutoSave)

	this.Spotify.SetupConfiguration(using)
	this.Volume.SetupConfiguration(using)
	this.Monitor.SetupConfiguration(using)
	this.Player.SetupConfiguration(using)
}

func defaultConfigurationFile() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "silentify", "configuration.yml")
	}

	u, err := user.Current()
	if err != nil {
		return "configuration.yml"
	}

	return filepath.Join(u.HomeDir, ".config", "silentify", "configuration.yml")
}
