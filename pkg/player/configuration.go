package player

import "github.com/blaubaer/silentify/pkg/common"

func NewConfiguration() Configuration {
	return Configuration{
		common.MustNewRegexp(`(?i)^spotify(\.exe)?$`),
	}
}

type Configuration struct {
	ProcessName common.Regexp `yaml:"processName"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("player.processName", "Name as regex of the process of the desktop playback client.").
		Envar("SILENTIFY_PLAYER_PROCESS_NAME").
		SetValue(&this.ProcessName)
}
