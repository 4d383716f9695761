package volume

import "github.com/blaubaer/silentify/pkg/common"

func NewConfiguration() Configuration {
	return Configuration{
		Type: TypeDefault,
	}
}

type Configuration struct {
	Type Type `yaml:"type"`

	// MuteCommand and RestoreCommand are only used with TypeCommand. They
	// are executed using the shell of the platform.
	MuteCommand    string `yaml:"muteCommand,omitempty"`
	RestoreCommand string `yaml:"restoreCommand,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("volume.type", "How the volume is muted and restored. Possible values: "+AllTypes.String()).
		Envar("SILENTIFY_VOLUME_TYPE").
		SetValue(&this.Type)
	using.Flag("volume.muteCommand", "Command which mutes the audio output, if volume.type is command.").
		Envar("SILENTIFY_VOLUME_MUTE_COMMAND").
		StringVar(&this.MuteCommand)
	using.Flag("volume.restoreCommand", "Command which restores the audio output, if volume.type is command.").
		Envar("SILENTIFY_VOLUME_RESTORE_COMMAND").
		StringVar(&this.RestoreCommand)
}
