package app

import (
	"context"
	"os"
	"reflect"

	"dario.cat/mergo"
	log "github.com/echocat/slf4g"

	"github.com/blaubaer/silentify/pkg/common"
	"github.com/blaubaer/silentify/pkg/monitor"
	"github.com/blaubaer/silentify/pkg/player"
	"github.com/blaubaer/silentify/pkg/spotify"
	"github.com/blaubaer/silentify/pkg/volume"
)

func NewApp() *App {
	return &App{
		config: NewConfiguration(),
	}
}

type App struct {
	Volume            volume.Facade
	ConfigurationFile string

	configFromFlags Configuration
	config          Configuration
	session         *spotify.Session
}

func (this *App) SetupConfiguration(using common.FlagHolder) {
	this.configFromFlags.SetupConfiguration(using)

	using.Flag("configuration", "Defines the file from which the configuration should be loaded and/or stored to.").
		Short('c').
		Envar("SILENTIFY_CONFIGURATION").
		StringVar(&this.ConfigurationFile)
}

// Run monitors the playback until nothing is playing anymore.
func (this *App) Run(ctx context.Context) error {
	m := monitor.New(this.session, &this.Volume, this.config.Monitor)
	return m.Run(ctx)
}

func (this *App) Initialize(ctx context.Context) (rErr error) {
	success := false
	defer func() {
		if !success {
			if err := this.Dispose(); err != nil && rErr == nil {
				rErr = err
			}
		}
	}()

	if err := this.loadConf(); err != nil {
		return err
	}

	if err := this.Volume.Initialize(&this.config.Volume); err != nil {
		return err
	}

	if err := this.saveConf(false); err != nil {
		return err
	}

	this.detectPlayer()

	session, err := spotify.Connect(ctx, &this.config.Spotify, this.alwaysSaveConf)
	if err != nil {
		return err
	}
	this.session = session
	log.With("user", session.User.Id).
		Infof("The current logged in user is %v", session.User)

	success = true
	return nil
}

func (this *App) loadConf() error {
	if err := this.config.loadFromFile(this.configurationFile(), true); err != nil {
		return err
	}
	if err := mergo.Merge(&this.config, this.configFromFlags, mergo.WithOverride, mergo.WithTransformers(regexpTransformer{})); err != nil {
		return err
	}
	return nil
}

// regexpTransformer only takes over regular expressions which are set;
// mergo would otherwise override with empty ones, as they do not have any
// exported field.
type regexpTransformer struct{}

func (this regexpTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf(common.Regexp{}) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if v, ok := src.Interface().(common.Regexp); ok && v.HasContent() && dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}

func (this *App) detectPlayer() {
	running, err := player.NewDetector(&this.config.Player).IsRunning()
	if err != nil {
		log.WithError(err).
			Warn("Cannot detect whether the playback client is running.")
		return
	}
	if !running {
		log.With("processName", this.config.Player.ProcessName).
			Warn("The playback client does not seem to be running.")
	}
}

func (this *App) configurationFile() string {
	if v := this.ConfigurationFile; v != "" {
		return v
	}
	return defaultConfigurationFile()
}

func (this *App) alwaysSaveConf() error {
	return this.saveConf(true)
}

func (this *App) saveConf(always bool) error {
	if this.config.PreventAutoSave {
		log.Debug("Automatically save of configuration disabled.")
		return nil
	}

	fn := this.configurationFile()
	if !always {
		_, err := os.Stat(fn)
		if os.IsNotExist(err) {
			log.With("file", fn).Info("Configuration absent.")
			// Ok, we should save...
		} else if err != nil {
			return err
		} else {
			// Does exist, skip...
			return nil
		}
	}

	if err := this.config.saveToFile(fn); err != nil {
		return err
	}

	log.With("file", fn).Info("Configuration saved.")

	return nil
}

// Dispose restores the volume, even if the monitor was interrupted while
// an advertisement muted it.
func (this *App) Dispose() error {
	return this.Volume.Dispose()
}
