package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"
	"github.com/echocat/slf4g/native"
	"github.com/echocat/slf4g/native/facade/value"
	"github.com/echocat/slf4g/native/formatter"
	"github.com/joho/godotenv"

	"github.com/blaubaer/silentify/pkg/app"
	"github.com/blaubaer/silentify/pkg/common"
	"github.com/blaubaer/silentify/pkg/playback"
)

func main() {
	// Values of an optional .env file are provided as environment variables
	// to the flags below.
	_ = godotenv.Load()

	lv := value.NewProvider(native.DefaultProvider)
	lv.Consumer.Formatter.Codec = value.MappingFormatterCodec{
		"text": formatter.NewText(func(v *formatter.Text) {
			bv := true
			v.AllowMultiLineMessage = &bv
			v.MultiLineMessageAfterFields = &bv
		}),
		"json": formatter.NewJson(),
	}

	a := app.NewApp()

	cmd := kingpin.New(os.Args[0], "Mutes the audio output while Spotify plays advertisements.").
		Action(func(*kingpin.ParseContext) error {
			os.Exit(run(a))
			return nil
		})
	a.SetupConfiguration(cmd)

	cmd.Flag("log.level", "").
		Envar("SILENTIFY_LOG_LEVEL").
		SetValue(lv.Level)
	cmd.Flag("log.format", "").
		Default("text").
		Envar("SILENTIFY_LOG_FORMAT").
		SetValue(lv.Consumer.Formatter)
	cmd.Flag("log.color", "").
		Default("auto").
		Envar("SILENTIFY_LOG_COLOR").
		SetValue(lv.Consumer.Formatter.ColorMode)

	kingpin.MustParse(cmd.Parse(os.Args[1:]))
}

func run(a *app.App) int {
	log.Info("Starting Silentify...")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := a.Initialize(ctx); err != nil {
		log.WithError(err).
			Error("Cannot initialize.")
		return 1
	}
	defer func() {
		if err := a.Dispose(); err != nil {
			log.WithError(err).
				Warn("Cannot restore volume.")
		}
	}()

	err := a.Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("Terminated. Going down...")
		return 0
	}
	if qErr, ok := common.AsError[*playback.QueryError](err); ok {
		log.WithError(qErr.Err).
			With("op", qErr.Op).
			Error("Cannot retrieve playback state from Spotify. Exiting...")
		return 1
	}
	if err != nil {
		log.WithError(err).
			Error("Monitor failed.")
		return 1
	}
	return 0
}
