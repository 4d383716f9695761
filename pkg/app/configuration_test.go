package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaubaer/silentify/pkg/common"
	"github.com/blaubaer/silentify/pkg/monitor"
	"github.com/blaubaer/silentify/pkg/player"
	"github.com/blaubaer/silentify/pkg/volume"
)

func TestConfiguration_loadFrom(t *testing.T) {
	instance := NewConfiguration()

	require.NoError(t, instance.loadFrom(strings.NewReader(`
monitor:
  adLength: 45s
volume:
  type: command
  muteCommand: mute-it
  restoreCommand: restore-it
player:
  processName: ^foo$
`)))

	assert.Equal(t, 45*time.Second, instance.Monitor.AdLength)
	assert.Equal(t, monitor.DefaultQueryAttempts, instance.Monitor.QueryAttempts)
	assert.Equal(t, volume.TypeCommand, instance.Volume.Type)
	assert.Equal(t, "mute-it", instance.Volume.MuteCommand)
	assert.Equal(t, "^foo$", instance.Player.ProcessName.String())
}

func TestConfiguration_loadFrom_empty(t *testing.T) {
	instance := NewConfiguration()
	require.NoError(t, instance.loadFrom(strings.NewReader("")))
	assert.Equal(t, NewConfiguration().Monitor, instance.Monitor)
}

func TestConfiguration_loadFrom_unknownField(t *testing.T) {
	instance := NewConfiguration()
	assert.Error(t, instance.loadFrom(strings.NewReader("foo: bar\n")))
}

func TestConfiguration_saveToFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", "configuration.yml")
	instance := NewConfiguration()
	instance.Spotify.ClientId = "anId"

	require.NoError(t, instance.saveToFile(fn))

	var buf bytes.Buffer
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	buf.Write(b)
	assert.Contains(t, buf.String(), "clientId: anId")

	loaded := Configuration{}
	require.NoError(t, loaded.loadFromFile(fn, false))
	assert.Equal(t, "anId", loaded.Spotify.ClientId)
	assert.Equal(t, instance.Monitor, loaded.Monitor)
	assert.Equal(t, instance.Volume, loaded.Volume)
}

func TestConfiguration_loadFromFile_absent(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "absent.yml")
	instance := NewConfiguration()

	assert.NoError(t, instance.loadFromFile(fn, true))
	assert.Error(t, instance.loadFromFile(fn, false))
}

func TestApp_loadConf_flagsOverrideFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "configuration.yml")
	require.NoError(t, os.WriteFile(fn, []byte("monitor:\n  adLength: 45s\n  queryAttempts: 5\n"), 0600))

	instance := NewApp()
	instance.ConfigurationFile = fn
	instance.configFromFlags.Monitor.AdLength = 20 * time.Second

	require.NoError(t, instance.loadConf())
	assert.Equal(t, 20*time.Second, instance.config.Monitor.AdLength)
	assert.Equal(t, uint(5), instance.config.Monitor.QueryAttempts)
	assert.Equal(t, monitor.DefaultQueryBackoff, instance.config.Monitor.QueryBackoff)
	assert.Equal(t, player.NewConfiguration().ProcessName.String(), instance.config.Player.ProcessName.String())
	assert.Equal(t, volume.TypeSystem, instance.config.Volume.Type)
}

func TestApp_loadConf_regexpFromFlags(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "configuration.yml")
	require.NoError(t, os.WriteFile(fn, []byte("player:\n  processName: ^foo$\n"), 0600))

	instance := NewApp()
	instance.ConfigurationFile = fn
	instance.configFromFlags.Player.ProcessName = common.MustNewRegexp("^bar$")

	require.NoError(t, instance.loadConf())
	assert.Equal(t, "^bar$", instance.config.Player.ProcessName.String())
}
