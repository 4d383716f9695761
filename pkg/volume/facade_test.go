package volume

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_none(t *testing.T) {
	var instance Facade
	conf := NewConfiguration()
	conf.Type = TypeNone

	require.NoError(t, instance.Initialize(&conf))
	assert.Equal(t, TypeNone, instance.GetType())
	assert.NoError(t, instance.Mute())
	assert.NoError(t, instance.Mute())
	assert.NoError(t, instance.Restore())
	assert.NoError(t, instance.Restore())
	assert.NoError(t, instance.Dispose())
	assert.Nil(t, instance.Actuator)

	assert.NoError(t, instance.Mute())
	assert.NoError(t, instance.Dispose())
}

func TestFacade_commandRequiresCommands(t *testing.T) {
	var instance Facade
	conf := NewConfiguration()
	conf.Type = TypeCommand

	assert.Error(t, instance.Initialize(&conf))
	assert.Nil(t, instance.Actuator)
}

func TestFacade_disposeRestores(t *testing.T) {
	recorder := &recordingActuator{}
	instance := Facade{Actuator: recorder}

	require.NoError(t, instance.Mute())
	require.NoError(t, instance.Dispose())

	assert.Equal(t, []string{"mute", "restore", "dispose"}, recorder.actions)
}

func TestFacade_disposeLeavesVolumeUntouchedIfNeverMuted(t *testing.T) {
	recorder := &recordingActuator{}
	instance := Facade{Actuator: recorder}

	require.NoError(t, instance.Dispose())

	assert.Equal(t, []string{"dispose"}, recorder.actions)
}

func TestFacade_disposeAfterRestore(t *testing.T) {
	recorder := &recordingActuator{}
	instance := Facade{Actuator: recorder}

	require.NoError(t, instance.Mute())
	require.NoError(t, instance.Restore())
	require.NoError(t, instance.Dispose())

	assert.Equal(t, []string{"mute", "restore", "dispose"}, recorder.actions)
}

func TestFacade_failedMuteIsNotRestoredOnDispose(t *testing.T) {
	recorder := &recordingActuator{muteErr: errors.New("expected")}
	instance := Facade{Actuator: recorder}

	assert.Error(t, instance.Mute())
	require.NoError(t, instance.Dispose())

	assert.Equal(t, []string{"mute", "dispose"}, recorder.actions)
}

func TestType_Set(t *testing.T) {
	var actual Type
	require.NoError(t, actual.Set("Command"))
	assert.Equal(t, TypeCommand, actual)
	require.NoError(t, actual.Set("dry"))
	assert.Equal(t, TypeNone, actual)
	require.NoError(t, actual.Set("system"))
	assert.Equal(t, TypeSystem, actual)
	assert.Error(t, actual.Set("foo"))
	assert.Equal(t, "system,command,none", AllTypes.String())
}

type recordingActuator struct {
	actions []string
	muteErr error
}

func (this *recordingActuator) Mute() error {
	this.actions = append(this.actions, "mute")
	return this.muteErr
}

func (this *recordingActuator) Restore() error {
	this.actions = append(this.actions, "restore")
	return nil
}

func (this *recordingActuator) Dispose() error {
	this.actions = append(this.actions, "dispose")
	return nil
}

func (this *recordingActuator) GetType() Type {
	return TypeNone
}
