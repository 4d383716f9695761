package volume

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExec_idempotent(t *testing.T) {
	var executed [][]string
	instance := &Exec{
		MuteArgs:    []string{"mute"},
		RestoreArgs: []string{"restore"},
		run: func(_ context.Context, args []string) error {
			executed = append(executed, args)
			return nil
		},
	}

	require.NoError(t, instance.Restore())
	require.NoError(t, instance.Restore())
	require.NoError(t, instance.Mute())
	require.NoError(t, instance.Mute())
	require.NoError(t, instance.Restore())

	assert.Equal(t, [][]string{{"restore"}, {"restore"}, {"mute"}, {"mute"}, {"restore"}}, executed)
	require.NotNil(t, instance.muted)
	assert.False(t, *instance.muted)
}

func TestExec_failure(t *testing.T) {
	expected := errors.New("expected")
	instance := &Exec{
		MuteArgs: []string{"mute"},
		run: func(context.Context, []string) error {
			return expected
		},
	}

	assert.ErrorIs(t, instance.Mute(), expected)
	assert.Nil(t, instance.muted)
}

func TestNewCommand(t *testing.T) {
	actual, err := NewCommand("echo mute", "echo restore")
	require.NoError(t, err)
	assert.Equal(t, TypeCommand, actual.GetType())
	assert.Equal(t, shellArgs("echo mute"), actual.MuteArgs)
	assert.Equal(t, shellArgs("echo restore"), actual.RestoreArgs)

	_, err = NewCommand("", "echo restore")
	assert.Error(t, err)
	_, err = NewCommand("echo mute", " ")
	assert.Error(t, err)
}

func TestRunCommand_empty(t *testing.T) {
	assert.Error(t, runCommand(context.Background(), nil))
}
