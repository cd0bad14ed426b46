//go:build unit

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"init", "add", "remove", "list", "sync", "query", "info", "resolve", "run", "cache"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	cmd, _, err := root.Find([]string{"cache", "lookup"})
	require.NoError(t, err)
	assert.Equal(t, "lookup", cmd.Name())
}

func TestRootCmd_Aliases(t *testing.T) {
	root := newRootCmd()

	cmd, _, err := root.Find([]string{"install"})
	require.NoError(t, err)
	assert.Equal(t, "add", cmd.Name())

	cmd, _, err = root.Find([]string{"rm"})
	require.NoError(t, err)
	assert.Equal(t, "remove", cmd.Name())
}

func TestRootCmd_ArgumentValidation(t *testing.T) {
	tests := [][]string{
		{"add"},
		{"remove"},
		{"resolve", "org/hooks"},
		{"run"},
		{"cache", "lookup"},
		{"list", "extra"},
	}

	for _, args := range tests {
		root := newRootCmd()
		root.SetArgs(args)
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})

		assert.Error(t, root.Execute(), args)
	}
}

func TestAddCmd_Flags(t *testing.T) {
	cmd := createAddCmd()

	hook := cmd.Flags().Lookup("hook")
	require.NotNil(t, hook)
	assert.Equal(t, "pre-commit", hook.DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("version"))
	assert.NotNil(t, cmd.Flags().Lookup("global"))
}
