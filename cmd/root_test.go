package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCmd_Exists verifies the root command is wired up.
func TestRootCmd_Exists(t *testing.T) {
	require.NotNil(t, rootCmd, "Root command should exist")
	assert.Equal(t, "ednamap", rootCmd.Use,
		"Command name should be ednamap")
}

// TestRootCmd_VersionFormat verifies version output format.
func TestRootCmd_VersionFormat(t *testing.T) {
	rootCmd.Version = "version: v1.2.3\nbuild:   abc123"

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--version"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "v1.2.3",
		"Version output should contain version")
	assert.Contains(t, output, "abc123",
		"Version output should contain build")
}

// TestRootCmd_ShortVersionFlag verifies -V flag works.
func TestRootCmd_ShortVersionFlag(t *testing.T) {
	rootCmd.Version = "version: v1.2.3\nbuild:   abc123"

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-V"})

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "v1.2.3",
		"Version output should work with -V flag")
}

// TestRootCmd_Subcommands verifies all subcommands are registered.
func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, name := range []string{
		"ingest", "inspect", "serve", "export",
	} {
		assert.True(t, names[name],
			"Subcommand %s should be registered", name)
	}
}
