package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "pharmkit", cmd.Use)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"generate", "consensus", "export"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}

	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
}

func TestConsensusCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	sub, _, err := cmd.Find([]string{"consensus"})
	require.NoError(t, err)

	for _, want := range []string{"out-folder", "diagnostics", "hdist", "proximity-radius"} {
		assert.NotNil(t, sub.Flags().Lookup(want), "missing flag %s", want)
	}
}

func TestGenerateCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	sub, _, err := cmd.Find([]string{"generate"})
	require.NoError(t, err)

	for _, want := range []string{"receptor", "ligand", "out"} {
		assert.NotNil(t, sub.Flags().Lookup(want), "missing flag %s", want)
	}

	ligand := sub.Flags().Lookup("ligand")
	require.NotNil(t, ligand)
	assert.Contains(t, ligand.Annotations, cobra.BashCompOneRequiredFlag, "ligand flag must be required")
}

func TestRootCommandRejectsBadLogLevel(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"export", "--log-level", "verbose", "nonexistent.json"})
	assert.Error(t, cmd.Execute())
}
