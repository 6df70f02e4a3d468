package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootHooksApplyToSubcommands(t *testing.T) {
	// Logger setup and teardown must run for every subcommand, so both
	// hooks have to be the persistent variants.
	require.NotNil(t, rootCmd.PersistentPreRun)
	require.NotNil(t, rootCmd.PersistentPostRun)
	require.Nil(t, rootCmd.PostRun)
}
