package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	assert.True(t, names["enrich"], "expected subcommand %q not found", "enrich")
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "lead-enrich", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestEnrichCommand_Flags(t *testing.T) {
	flag := enrichCmd.Flags().Lookup("input")
	require.NotNil(t, flag, "enrich command should have --input flag")

	format := enrichCmd.Flags().Lookup("format")
	require.NotNil(t, format, "enrich command should have --format flag")
	assert.Equal(t, "csv", format.DefValue)

	output := enrichCmd.Flags().Lookup("output")
	require.NotNil(t, output, "enrich command should have --output flag")
	assert.Equal(t, "enriched_leads.csv", output.DefValue)

	limit := enrichCmd.Flags().Lookup("limit")
	require.NotNil(t, limit, "enrich command should have --limit flag")
	assert.Equal(t, "0", limit.DefValue)

	for _, name := range []string{"dry-run", "credits", "concurrency"} {
		assert.NotNil(t, enrichCmd.Flags().Lookup(name), "enrich command should have --%s flag", name)
	}
}
