package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrokit/streakfinder/internal/pipeline"
)

func TestDetectFlagDefaults(t *testing.T) {
	def := pipeline.DefaultConfig()
	flags := detectCmd.Flags()

	threshold, err := flags.GetFloat64(cfgKeyContourThreshold)
	require.NoError(t, err)
	assert.Equal(t, def.ContourThreshold, threshold)

	minPoints, err := flags.GetInt(cfgKeyMinPoints)
	require.NoError(t, err)
	assert.Equal(t, def.Params.MinPoints, minPoints)
}

func TestDetectOutputFlagHelp(t *testing.T) {
	flag := detectCmd.Flags().Lookup(cfgKeyOutput)
	require.NotNil(t, flag)

	// Reports default under the working directory, and the help text must
	// say so rather than suggest they land next to the input.
	assert.Empty(t, flag.DefValue)
	assert.Contains(t, flag.Usage, "current directory")
}
