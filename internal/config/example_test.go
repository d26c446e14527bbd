package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExampleFileMatchesDefaults(t *testing.T) {
	cfg, err := Load("../../life.example.hcl")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}
