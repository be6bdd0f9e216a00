package rsg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.Equal(t, "<start>", config.Start)
	require.Equal(t, 3, config.Count)
	require.Equal(t, 64, config.MaxDepth)
	require.NoError(t, config.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero count", func(c *Config) { c.Count = 0 }},
		{"negative count", func(c *Config) { c.Count = -1 }},
		{"zero depth", func(c *Config) { c.MaxDepth = 0 }},
		{"terminal start", func(c *Config) { c.Start = "start" }},
		{"empty start", func(c *Config) { c.Start = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			require.Error(t, config.Validate())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rsg.toml")
	text := "start = \"<poem>\"\ncount = 7\nseed = 11\ncoverage = true\n"
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "<poem>", config.Start)
	require.Equal(t, 7, config.Count)
	require.Equal(t, int64(11), config.Seed)
	require.True(t, config.Coverage)

	// Settings absent from the file keep their defaults.
	require.Equal(t, DefaultMaxDepth, config.MaxDepth)
	require.False(t, config.Tree)
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rsg.toml")
	require.NoError(t, os.WriteFile(path, []byte("count = = 3"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestNewRandSeeded(t *testing.T) {
	config := DefaultConfig()
	config.Seed = 5

	a, seedA := config.NewRand()
	b, seedB := config.NewRand()
	require.Equal(t, int64(5), seedA)
	require.Equal(t, seedA, seedB)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestNewRandUnseeded(t *testing.T) {
	config := DefaultConfig()
	_, seed := config.NewRand()
	require.NotZero(t, seed)
}
