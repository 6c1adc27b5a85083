package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSettings_Defaults(t *testing.T) {
	s, err := ReadSettings("")
	require.NoError(t, err)

	assert.Equal(t, "", s.Snapshot)
	assert.Equal(t, DefaultFormat, s.Format)
	assert.Equal(t, DefaultListenAddr, s.ListenAddr)
	assert.Equal(t, []string{"*"}, s.AllowedOrigins)
	assert.False(t, s.Debug)
}

func TestReadSettings_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agora.yaml")
	content := "snapshot: data/snapshot.yaml\n" +
		"format: html\n" +
		"listen_addr: 127.0.0.1:9090\n" +
		"allowed_origins:\n" +
		"  - https://dashboard.example.org\n" +
		"debug: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := ReadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "data/snapshot.yaml", s.Snapshot)
	assert.Equal(t, "html", s.Format)
	assert.Equal(t, "127.0.0.1:9090", s.ListenAddr)
	assert.Equal(t, []string{"https://dashboard.example.org"}, s.AllowedOrigins)
	assert.True(t, s.Debug)
}

func TestReadSettings_EnvOverrides(t *testing.T) {
	t.Setenv("AGORA_FORMAT", "json")
	t.Setenv("AGORA_LISTEN_ADDR", ":9999")
	t.Setenv("AGORA_ALLOWED_ORIGINS", "http://localhost:3000,https://agora.example.org")

	s, err := ReadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "json", s.Format)
	assert.Equal(t, ":9999", s.ListenAddr)
	assert.Equal(t, []string{"http://localhost:3000", "https://agora.example.org"}, s.AllowedOrigins)
}

func TestReadSettings_MissingFile(t *testing.T) {
	_, err := ReadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed reading config file")
}

func TestSettingsValidate(t *testing.T) {
	s := &Settings{Format: "console", ListenAddr: "8080"}
	assert.ErrorIs(t, s.Validate(), ErrInvalidListenAddr)

	s = &Settings{Format: "", ListenAddr: ":8080"}
	assert.ErrorIs(t, s.Validate(), ErrInvalidFormat)

	s = &Settings{Format: "csv", ListenAddr: "localhost:8080"}
	assert.NoError(t, s.Validate())
}
