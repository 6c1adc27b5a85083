package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultFormat     = "console"
	DefaultListenAddr = ":8080"
	EnvPrefix         = "AGORA"
)

var (
	ErrInvalidListenAddr = errors.New("listen_addr must be host:port")
	ErrInvalidFormat     = errors.New("format must not be empty")
)

// Settings are the runtime options of the agora CLI and API server.
type Settings struct {
	// Snapshot is the YAML snapshot to serve. Empty means the built-in example data.
	Snapshot       string
	Format         string
	OutFile        string
	ListenAddr     string
	AllowedOrigins []string
	Debug          bool
}

// ReadSettings loads settings from an optional config file, then AGORA_* environment variables.
// A missing file is an error only when path is set explicitly.
func ReadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("snapshot", "")
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("out", "")
	v.SetDefault("listen_addr", DefaultListenAddr)
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("debug", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed reading config file %s: %w", path, err)
		}
	}

	s := &Settings{
		Snapshot:       strings.TrimSpace(v.GetString("snapshot")),
		Format:         strings.TrimSpace(v.GetString("format")),
		OutFile:        strings.TrimSpace(v.GetString("out")),
		ListenAddr:     strings.TrimSpace(v.GetString("listen_addr")),
		AllowedOrigins: splitOrigins(v.GetStringSlice("allowed_origins")),
		Debug:          v.GetBool("debug"),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings that cannot be defaulted.
func (s *Settings) Validate() error {
	if s.Format == "" {
		return ErrInvalidFormat
	}
	if _, _, err := net.SplitHostPort(s.ListenAddr); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidListenAddr, s.ListenAddr)
	}
	return nil
}

// splitOrigins accepts both YAML lists and comma separated env values.
func splitOrigins(in []string) []string {
	var out []string
	for _, item := range in {
		for _, o := range strings.Split(item, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}
