package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Environment variables read by Load.
const (
	EnvSeed         = "ASTEROIDS_SEED"
	EnvLogLevel     = "ASTEROIDS_LOG_LEVEL"
	EnvLogFile      = "ASTEROIDS_LOG_FILE"
	EnvRespawnGrace = "ASTEROIDS_RESPAWN_GRACE"
	EnvSSHHost      = "SSH_HOST"
	EnvSSHPort      = "SSH_PORT"
	EnvSSHHostKey   = "SSH_HOST_KEY"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	defaultLogLevel    = "info"
)

// Settings is the runtime configuration shared by all entry points.
type Settings struct {
	Seed         uint64 // Zero seeds from the clock
	LogLevel     log.Level
	LogFile      string // Empty means the frontend picks its default sink
	RespawnGrace int    // Ticks of invulnerability after a respawn

	SSHHost    string
	SSHPort    string
	SSHHostKey string
}

// Load reads Settings from the environment, falling back to defaults for
// anything unset.
func Load() (Settings, error) {
	s := Settings{
		LogFile:    GetEnv(EnvLogFile, ""),
		SSHHost:    GetEnv(EnvSSHHost, defaultHost),
		SSHPort:    GetEnv(EnvSSHPort, defaultPort),
		SSHHostKey: GetEnv(EnvSSHHostKey, defaultHostKeyPath),
	}

	var err error
	if s.Seed, err = GetEnvUint64(EnvSeed, 0); err != nil {
		return s, err
	}
	if s.RespawnGrace, err = GetEnvInt(EnvRespawnGrace, 0); err != nil {
		return s, err
	}
	if s.RespawnGrace < 0 {
		return s, fmt.Errorf("%w: %s must not be negative", ErrInvalidSetting, EnvRespawnGrace)
	}

	levelName := GetEnv(EnvLogLevel, defaultLogLevel)
	if s.LogLevel, err = log.ParseLevel(levelName); err != nil {
		return s, fmt.Errorf("%w: %s=%q: %w", ErrInvalidSetting, EnvLogLevel, levelName, err)
	}

	return s, nil
}

// NewLogger creates a timestamped logger at the configured level.
func (s Settings) NewLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           s.LogLevel,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
}

// OpenLogFile opens LogFile for appending. It returns io.Discard wrapped as a
// no-op closer when no file is configured.
func (s Settings) OpenLogFile() (io.WriteCloser, error) {
	if s.LogFile == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
