package config

import "strings"

// Frontends understood by cmd/game.
const (
	FrontendTcell = "tcell"
	FrontendANSI  = "ansi"
)

// Settings holds the runtime options read from the environment.
type Settings struct {
	Seed     uint64 // 0 picks a time based seed
	Audio    bool
	Volume   int // 0..100
	Frontend string
	LogLevel string

	SSHHost     string
	SSHPort     string
	SSHHostKey  string
	IdleSeconds int
}

// Load reads Settings from the environment, falling back to defaults for
// anything unset or malformed.
func Load() Settings {
	s := Settings{
		Seed:        GetEnvUint64("INVADERS_SEED", 0),
		Audio:       GetEnvBool("INVADERS_AUDIO", true),
		Volume:      GetEnvInt("INVADERS_VOLUME", 60),
		Frontend:    strings.ToLower(GetEnv("INVADERS_FRONTEND", FrontendTcell)),
		LogLevel:    strings.ToLower(GetEnv("INVADERS_LOG_LEVEL", "info")),
		SSHHost:     GetEnv("SSH_HOST", DefaultSSHHost),
		SSHPort:     GetEnv("SSH_PORT", DefaultSSHPort),
		SSHHostKey:  GetEnv("SSH_HOST_KEY", DefaultHostKeyPath),
		IdleSeconds: GetEnvInt("SSH_IDLE_SECONDS", DefaultIdleSeconds),
	}

	s.Volume = min(max(s.Volume, 0), 100)
	if s.Frontend != FrontendTcell && s.Frontend != FrontendANSI {
		s.Frontend = FrontendTcell
	}
	if s.IdleSeconds < 0 {
		s.IdleSeconds = 0
	}
	return s
}
