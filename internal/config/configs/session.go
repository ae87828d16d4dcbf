package configs

import "time"

// Session configures the view dedupe sessions.
type Session struct {
	// IdleTTL is how long a session survives without activity. Zero keeps
	// sessions until they are ended explicitly.
	IdleTTL time.Duration `env:"IDLE_TTL" envDefault:"30m"`
	// CountTimeout caps a single counter increment.
	CountTimeout time.Duration `env:"COUNT_TIMEOUT" envDefault:"2s"`
}
