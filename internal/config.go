package internal

import (
	"fmt"
	"time"
)

// Config defines the client environment variables. The server endpoint
// is deployment configuration, not user input.
type Config struct {
	ServerURL        string        `env:"CHAT_SERVER_URL,default=ws://localhost:8081/chat"`
	LogLevel         string        `env:"LOG_LEVEL,default=info"`
	AuthTimeout      time.Duration `env:"AUTH_TIMEOUT,default=10s"`
	HandshakeTimeout time.Duration `env:"HANDSHAKE_TIMEOUT,default=5s"`
	TimeZone         string        `env:"TIME_ZONE,default=Local"`
}

// Location resolves the display timezone for rendered timestamps.
func Location(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("TIME_ZONE must be a valid IANA zone, got %q: %w", name, err)
	}
	return loc, nil
}
