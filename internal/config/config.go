package config

import "os"

// Config carries runtime options for hostfetch. The report surface itself
// takes no flags or config files; only ambient environment toggles exist.
type Config struct {
	NoColor bool
	Debug   bool
}

// FromEnv reads the ambient toggles. NO_COLOR is honored alongside the
// hostfetch-specific variable.
func FromEnv() Config {
	cfg := Config{}
	if os.Getenv("HOSTFETCH_NO_COLOR") == "1" || os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	if os.Getenv("HOSTFETCH_DEBUG") == "1" {
		cfg.Debug = true
	}
	return cfg
}
