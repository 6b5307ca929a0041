package module

import "setlist/internal/platform/config"

// Options controls likes store selection
type Options struct {
	// ReadPreference names the store consulted first on reads
	ReadPreference string
}

// FromConfig reads LIKES_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	lc := cfg.Prefix("LIKES_")
	return Options{
		ReadPreference: lc.MayString("READ_PREFERENCE", "pg"),
	}
}
