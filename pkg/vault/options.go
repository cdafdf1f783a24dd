package vault

import "log/slog"

// options holds the internal configuration for a Vault.
type options struct {
	logger *slog.Logger
}

// Option defines a functional option for configuring a Vault.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used for debug output and best-effort
// skip warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
