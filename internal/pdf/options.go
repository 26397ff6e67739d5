package pdf

import "time"

type converterConfig struct {
	chromePath   string
	timeout      time.Duration
	noSandbox    bool
	autoDownload bool
}

func defaultConverterConfig() converterConfig {
	return converterConfig{timeout: 30 * time.Second}
}

// Option configures a Converter.
type Option func(*converterConfig)

// WithChromePath sets the Chrome or Chromium executable. Empty means search PATH.
func WithChromePath(path string) Option {
	return func(c *converterConfig) { c.chromePath = path }
}

// WithTimeout bounds a single conversion. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *converterConfig) { c.timeout = d }
}

// WithNoSandbox disables the Chrome sandbox, required when running as root in containers.
func WithNoSandbox() Option {
	return func(c *converterConfig) { c.noSandbox = true }
}

// WithAutoDownload fetches a Chromium build when no executable path is configured.
func WithAutoDownload() Option {
	return func(c *converterConfig) { c.autoDownload = true }
}
