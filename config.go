package bodytext

import "time"

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ContentExtractor/1.0)"

// Timeout and delay bounds enforced by Config.Validate.
const (
	MinTimeout = 5 * time.Second
	MaxTimeout = 120 * time.Second
	MaxDelay   = 5 * time.Second
)

// Config holds the externally supplied batch settings, validated at the
// boundary before any network activity starts.
type Config struct {
	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// Delay is the blocking pause between consecutive requests.
	Delay time.Duration

	// UserAgent is sent verbatim as the User-Agent header.
	UserAgent string
}

// DefaultConfig returns a Config with the defaults used by the CLI.
func DefaultConfig() Config {
	return Config{
		Timeout:   25 * time.Second,
		Delay:     200 * time.Millisecond,
		UserAgent: DefaultUserAgent,
	}
}

// Validate returns an error if any setting is out of range.
func (c Config) Validate() error {
	if c.Timeout < MinTimeout || c.Timeout > MaxTimeout {
		return Errorf(EINVALID, "timeout must be between %s and %s, got %s", MinTimeout, MaxTimeout, c.Timeout)
	}
	if c.Delay < 0 || c.Delay > MaxDelay {
		return Errorf(EINVALID, "delay must be between 0s and %s, got %s", MaxDelay, c.Delay)
	}
	if c.UserAgent == "" {
		return Errorf(EINVALID, "user agent required")
	}
	return nil
}
