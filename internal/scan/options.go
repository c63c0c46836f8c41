package scan

import "fmt"

// Default thresholds for the entropy fallback. Random-looking generated
// strings generally sit above 4.5 bits/char; ordinary prose sits well
// below 4.0. All three are overridable per run.
const (
	DefaultMinBits          = 4.0
	DefaultMinLength        = 20
	DefaultMinAlphaNumRatio = 0.5
)

// Default per-file bounds. Files over either bound are skipped and
// recorded, never silently dropped.
const (
	DefaultMaxFileBytes int64 = 1 << 20
	DefaultMaxLines           = 50000
)

// Thresholds are the tunable constants of the entropy analyzer.
type Thresholds struct {
	MinBits          float64
	MinLength        int
	MinAlphaNumRatio float64
}

// DefaultThresholds returns the documented defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinBits:          DefaultMinBits,
		MinLength:        DefaultMinLength,
		MinAlphaNumRatio: DefaultMinAlphaNumRatio,
	}
}

// Options configures one scan run.
type Options struct {
	// Disabled skips all detection and yields an empty report
	// (the engine-side face of --no-scan).
	Disabled bool

	Thresholds Thresholds

	// MaxFileBytes and MaxLines bound how much of a single file is
	// considered. Zero selects the default; negative disables the bound.
	MaxFileBytes int64
	MaxLines     int

	// Workers sets the per-file scan parallelism. Values below 2 select
	// a serial scan. Output ordering is identical either way.
	Workers int
}

// ConfigError reports an invalid threshold or bound. It is fatal for the
// run it was passed to.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid scan config: %s %s", e.Field, e.Reason)
}

func (o *Options) normalize() error {
	t := &o.Thresholds
	if t.MinBits == 0 && t.MinLength == 0 && t.MinAlphaNumRatio == 0 {
		*t = DefaultThresholds()
	}
	if t.MinBits <= 0 || t.MinBits > 8 {
		return &ConfigError{Field: "entropy_min_bits", Reason: "must be in (0, 8]"}
	}
	if t.MinLength < 1 {
		return &ConfigError{Field: "entropy_min_length", Reason: "must be at least 1"}
	}
	if t.MinAlphaNumRatio < 0 || t.MinAlphaNumRatio > 1 {
		return &ConfigError{Field: "alphanum_min_ratio", Reason: "must be in [0, 1]"}
	}
	if o.MaxFileBytes == 0 {
		o.MaxFileBytes = DefaultMaxFileBytes
	}
	if o.MaxLines == 0 {
		o.MaxLines = DefaultMaxLines
	}
	return nil
}
