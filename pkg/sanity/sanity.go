// Package sanity implements the heuristic range guard used while decoding.
//
// Binary layout and slot files carry no magic number, so a mismatched file is
// only detectable by the absurd counts and scalars it produces. Every decoded
// count is checked against an envelope of (min, max, warnMin, warnMax):
// values outside the warn band log a warning, values outside the hard band
// count as an offense, and decoding fails once too many offenses accumulate
// in a single run.
//
// Envelopes can be overridden with an optional TOML config file:
//
//	max_offenses = 3
//
//	[default]
//	min = -1000
//	max = 10000
//	warn_min = 0
//	warn_max = 4096
package sanity

import (
	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/ashduino101/polyparser/pkg/errors"
)

// Envelope is a sanity range for a decoded integer. Values below Min or above
// Max are offenses; values below WarnMin or above WarnMax only warn.
type Envelope struct {
	Min     int `toml:"min"`
	Max     int `toml:"max"`
	WarnMin int `toml:"warn_min"`
	WarnMax int `toml:"warn_max"`
}

// Config holds the envelopes for each class of decoded value and the offense
// limit at which decoding aborts.
type Config struct {
	// MaxOffenses is the number of hard range violations tolerated per run
	// before a check returns an error.
	MaxOffenses int `toml:"max_offenses"`

	// Default applies to record counts and unclassified scalars.
	Default Envelope `toml:"default"`

	// Version applies to format version fields.
	Version Envelope `toml:"version"`

	// Currency applies to budget and cash amounts.
	Currency Envelope `toml:"currency"`

	// Blob applies to opaque payload sizes (bridge data, thumbnails).
	Blob Envelope `toml:"blob"`
}

// DefaultConfig returns the built-in envelopes.
func DefaultConfig() Config {
	return Config{
		MaxOffenses: 3,
		Default:     Envelope{Min: -1000, Max: 10000, WarnMin: 0, WarnMax: 4096},
		Version:     Envelope{Min: 0, Max: 100, WarnMin: 0, WarnMax: 50},
		Currency:    Envelope{Min: 0, Max: 100000000, WarnMin: 0, WarnMax: 100000000},
		Blob:        Envelope{Min: 0, Max: 100000000, WarnMin: 0, WarnMax: 100000000},
	}
}

// LoadConfig reads a TOML config file and merges it over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "loading sanity config %s", path)
	}
	return cfg, nil
}

// Guard tracks range offenses over one decode session.
// It is not safe for concurrent use; decoding is single-threaded.
type Guard struct {
	cfg      Config
	logger   *log.Logger
	offenses int
}

// NewGuard returns a Guard with the given config. A nil logger falls back to
// log.Default().
func NewGuard(cfg Config, logger *log.Logger) *Guard {
	if logger == nil {
		logger = log.Default()
	}
	return &Guard{cfg: cfg, logger: logger}
}

// Offenses returns the number of hard range violations seen so far.
func (g *Guard) Offenses() int {
	return g.offenses
}

// Check validates value against the default envelope.
func (g *Guard) Check(label string, value int) error {
	return g.CheckIn(label, value, g.cfg.Default)
}

// CheckVersion validates value against the version envelope.
func (g *Guard) CheckVersion(label string, value int) error {
	return g.CheckIn(label, value, g.cfg.Version)
}

// CheckCurrency validates value against the currency envelope.
func (g *Guard) CheckCurrency(label string, value int) error {
	return g.CheckIn(label, value, g.cfg.Currency)
}

// CheckBlob validates value against the blob-size envelope.
func (g *Guard) CheckBlob(label string, value int) error {
	return g.CheckIn(label, value, g.cfg.Blob)
}

// CheckIn validates value against env. Hard violations count as offenses and
// return an error once the offense limit is reached; soft violations warn.
func (g *Guard) CheckIn(label string, value int, env Envelope) error {
	switch {
	case value < env.Min:
		return g.offend("%s is too low: %d (min: %d)", label, value, env.Min)
	case value > env.Max:
		return g.offend("%s is too high: %d (max: %d)", label, value, env.Max)
	case value < env.WarnMin:
		if g.offenses >= g.cfg.MaxOffenses {
			return errors.New(errors.ErrCodeRange, "aborting due to excessive unusual numbers")
		}
		g.logger.Warnf("%s is unusually low: %d (min: %d)", label, value, env.WarnMin)
	case value > env.WarnMax:
		if g.offenses >= g.cfg.MaxOffenses {
			return errors.New(errors.ErrCodeRange, "aborting due to excessive unusual numbers")
		}
		g.logger.Warnf("%s is unusually high: %d (max: %d)", label, value, env.WarnMax)
	}
	return nil
}

func (g *Guard) offend(format string, args ...any) error {
	g.offenses++
	if g.offenses >= g.cfg.MaxOffenses {
		return errors.New(errors.ErrCodeRange, "aborting due to excessive unusual numbers")
	}
	g.logger.Errorf(format, args...)
	return nil
}
