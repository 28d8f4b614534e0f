package wtf

import (
	"errors"
	"fmt"
)

// ErrBadConfig reports a Config field outside its domain.
var ErrBadConfig = errors.New("wtf: invalid config")

// Config tunes the ranker.
type Config struct {
	// Walks is the number of egocentric random walks per query.
	Walks int `yaml:"walks"`

	// WalkLength is the number of agents in one walk, start included.
	WalkLength int `yaml:"walk_length"`

	// CircleSize bounds the circle of trust and normalizes trust scores.
	// Zero means "use the requested recommendation count".
	CircleSize int `yaml:"circle_size"`

	// Workers bounds concurrent walks; <= 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns 15 walks of length 10 and a circle of 50.
func DefaultConfig() Config {
	return Config{Walks: 15, WalkLength: 10, CircleSize: 50}
}

// Validate rejects non-positive walk counts and lengths and a negative circle.
func (c Config) Validate() error {
	switch {
	case c.Walks <= 0:
		return fmt.Errorf("%w: walks must be > 0 (got %d)", ErrBadConfig, c.Walks)
	case c.WalkLength <= 0:
		return fmt.Errorf("%w: walk_length must be > 0 (got %d)", ErrBadConfig, c.WalkLength)
	case c.CircleSize < 0:
		return fmt.Errorf("%w: circle_size must be >= 0 (got %d)", ErrBadConfig, c.CircleSize)
	}

	return nil
}
