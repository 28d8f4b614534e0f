package embedding

import (
	"errors"
	"fmt"
)

// ErrBadParams reports a Params field outside its domain.
var ErrBadParams = errors.New("embedding: invalid params")

// Params configures node2vec walks and the embedding size.
type Params struct {
	// P is the return parameter: revisiting the previous agent weighs 1/P.
	P float64 `yaml:"p"`
	// Q is the in-out parameter: moving away from the previous agent weighs 1/Q.
	Q float64 `yaml:"q"`

	Walks      int `yaml:"walks"`
	WalkLength int `yaml:"walk_length"`
	Dimensions int `yaml:"dimensions"`
	// Window is the co-occurrence half-width.
	Window int `yaml:"window"`
	// Workers bounds concurrent walks; <= 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// DefaultParams returns unbiased walks (p = q = 1): 10 walks of length 10,
// 64 dimensions, window 10.
func DefaultParams() Params {
	return Params{P: 1, Q: 1, Walks: 10, WalkLength: 10, Dimensions: 64, Window: 10}
}

// Homophilic biases walks outward (q = 0.5), favouring community members.
func Homophilic() Params {
	p := DefaultParams()
	p.Q = 0.5

	return p
}

// Structural biases walks inward (q = 2), favouring agents in similar roles.
func Structural() Params {
	p := DefaultParams()
	p.Q = 2

	return p
}

// Validate checks that every field is positive.
func (p Params) Validate() error {
	switch {
	case p.P <= 0 || p.Q <= 0:
		return fmt.Errorf("%w: p and q must be > 0 (got p=%g q=%g)", ErrBadParams, p.P, p.Q)
	case p.Walks <= 0 || p.WalkLength <= 0:
		return fmt.Errorf("%w: walks and walk_length must be > 0", ErrBadParams)
	case p.Dimensions <= 0 || p.Window <= 0:
		return fmt.Errorf("%w: dimensions and window must be > 0", ErrBadParams)
	}

	return nil
}
