package param

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Constant is a parameter with a fixed value.
type Constant struct {
	c float64
}

// NewConstant returns a parameter that always yields c.
func NewConstant(c float64) *Constant {
	return &Constant{c: c}
}

// Value returns the constant.
func (p *Constant) Value() float64 { return p.c }

// Uniform draws values uniformly from [min, max).
type Uniform struct {
	dist distuv.Uniform
}

// NewUniform returns a uniform random parameter over [min, max).
func NewUniform(min, max float64) (*Uniform, error) {
	if min >= max {
		return nil, fmt.Errorf("uniform parameter: min (%v) must be below max (%v)", min, max)
	}
	return &Uniform{dist: distuv.Uniform{Min: min, Max: max}}, nil
}

// Value draws one sample.
func (p *Uniform) Value() float64 { return p.dist.Rand() }

// Normal draws values from a normal distribution.
type Normal struct {
	dist distuv.Normal
}

// NewNormal returns a normal random parameter with the given mean and
// standard deviation.
func NewNormal(mean, std float64) (*Normal, error) {
	if std <= 0 {
		return nil, fmt.Errorf("normal parameter: standard deviation must be positive, got %v", std)
	}
	return &Normal{dist: distuv.Normal{Mu: mean, Sigma: std}}, nil
}

// Value draws one sample.
func (p *Normal) Value() float64 { return p.dist.Rand() }
