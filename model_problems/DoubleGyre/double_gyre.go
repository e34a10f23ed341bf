package DoubleGyre

import (
	"errors"
	"fmt"
	"math"
)

var ErrParameterCount = errors.New("wrong number of parameters")

// DoubleGyre is the time periodic pair of counter rotating gyres on
// [0,2]x[0,1] (Shadden, Lekien and Marsden 2005):
//
//	u = -pi A sin(pi f) cos(pi y)
//	v =  pi A cos(pi f) sin(pi y) df/dx
//	f(x,t) = a(t) x^2 + b(t) x, a = eps sin(omega t), b = 1 - 2 eps sin(omega t)
type DoubleGyre struct {
	Epsilon, A, Omega float64
}

func NewDoubleGyre() *DoubleGyre {
	return &DoubleGyre{
		Epsilon: 0.1,
		A:       0.1,
		Omega:   math.Pi / 5,
	}
}

// NewDoubleGyreFromParameters takes {epsilon, A, omega}, an empty list gives
// the defaults.
func NewDoubleGyreFromParameters(p []float64) (dg *DoubleGyre, err error) {
	if len(p) == 0 {
		return NewDoubleGyre(), nil
	}
	if len(p) != 3 {
		err = fmt.Errorf("%w: double gyre takes 3 (epsilon, A, omega), have %d",
			ErrParameterCount, len(p))
		return
	}
	dg = &DoubleGyre{Epsilon: p[0], A: p[1], Omega: p[2]}
	return
}

func (dg *DoubleGyre) Velocity(x, y, t float64) (u, v float64) {
	var (
		sinwt = math.Sin(dg.Omega * t)
		at    = dg.Epsilon * sinwt
		bt    = 1 - 2*dg.Epsilon*sinwt
		f     = at*x*x + bt*x
		dfdx  = 2*at*x + bt
	)
	u = -math.Pi * dg.A * math.Sin(math.Pi*f) * math.Cos(math.Pi*y)
	v = math.Pi * dg.A * math.Cos(math.Pi*f) * math.Sin(math.Pi*y) * dfdx
	return
}
