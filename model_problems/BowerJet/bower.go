package BowerJet

import (
	"errors"
	"fmt"
	"math"
)

var ErrParameterCount = errors.New("wrong number of parameters")

// BowerJet is the Bower (1991) meandering jet in the frame moving with the
// meander, where it is steady. The stream function is
//
//	psi = psi0 [1 - tanh((y - yc) / (lambda / cos alpha))]
//	yc = A sin(k x), alpha = atan(A k cos(k x)), k = 2 pi / L
//
// and u = -dpsi/dy - cx, v = dpsi/dx.
type BowerJet struct {
	Sc     float64 // Downstream speed at the jet center (km/day)
	A      float64 // Meander amplitude (km)
	L      float64 // Meander wave length (km)
	Cx     float64 // Meander phase speed (km/day)
	Lambda float64 // Jet width (km)
}

func NewBowerJet() *BowerJet {
	return &BowerJet{
		Sc:     50,
		A:      50,
		L:      400,
		Cx:     10,
		Lambda: 40,
	}
}

// NewBowerJetFromParameters takes {Sc, A, L, Cx, Lambda}, an empty list gives
// the defaults.
func NewBowerJetFromParameters(p []float64) (bj *BowerJet, err error) {
	if len(p) == 0 {
		return NewBowerJet(), nil
	}
	if len(p) != 5 {
		err = fmt.Errorf("%w: Bower jet takes 5 (Sc, A, L, Cx, Lambda), have %d",
			ErrParameterCount, len(p))
		return
	}
	bj = &BowerJet{Sc: p[0], A: p[1], L: p[2], Cx: p[3], Lambda: p[4]}
	return
}

// Velocity ignores t, the flow is steady in the moving frame.
func (bj *BowerJet) Velocity(x, y, t float64) (u, v float64) {
	var (
		psi0   = bj.Sc * bj.Lambda
		k      = 2 * math.Pi / bj.L
		yc     = bj.A * math.Sin(k*x)
		dyc    = bj.A * k * math.Cos(k*x)
		slope2 = dyc*dyc + 1
		alpha0 = bj.Lambda * math.Sqrt(slope2)
		c      = math.Cosh((y - yc) / alpha0)
		sech2  = 1. / (c * c)
	)
	u = -bj.Cx + psi0*sech2/alpha0
	v = -psi0 * (yc*dyc*k*k*(y-yc)/(bj.Lambda*math.Pow(slope2, 1.5)) - dyc/alpha0) * sech2
	return
}
