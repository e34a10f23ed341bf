package DoubleGyre

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoubleGyre(t *testing.T) {
	dg := NewDoubleGyre()
	{ // Test impermeable walls of the [0,2]x[0,1] box
		for _, tt := range []float64{0, 1.3, 7.5} {
			for _, s := range []float64{0, 0.3, 0.77, 1} {
				u, _ := dg.Velocity(0, s, tt)
				assert.InDelta(t, 0, u, 1.e-12)
				u, _ = dg.Velocity(2, s, tt)
				assert.InDelta(t, 0, u, 1.e-12)
				_, v := dg.Velocity(2*s, 0, tt)
				assert.InDelta(t, 0, v, 1.e-12)
				_, v = dg.Velocity(2*s, 1, tt)
				assert.InDelta(t, 0, v, 1.e-12)
			}
		}
	}
	{ // Test the field is divergence free
		h := 1.e-5
		for _, p := range [][3]float64{{0.3, 0.4, 0}, {1.2, 0.8, 2.5}, {1.9, 0.1, 4}} {
			x, y, tt := p[0], p[1], p[2]
			up, _ := dg.Velocity(x+h, y, tt)
			um, _ := dg.Velocity(x-h, y, tt)
			_, vp := dg.Velocity(x, y+h, tt)
			_, vm := dg.Velocity(x, y-h, tt)
			assert.InDelta(t, 0, (up-um)/(2*h)+(vp-vm)/(2*h), 1.e-6)
		}
	}
	{ // Test parameters
		d, err := NewDoubleGyreFromParameters(nil)
		assert.NoError(t, err)
		assert.Equal(t, dg, d)
		d, err = NewDoubleGyreFromParameters([]float64{0.25, 0.1, 2 * math.Pi / 10})
		assert.NoError(t, err)
		assert.Equal(t, 0.25, d.Epsilon)
		_, err = NewDoubleGyreFromParameters([]float64{1, 2, 3, 4})
		assert.True(t, errors.Is(err, ErrParameterCount))
	}
}
