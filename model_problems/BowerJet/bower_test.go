package BowerJet

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBowerJet(t *testing.T) {
	bj := NewBowerJet()
	{ // Test the jet core speed at a meander crest and trough
		k := 2 * math.Pi / bj.L
		dyc := bj.A * k
		u, _ := bj.Velocity(0, 0, 0)
		assert.InDelta(t, -bj.Cx+bj.Sc/math.Sqrt(1+dyc*dyc), u, 1.e-10)
		u, v := bj.Velocity(bj.L/4, bj.A, 0)
		assert.InDelta(t, -bj.Cx+bj.Sc, u, 1.e-10)
		assert.InDelta(t, 0, v, 1.e-10)
	}
	{ // Far from the jet only the frame speed remains
		u, v := bj.Velocity(123, 2000, 0)
		assert.InDelta(t, -bj.Cx, u, 1.e-8)
		assert.InDelta(t, 0, v, 1.e-8)
	}
	{ // Steady in the moving frame
		u1, v1 := bj.Velocity(37, 12, 0)
		u2, v2 := bj.Velocity(37, 12, 100)
		assert.Equal(t, u1, u2)
		assert.Equal(t, v1, v2)
	}
	{ // Test parameters
		b, err := NewBowerJetFromParameters([]float64{50, 50, 400, 10, 40})
		assert.NoError(t, err)
		assert.Equal(t, bj, b)
		_, err = NewBowerJetFromParameters([]float64{1})
		assert.True(t, errors.Is(err, ErrParameterCount))
	}
}
