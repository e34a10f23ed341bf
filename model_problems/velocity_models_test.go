package model_problems

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/golcs/model_problems/BowerJet"
	"github.com/notargets/golcs/model_problems/DoubleGyre"
)

func TestVelocityModels(t *testing.T) {
	{ // Test lookup by name
		for _, label := range []string{"double_gyre", "DoubleGyre", "double-gyre"} {
			mt, err := NewModelType(label)
			require.NoError(t, err)
			assert.Equal(t, M_DoubleGyre, mt)
		}
		mt, err := NewModelType("Bower")
		require.NoError(t, err)
		assert.Equal(t, M_BowerJet, mt)
		_, err = NewModelType("lorenz")
		assert.Error(t, err)
	}
	{ // Test construction with default and explicit parameters
		fn, err := NewVelocityFunction("double_gyre", nil)
		require.NoError(t, err)
		u, v := fn(0.5, 0.5, 0)
		u2, v2 := DoubleGyre.NewDoubleGyre().Velocity(0.5, 0.5, 0)
		assert.Equal(t, u2, u)
		assert.Equal(t, v2, v)

		fn, err = NewVelocityFunction("double_gyre", []float64{0, 1, 1})
		require.NoError(t, err)
		// Steady gyres, pure rotation about (0.5,0.5)
		u, v = fn(0.5, 0.25, 3)
		assert.InDelta(t, -math.Pi*math.Cos(math.Pi/4), u, 1.e-12)
		assert.InDelta(t, 0, v, 1.e-12)

		_, err = NewVelocityFunction("bower", []float64{1, 2})
		assert.True(t, errors.Is(err, BowerJet.ErrParameterCount))
		_, err = NewVelocityFunction("double_gyre", []float64{1})
		assert.True(t, errors.Is(err, DoubleGyre.ErrParameterCount))
	}
}
