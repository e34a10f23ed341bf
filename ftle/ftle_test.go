package ftle

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/golcs/flow"
	"github.com/notargets/golcs/model_problems/DoubleGyre"
)

func assertFinite(t *testing.T, f *FTLE) {
	for i := 0; i < f.Nx; i++ {
		for j := 0; j < f.Ny; j++ {
			val := f.Get(i, j)
			assert.False(t, math.IsNaN(val) || math.IsInf(val, 0), "FTLE(%d,%d) = %v", i, j, val)
		}
	}
}

func TestMaxEigen2x2(t *testing.T) {
	for _, c := range [][3]float64{
		{1, 0, 1},
		{2, 1, 3},
		{4.5, -0.25, 0.1},
		{1.e-3, 7, 12},
	} {
		S := mat.NewSymDense(2, []float64{c[0], c[1], c[1], c[2]})
		var eig mat.EigenSym
		require.True(t, eig.Factorize(S, false))
		ev := eig.Values(nil)
		assert.InDelta(t, math.Max(ev[0], ev[1]), MaxEigen2x2(c[0], c[1], c[2]), 1.e-12)
	}
}

func TestFTLE(t *testing.T) {
	// Linear saddle flow, Euler steps give a deformation that finite
	// differences resolve exactly, so every cell carries the same exponent
	var (
		a     = 0.5
		h     = 0.01
		n     = 100
		exact = math.Log(1+a*h) / h
	)
	saddle := func(x, y, t float64) (float64, float64) { return a * x, -a * y }
	{ // Forward
		ff := flow.NewContinuousFlowField(5, 4, saddle)
		ff.InitialPosition().SetUniform(-1, 1, -1, 1)
		require.NoError(t, ff.SetDelta(h))
		ff.SetStep(n)
		require.NoError(t, ff.Run())
		f := New(ff)
		require.NoError(t, f.Calculate())
		for i := 0; i < 5; i++ {
			for j := 0; j < 4; j++ {
				assert.InDelta(t, exact, f.Get(i, j), 1.e-9)
			}
		}
		t0, t1 := f.Time()
		assert.Equal(t, 0., t0)
		assert.InDelta(t, 1., t1, 1.e-12)
		assert.Equal(t, flow.Forward, f.Direction())
		assert.Equal(t, t1, f.Field().Time)
	}
	{ // Backward stretches along y and the interval is negative
		ff := flow.NewContinuousFlowField(5, 4, saddle)
		ff.InitialPosition().SetUniform(-1, 1, -1, 1)
		require.NoError(t, ff.SetDelta(h))
		ff.SetStep(n)
		ff.SetDirection(flow.Backward)
		ff.SetInitialTime(1)
		require.NoError(t, ff.Run())
		f := New(ff)
		require.NoError(t, f.Calculate())
		for i := 0; i < 5; i++ {
			for j := 0; j < 4; j++ {
				assert.InDelta(t, -exact, f.Get(i, j), 1.e-9)
			}
		}
		assert.Equal(t, flow.Backward, f.Direction())
	}
	{ // Eigenvalue agrees with the closed form
		dg := DoubleGyre.NewDoubleGyre()
		ff := flow.NewContinuousFlowField(10, 10, dg.Velocity)
		ff.InitialPosition().SetUniform(0, 2, 0, 1)
		require.NoError(t, ff.SetDelta(0.1))
		ff.SetStep(50)
		require.NoError(t, ff.Run())
		f := New(ff)
		require.NoError(t, f.Calculate())
		assertFinite(t, f)

		cur, err := ff.CurrentPosition()
		require.NoError(t, err)
		F := mat.NewDense(2, 2, nil)
		var C mat.Dense
		for i := 0; i < 10; i++ {
			for j := 0; j < 10; j++ {
				deformationGradient(ff.InitialPosition(), cur, i, j, F)
				C.Mul(F.T(), F)
				lambda := MaxEigen2x2(C.At(0, 0), C.At(0, 1), C.At(1, 1))
				assert.InDelta(t, 0.5*math.Log(lambda)/5, f.Get(i, j), 1.e-8)
			}
		}
	}
	{ // Zero interval
		ff := flow.NewContinuousFlowField(3, 3, saddle)
		ff.InitialPosition().SetUniform(-1, 1, -1, 1)
		require.NoError(t, ff.SetDelta(h))
		ff.SetStep(0)
		require.NoError(t, ff.Run())
		assert.True(t, errors.Is(New(ff).Calculate(), ErrZeroInterval))
	}
}

func TestDiscreteFTLE(t *testing.T) {
	var (
		dir    = t.TempDir()
		prefix = filepath.Join(dir, "vel_")
		dg     = DoubleGyre.NewDoubleGyre()
	)
	dataPos := flow.NewPosition(21, 11)
	dataPos.SetUniform(0, 2, 0, 1)
	dataVel := flow.NewVelocity(dataPos)
	for tt := 0; tt <= 20; tt++ {
		dataVel.Evaluate(dg.Velocity, float64(tt), nil)
		require.NoError(t, dataVel.WriteFile(prefix+strconv.Itoa(tt)+".txt"))
	}

	ff, d := flow.NewDiscreteFlowField(10, 10, 21, 11)
	d.DataPosition().SetUniform(0, 2, 0, 1)
	d.SetVelocityFileNamePrefix(prefix)
	require.NoError(t, d.SetDataDelta(1))
	d.SetDataTimeRange(0, 20)
	ff.InitialPosition().SetUniform(0, 2, 0, 1)
	require.NoError(t, ff.SetDelta(0.1))
	ff.SetStep(200)

	require.NoError(t, ff.Run())
	fwd := New(ff)
	require.NoError(t, fwd.Calculate())
	assertFinite(t, fwd)
	pos := fwd.Field().Copy()

	ff.SetDirection(flow.Backward)
	ff.SetInitialTime(20)
	require.NoError(t, ff.Run())
	assert.InDelta(t, 0., ff.Time(), 1.e-9)
	bwd := New(ff)
	require.NoError(t, bwd.Calculate())
	assertFinite(t, bwd)
	assert.NotEqual(t, pos.Data, bwd.Field().Data)

	{ // PNG and text output
		png := filepath.Join(dir, "ftle_neg.png")
		require.NoError(t, bwd.WritePNG(png, "Backward FTLE"))
		b, err := os.ReadFile(png)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))

		txt := filepath.Join(dir, "ftle_neg.txt")
		require.NoError(t, bwd.Field().WriteFile(txt))
		back := bwd.Field().Copy()
		require.NoError(t, back.ReadFile(txt))
		assert.Equal(t, bwd.Field().Data, back.Data)
	}
}
