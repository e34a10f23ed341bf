package ftle

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/golcs/field"
	"github.com/notargets/golcs/flow"
	"github.com/notargets/golcs/utils"
)

var ErrZeroInterval = errors.New("FTLE integration interval is zero")

// FTLE is the finite time Lyapunov exponent of a FlowField over the interval
// between its initial time and its time at construction. Build a new FTLE
// after every Run of the FlowField.
type FTLE struct {
	Nx, Ny    int
	Verbose   bool
	ProcLimit int
	ff        *flow.FlowField
	t0, t     float64
	direction flow.Direction
	scalar    *field.Field
}

func New(ff *flow.FlowField) *FTLE {
	f := &FTLE{
		Nx:        ff.Nx,
		Ny:        ff.Ny,
		Verbose:   ff.Verbose,
		ProcLimit: ff.ProcLimit,
		ff:        ff,
		t0:        ff.InitialTime(),
		t:         ff.Time(),
		direction: ff.Direction(),
		scalar:    field.NewScalar(ff.Nx, ff.Ny),
	}
	f.scalar.Time = f.t
	return f
}

func (f *FTLE) Get(i, j int) float64 { return f.scalar.GetScalar(i, j) }

// Field is the underlying scalar field, time stamped with the end of the
// interval.
func (f *FTLE) Field() *field.Field { return f.scalar }

func (f *FTLE) Direction() flow.Direction { return f.direction }

// Time returns the start and end of the integration interval.
func (f *FTLE) Time() (t0, t float64) { return f.t0, f.t }

// Calculate fills the field from the initial and current particle positions.
// Rows are computed in parallel, each go routine owning its rows.
func (f *FTLE) Calculate() (err error) {
	var (
		dt    = f.t - f.t0
		start = time.Now()
		cur   *flow.Position
	)
	if dt == 0 {
		return fmt.Errorf("%w: t0 = t = %v", ErrZeroInterval, f.t)
	}
	if cur, err = f.ff.CurrentPosition(); err != nil {
		return
	}
	ini := f.ff.InitialPosition()
	if err = ini.CheckShape(cur.Field); err != nil {
		return
	}
	if f.Verbose {
		fmt.Printf("FTLE calculation begins, %s interval [%v,%v]\n", f.direction, f.t0, f.t)
	}
	pm := utils.NewPartitionMap(utils.DefaultParallelDegree(f.ProcLimit, f.Nx), f.Nx)
	pm.ParallelRange(func(iMin, iMax int) {
		// Workspace is per go routine
		var (
			F   = mat.NewDense(2, 2, nil)
			C   = mat.NewSymDense(2, nil)
			eig mat.EigenSym
			ev  = make([]float64, 2)
		)
		for i := iMin; i < iMax; i++ {
			for j := 0; j < f.Ny; j++ {
				deformationGradient(ini, cur, i, j, F)
				C.SymOuterK(1, F.T())
				lambdaMax := math.NaN()
				if eig.Factorize(C, false) {
					ev = eig.Values(ev)
					lambdaMax = floats.Max(ev)
				}
				f.scalar.SetScalar(i, j, 0.5*math.Log(lambdaMax)/dt)
			}
		}
	})
	if f.Verbose {
		min, max := f.scalar.MinMax()
		fmt.Printf("FTLE calculation ends, range [%v,%v], execution time: %v\n",
			min, max, time.Since(start))
		if utils.IsNan(f.scalar.Data) {
			fmt.Printf("FTLE has %d non finite values\n", utils.CountNan(f.scalar.Data))
		}
	}
	return
}

// deformationGradient loads F = d(current)/d(initial) at (i,j) using central
// differences inside the grid and one sided differences on its edges.
func deformationGradient(ini, cur *flow.Position, i, j int, F *mat.Dense) {
	var (
		xPre, xNext, yPre, yNext = ini.Nearby(i, j)
		iD, cD                   = ini.Data, cur.Data
	)
	dX := iD[xNext] - iD[xPre]
	dY := iD[yNext+1] - iD[yPre+1]
	F.Set(0, 0, (cD[xNext]-cD[xPre])/dX)
	F.Set(0, 1, (cD[yNext]-cD[yPre])/dY)
	F.Set(1, 0, (cD[xNext+1]-cD[xPre+1])/dX)
	F.Set(1, 1, (cD[yNext+1]-cD[yPre+1])/dY)
}

// MaxEigen2x2 is the larger eigenvalue of the symmetric matrix [[a,b],[b,d]].
func MaxEigen2x2(a, b, d float64) float64 {
	mean := 0.5 * (a + d)
	return mean + math.Sqrt(0.25*(a-d)*(a-d)+b*b)
}
