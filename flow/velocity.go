package flow

import (
	"fmt"
	"sort"

	"github.com/notargets/golcs/field"
	"github.com/notargets/golcs/utils"
)

// VelocityFunc is an analytic velocity field.
type VelocityFunc func(x, y, t float64) (vx, vy float64)

// Velocity holds velocity samples at the points of its Position, which it
// references but does not own.
type Velocity struct {
	*field.Field
	pos *Position
}

func NewVelocity(pos *Position) *Velocity {
	return &Velocity{
		Field: field.NewVector(pos.Nx, pos.Ny),
		pos:   pos,
	}
}

func (v *Velocity) Position() *Position { return v.pos }

func (v *Velocity) Get(i, j int) (vx, vy float64) {
	return v.Get2(i, j)
}

// Evaluate samples fn at every point of the owning Position at time t. A nil
// partition map evaluates serially.
func (v *Velocity) Evaluate(fn VelocityFunc, t float64, pm *utils.PartitionMap) {
	var (
		ny     = v.Ny
		pD, vD = v.pos.Data, v.Data
	)
	rows := func(iMin, iMax int) {
		for k := iMin * ny; k < iMax*ny; k++ {
			ind := 2 * k
			vD[ind], vD[ind+1] = fn(pD[ind], pD[ind+1], t)
		}
	}
	if pm == nil {
		rows(0, v.Nx)
	} else {
		pm.ParallelRange(rows)
	}
	v.Time = t
}

// InterpolateFrom fills the receiver by bilinear interpolation of ref, which
// must be defined on a Position with strictly increasing axes. Cells whose
// particle is out of bound keep their previous value.
//
// Points at or beyond the last axis value use the last interval, points before
// the first use the first interval, so targets outside the reference domain
// are linearly extrapolated rather than rejected.
func (v *Velocity) InterpolateFrom(ref *Velocity, pm *utils.PartitionMap) (err error) {
	var (
		refX, refY = ref.pos.XRange, ref.pos.YRange
		ny         = v.Ny
	)
	if len(refX) < 2 || len(refY) < 2 {
		err = fmt.Errorf("reference velocity needs at least two points per axis: %w", ErrNoAxes)
		return
	}
	if len(refX) != ref.Nx || len(refY) != ref.Ny {
		err = fmt.Errorf("%w: reference axes [%d,%d] vs reference field [%d,%d]",
			field.ErrSizeMismatch, len(refX), len(refY), ref.Nx, ref.Ny)
		return
	}
	rows := func(iMin, iMax int) {
		for i := iMin; i < iMax; i++ {
			for j := 0; j < ny; j++ {
				if v.pos.IsOutOfBound(i, j) {
					continue
				}
				x, y := v.pos.Get(i, j)
				iPre, iNext := bracket(refX, x)
				jPre, jNext := bracket(refY, y)

				v00x, v00y := ref.Get(iPre, jPre)
				v01x, v01y := ref.Get(iPre, jNext)
				v10x, v10y := ref.Get(iNext, jPre)
				v11x, v11y := ref.Get(iNext, jNext)

				x1, x2 := refX[iPre], refX[iNext]
				y1, y2 := refY[jPre], refY[jNext]

				vx1 := field.Lerp(x1, x2, v00x, v10x, x)
				vx2 := field.Lerp(x1, x2, v01x, v11x, x)
				vy1 := field.Lerp(x1, x2, v00y, v10y, x)
				vy2 := field.Lerp(x1, x2, v01y, v11y, x)

				v.Set2(i, j, field.Lerp(y1, y2, vx1, vx2, y), field.Lerp(y1, y2, vy1, vy2, y))
			}
		}
	}
	if pm == nil {
		rows(0, v.Nx)
	} else {
		pm.ParallelRange(rows)
	}
	v.Time = ref.Time
	return
}

// bracket finds the interval of the increasing axis containing val, clamped
// one cell inward at both ends so two distinct samples are always returned.
func bracket(axis []float64, val float64) (pre, next int) {
	n := len(axis)
	next = sort.Search(n, func(k int) bool { return axis[k] > val })
	if next == n {
		next--
	}
	if next == 0 {
		next++
	}
	pre = next - 1
	return
}
