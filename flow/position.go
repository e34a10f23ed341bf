package flow

import (
	"errors"
	"fmt"

	"github.com/notargets/golcs/field"
)

var ErrNoAxes = errors.New("position axes are not set")

// Position holds the coordinates of an Nx x Ny grid of particles. The axes are
// only meaningful while the grid is still the Cartesian product of XRange and
// YRange, which is true for the data grid and for initial positions.
type Position struct {
	*field.Field
	XRange, YRange []float64
	// Out of bound tracking, created once per run
	outOfBound             []bool
	xmin, xmax, ymin, ymax float64
}

func NewPosition(nx, ny int) *Position {
	return &Position{
		Field: field.NewVector(nx, ny),
	}
}

// SetAxes fills the grid with the tensor product of the two axes.
func (p *Position) SetAxes(xrange, yrange []float64) (err error) {
	if len(xrange) != p.Nx || len(yrange) != p.Ny {
		err = fmt.Errorf("%w: axes are [%d,%d], position is [%d,%d]",
			field.ErrSizeMismatch, len(xrange), len(yrange), p.Nx, p.Ny)
		return
	}
	for i := 0; i < p.Nx; i++ {
		for j := 0; j < p.Ny; j++ {
			p.Set2(i, j, xrange[i], yrange[j])
		}
	}
	p.XRange = append(p.XRange[:0], xrange...)
	p.YRange = append(p.YRange[:0], yrange...)
	return
}

// SetUniform fills the grid with evenly spaced axes spanning the box.
func (p *Position) SetUniform(xmin, xmax, ymin, ymax float64) {
	_ = p.SetAxes(field.Linspace(xmin, xmax, p.Nx), field.Linspace(ymin, ymax, p.Ny))
}

func (p *Position) Get(i, j int) (x, y float64) {
	return p.Get2(i, j)
}

// CopyFrom copies coordinates, axes and time from src. Out of bound tracking
// is not copied.
func (p *Position) CopyFrom(src *Position) (err error) {
	if err = p.Field.CopyFrom(src.Field); err != nil {
		return
	}
	p.XRange = append(p.XRange[:0], src.XRange...)
	p.YRange = append(p.YRange[:0], src.YRange...)
	return
}

// Extent is the box spanned by the axes.
func (p *Position) Extent() (xmin, xmax, ymin, ymax float64, err error) {
	if len(p.XRange) == 0 || len(p.YRange) == 0 {
		err = ErrNoAxes
		return
	}
	xmin, xmax = p.XRange[0], p.XRange[len(p.XRange)-1]
	ymin, ymax = p.YRange[0], p.YRange[len(p.YRange)-1]
	return
}

// InitializeOutOfBound starts tracking with every cell in bound.
func (p *Position) InitializeOutOfBound() {
	p.outOfBound = make([]bool, p.Nx*p.Ny)
}

func (p *Position) SetBound(xmin, xmax, ymin, ymax float64) {
	p.xmin, p.xmax, p.ymin, p.ymax = xmin, xmax, ymin, ymax
}

func (p *Position) Tracking() bool { return p.outOfBound != nil }

// IsOutOfBound is always false when tracking was never initialized.
func (p *Position) IsOutOfBound(i, j int) bool {
	if p.outOfBound == nil {
		return false
	}
	return p.outOfBound[i*p.Ny+j]
}

func (p *Position) CountOutOfBound() (count int) {
	for _, oob := range p.outOfBound {
		if oob {
			count++
		}
	}
	return
}

// Update advances every point by vel*signedDelta (explicit Euler). A negative
// signedDelta integrates backward in time with the same formula. When tracking
// is on, points leaving the bound box are flagged and stay flagged.
func (p *Position) Update(vel *Velocity, signedDelta float64) (err error) {
	if err = p.CheckShape(vel.Field); err != nil {
		return
	}
	var (
		pD, vD = p.Data, vel.Data
	)
	for k := 0; k < p.Nx*p.Ny; k++ {
		ind := 2 * k
		vx, vy := vD[ind], vD[ind+1]
		pD[ind] += vx * signedDelta
		pD[ind+1] += vy * signedDelta
		if p.outOfBound != nil {
			x, y := pD[ind], pD[ind+1]
			if x < p.xmin || x > p.xmax || y < p.ymin || y > p.ymax {
				p.outOfBound[k] = true
			}
		}
	}
	return
}
