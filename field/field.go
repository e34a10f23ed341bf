package field

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var ErrSizeMismatch = errors.New("sizes do not match")

// Field is a fixed Nx x Ny grid of Ncomp-component values with a time stamp.
// Point (i,j) is stored row major at Data[(i*Ny+j)*Ncomp:].
type Field struct {
	Nx, Ny int
	Ncomp  int
	Time   float64
	Data   []float64
}

func NewField(nx, ny, ncomp int) (f *Field) {
	f = &Field{
		Nx:    nx,
		Ny:    ny,
		Ncomp: ncomp,
		Data:  make([]float64, nx*ny*ncomp),
	}
	return
}

func NewScalar(nx, ny int) *Field { return NewField(nx, ny, 1) }

func NewVector(nx, ny int) *Field { return NewField(nx, ny, 2) }

func (f *Field) Index(i, j int) int { return (i*f.Ny + j) * f.Ncomp }

// At returns the component slice of point (i,j); writes go through to the field.
func (f *Field) At(i, j int) []float64 {
	ind := f.Index(i, j)
	return f.Data[ind : ind+f.Ncomp]
}

func (f *Field) Get2(i, j int) (x, y float64) {
	ind := f.Index(i, j)
	return f.Data[ind], f.Data[ind+1]
}

func (f *Field) Set2(i, j int, x, y float64) {
	ind := f.Index(i, j)
	f.Data[ind], f.Data[ind+1] = x, y
}

func (f *Field) GetScalar(i, j int) float64 { return f.Data[f.Index(i, j)] }

func (f *Field) SetScalar(i, j int, val float64) { f.Data[f.Index(i, j)] = val }

func (f *Field) SameShape(o *Field) bool {
	return f.Nx == o.Nx && f.Ny == o.Ny && f.Ncomp == o.Ncomp
}

func (f *Field) CheckShape(o *Field) (err error) {
	if !f.SameShape(o) {
		err = fmt.Errorf("%w: [%d,%d,%d] vs [%d,%d,%d]", ErrSizeMismatch,
			f.Nx, f.Ny, f.Ncomp, o.Nx, o.Ny, o.Ncomp)
	}
	return
}

// CopyFrom copies data and time from src, which must have the same shape.
func (f *Field) CopyFrom(src *Field) (err error) {
	if err = f.CheckShape(src); err != nil {
		return
	}
	copy(f.Data, src.Data)
	f.Time = src.Time
	return
}

func (f *Field) Copy() (c *Field) {
	c = NewField(f.Nx, f.Ny, f.Ncomp)
	copy(c.Data, f.Data)
	c.Time = f.Time
	return
}

// Nearby returns the flat indices of the axis neighbors of (i,j), substituting
// (i,j) itself where a neighbor would fall off the grid.
func (f *Field) Nearby(i, j int) (xPre, xNext, yPre, yNext int) {
	var (
		ip, in, jp, jn = i, i, j, j
	)
	if i != 0 {
		ip = i - 1
	}
	if i != f.Nx-1 {
		in = i + 1
	}
	if j != 0 {
		jp = j - 1
	}
	if j != f.Ny-1 {
		jn = j + 1
	}
	return f.Index(ip, j), f.Index(in, j), f.Index(i, jp), f.Index(i, jn)
}

func (f *Field) MinMax() (min, max float64) {
	if len(f.Data) == 0 {
		return
	}
	return floats.Min(f.Data), floats.Max(f.Data)
}

// Linspace returns n points evenly spaced from min to max inclusive.
func Linspace(min, max float64, n int) (r []float64) {
	r = make([]float64, n)
	switch n {
	case 0:
		return
	case 1:
		r[0] = min
		return
	}
	floats.Span(r, min, max)
	return
}
