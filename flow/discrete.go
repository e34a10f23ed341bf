package flow

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/notargets/golcs/field"
)

var ErrDataExhausted = errors.New("time is outside of the velocity data range")

// Discrete interpolates velocity from snapshot files bracketing the current
// time. Snapshots live on their own data grid and are read from files named
// Prefix + int(time) + Suffix.
type Discrete struct {
	DataNx, DataNy int
	Prefix, Suffix string
	Verbose        bool
	direction      Direction
	dataDelta      float64 // Time between two adjacent data files
	beginDataTime  float64 // Direction aware, begin is the end time for Backward
	endDataTime    float64
	rangeT1        float64
	rangeT2        float64
	anchorTime     float64 // Time of the previous snapshot
	dataPos        *Position
	previousVel    *Velocity
	nextVel        *Velocity
	currentDataVel *Velocity // Interpolation in time of previous and next
	vel            *Velocity
	reads          int
}

func NewDiscrete(dataNx, dataNy int) (d *Discrete) {
	d = &Discrete{
		DataNx:  dataNx,
		DataNy:  dataNy,
		Suffix:  ".txt",
		dataPos: NewPosition(dataNx, dataNy),
	}
	d.previousVel = NewVelocity(d.dataPos)
	d.nextVel = NewVelocity(d.dataPos)
	d.currentDataVel = NewVelocity(d.dataPos)
	return
}

// NewDiscreteFlowField pairs a grid of nx x ny particles with velocity data
// sampled on a dataNx x dataNy grid.
func NewDiscreteFlowField(nx, ny, dataNx, dataNy int) (ff *FlowField, d *Discrete) {
	d = NewDiscrete(dataNx, dataNy)
	ff = NewFlowField(nx, ny, d)
	return
}

func (d *Discrete) DataPosition() *Position { return d.dataPos }

func (d *Discrete) SetVelocityFileNamePrefix(prefix string) { d.Prefix = prefix }

func (d *Discrete) SetVelocityFileNameSuffix(suffix string) { d.Suffix = suffix }

func (d *Discrete) SetDataDelta(delta float64) (err error) {
	if !(delta > 0) {
		return fmt.Errorf("data time step must be positive, have %v", delta)
	}
	d.dataDelta = delta
	return
}

// SetDataTimeRange sets the time span covered by the data files, in either order.
func (d *Discrete) SetDataTimeRange(t1, t2 float64) {
	d.rangeT1, d.rangeT2 = math.Min(t1, t2), math.Max(t1, t2)
	d.setDirection(d.direction)
}

func (d *Discrete) DataTimeRange() (begin, end float64) {
	return d.beginDataTime, d.endDataTime
}

func (d *Discrete) setDirection(dir Direction) {
	d.direction = dir
	switch dir {
	case Forward:
		d.beginDataTime, d.endDataTime = d.rangeT1, d.rangeT2
	case Backward:
		d.beginDataTime, d.endDataTime = d.rangeT2, d.rangeT1
	}
}

func (d *Discrete) velocity() *Velocity { return d.vel }

// Bracket returns the current previous and next snapshots.
func (d *Discrete) Bracket() (previous, next *Velocity) {
	return d.previousVel, d.nextVel
}

// Reads is the number of snapshot files read since construction.
func (d *Discrete) Reads() int { return d.reads }

func (d *Discrete) FileName(t float64) string {
	return d.Prefix + strconv.Itoa(int(t)) + d.Suffix
}

func (d *Discrete) signedDataDelta() float64 {
	return d.direction.Sign() * d.dataDelta
}

// timeTol absorbs round off accumulated by repeated addition of the step.
func (d *Discrete) timeTol() float64 {
	return 1.e-9 * d.dataDelta
}

// ahead is the signed distance of t2 past t1 in the run direction.
func (d *Discrete) ahead(t1, t2 float64) float64 {
	return d.direction.Sign() * (t2 - t1)
}

func (d *Discrete) startRun(ff *FlowField) (err error) {
	if err = d.SetDataDelta(d.dataDelta); err != nil {
		return
	}
	if ff.direction != d.direction {
		d.setDirection(ff.direction)
	}
	var (
		sdd = d.signedDataDelta()
		tol = d.timeTol()
	)
	// Out of bound box is the data domain
	cur := ff.currentPos
	cur.InitializeOutOfBound()
	xmin, ymin := d.dataPos.Get(0, 0)
	xmax, ymax := d.dataPos.Get(d.DataNx-1, d.DataNy-1)
	cur.SetBound(xmin, xmax, ymin, ymax)
	d.vel = NewVelocity(cur)

	if d.ahead(d.beginDataTime, ff.initialTime) < -tol ||
		d.ahead(ff.initialTime, d.endDataTime) < -tol {
		return fmt.Errorf("%w: initial time %v, data range [%v,%v]",
			ErrDataExhausted, ff.initialTime, d.rangeT1, d.rangeT2)
	}
	if d.ahead(d.beginDataTime+sdd, d.endDataTime) < -tol {
		return fmt.Errorf("%w: data range [%v,%v] is shorter than the data time step %v",
			ErrDataExhausted, d.rangeT1, d.rangeT2, d.dataDelta)
	}
	// Walk from the beginning of the data until the bracket holds the initial
	// time, without letting the next snapshot run past the data
	d.anchorTime = d.beginDataTime
	for d.ahead(d.anchorTime+sdd, ff.initialTime) >= -tol &&
		d.ahead(d.anchorTime+2*sdd, d.endDataTime) >= -tol {
		d.anchorTime += sdd
	}
	return d.loadBracket()
}

func (d *Discrete) updateVelocity(ff *FlowField) (err error) {
	var (
		sdd = d.signedDataDelta()
		tol = d.timeTol()
		t   = ff.currentTime
	)
	if d.ahead(d.anchorTime+sdd, t) > tol {
		for d.ahead(d.anchorTime+sdd, t) > tol {
			if d.ahead(d.anchorTime+2*sdd, d.endDataTime) < -tol {
				return fmt.Errorf("%w: time %v, last snapshot at %v",
					ErrDataExhausted, t, d.anchorTime+sdd)
			}
			d.anchorTime += sdd
		}
		if err = d.loadBracket(); err != nil {
			return
		}
	}
	if err = field.InterpolateTime(d.previousVel.Time, d.nextVel.Time,
		d.previousVel.Field, d.nextVel.Field, t, d.currentDataVel.Field); err != nil {
		return
	}
	return d.vel.InterpolateFrom(d.currentDataVel, ff.pm)
}

// loadBracket reads the previous and next snapshots concurrently.
func (d *Discrete) loadBracket() (err error) {
	var (
		g  errgroup.Group
		t1 = d.anchorTime
		t2 = d.anchorTime + d.signedDataDelta()
	)
	g.Go(func() error { return d.readDataVelocity(d.previousVel, t1) })
	g.Go(func() error { return d.readDataVelocity(d.nextVel, t2) })
	if err = g.Wait(); err != nil {
		return
	}
	d.reads += 2
	return
}

// The bracket time, not the file's time stamp, is kept as the snapshot time.
func (d *Discrete) readDataVelocity(vel *Velocity, t float64) (err error) {
	fileName := d.FileName(t)
	if err = vel.ReadFile(fileName); err != nil {
		return
	}
	vel.Time = t
	if d.Verbose {
		fmt.Printf("Read velocity data at time = %v from %s\n", t, fileName)
	}
	return
}
