package flow

import (
	"errors"
	"fmt"
	"time"

	"github.com/notargets/golcs/utils"
)

var ErrNotSet = errors.New("not set")

// VelocitySource synthesizes the velocity of the current particle positions
// for a FlowField. It is implemented by *Continuous and *Discrete only.
type VelocitySource interface {
	// startRun is called once the current position has been rebuilt from the
	// initial position, before the first step
	startRun(ff *FlowField) error
	// updateVelocity fills the source's velocity slot for the current time
	updateVelocity(ff *FlowField) error
	setDirection(d Direction)
	velocity() *Velocity
}

// FlowField advects an Nx x Ny grid of particles from the initial position
// with explicit Euler steps, forward or backward in time.
type FlowField struct {
	Nx, Ny      int
	Delta       float64 // Integration time step, always positive
	Steps       int
	Verbose     bool
	ProcLimit   int // Maximum number of go routines, 0 is one per CPU
	direction   Direction
	initialTime float64
	currentTime float64
	initialPos  *Position
	currentPos  *Position
	source      VelocitySource
	pm          *utils.PartitionMap
}

func NewFlowField(nx, ny int, source VelocitySource) (ff *FlowField) {
	ff = &FlowField{
		Nx:         nx,
		Ny:         ny,
		initialPos: NewPosition(nx, ny),
		source:     source,
	}
	return
}

func NewContinuousFlowField(nx, ny int, fn VelocityFunc) *FlowField {
	return NewFlowField(nx, ny, NewContinuous(fn))
}

func (ff *FlowField) InitialPosition() *Position { return ff.initialPos }

func (ff *FlowField) CurrentPosition() (pos *Position, err error) {
	if ff.currentPos == nil {
		err = fmt.Errorf("current position %w, call Run first", ErrNotSet)
		return
	}
	return ff.currentPos, nil
}

func (ff *FlowField) CurrentVelocity() (vel *Velocity, err error) {
	if vel = ff.source.velocity(); vel == nil {
		err = fmt.Errorf("current velocity %w", ErrNotSet)
	}
	return
}

func (ff *FlowField) Source() VelocitySource { return ff.source }

func (ff *FlowField) Time() float64 { return ff.currentTime }

func (ff *FlowField) InitialTime() float64 { return ff.initialTime }

func (ff *FlowField) Direction() Direction { return ff.direction }

func (ff *FlowField) SetDelta(delta float64) (err error) {
	if !(delta > 0) {
		return fmt.Errorf("integration step must be positive, have %v", delta)
	}
	ff.Delta = delta
	return
}

func (ff *FlowField) SetStep(steps int) { ff.Steps = steps }

func (ff *FlowField) SetDirection(d Direction) {
	ff.direction = d
	ff.source.setDirection(d)
}

// SetInitialTime moves both the initial and the current time, used before
// re-running from a different starting time.
func (ff *FlowField) SetInitialTime(t float64) {
	ff.initialTime = t
	ff.initialPos.Time = t
	ff.currentTime = t
	if ff.currentPos != nil {
		ff.currentPos.Time = t
	}
}

// SignedDelta is the time increment of one step in the run direction.
func (ff *FlowField) SignedDelta() float64 {
	return ff.direction.Sign() * ff.Delta
}

// Run rebuilds the current position from the initial position and integrates
// Steps steps. Run is not safe for concurrent use on the same FlowField.
func (ff *FlowField) Run() (err error) {
	if err = ff.SetDelta(ff.Delta); err != nil {
		return
	}
	var (
		signedDelta = ff.SignedDelta()
		elapsed     time.Duration
		start       time.Time
	)
	ff.pm = utils.NewPartitionMap(utils.DefaultParallelDegree(ff.ProcLimit, ff.Nx), ff.Nx)
	ff.currentTime = ff.initialTime
	ff.currentPos = NewPosition(ff.Nx, ff.Ny)
	if err = ff.currentPos.CopyFrom(ff.initialPos); err != nil {
		return
	}
	ff.currentPos.Time = ff.initialTime
	if err = ff.source.startRun(ff); err != nil {
		return
	}
	if ff.Verbose {
		fmt.Printf("%s particle advection begins, %d steps of %v from time = %v\n",
			ff.direction, ff.Steps, ff.Delta, ff.currentTime)
	}
	for i := 0; i < ff.Steps; i++ {
		start = time.Now()
		if err = ff.source.updateVelocity(ff); err != nil {
			return fmt.Errorf("step %d (time = %v): %w", i, ff.currentTime, err)
		}
		vel := ff.source.velocity()
		if err = ff.currentPos.Update(vel, signedDelta); err != nil {
			return
		}
		ff.currentTime += signedDelta
		ff.currentPos.Time = ff.currentTime
		vel.Time = ff.currentTime
		elapsed += time.Since(start)
		if ff.Verbose {
			fmt.Printf("Step %d ends (time = %v), step time: %v, total time: %v\n",
				i, ff.currentTime, time.Since(start), elapsed)
		}
	}
	if ff.Verbose {
		fmt.Printf("Particle advection ends, %d of %d particles out of bound\n",
			ff.currentPos.CountOutOfBound(), ff.Nx*ff.Ny)
	}
	return
}

// Continuous evaluates an analytic velocity function at every step.
type Continuous struct {
	Func VelocityFunc
	vel  *Velocity
}

func NewContinuous(fn VelocityFunc) *Continuous {
	return &Continuous{Func: fn}
}

func (c *Continuous) startRun(ff *FlowField) (err error) {
	if c.Func == nil {
		return fmt.Errorf("velocity function %w", ErrNotSet)
	}
	c.vel = nil
	return
}

// The velocity slot is replaced with a fresh field each step.
func (c *Continuous) updateVelocity(ff *FlowField) (err error) {
	vel := NewVelocity(ff.currentPos)
	vel.Evaluate(c.Func, ff.currentTime, ff.pm)
	c.vel = vel
	return
}

func (c *Continuous) setDirection(d Direction) {}

func (c *Continuous) velocity() *Velocity { return c.vel }
