package flow

import (
	"fmt"
	"strings"
)

type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// Sign is +1 for Forward and -1 for Backward integration.
func (d Direction) Sign() float64 {
	if d == Backward {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

func NewDirection(label string) (d Direction, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "forward", "f", "+", "":
		d = Forward
	case "backward", "b", "-":
		d = Backward
	default:
		err = fmt.Errorf("unknown direction [%s], must be Forward or Backward", label)
	}
	return
}
