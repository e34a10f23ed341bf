package model_problems

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notargets/golcs/model_problems/BowerJet"
	"github.com/notargets/golcs/model_problems/DoubleGyre"
)

type ModelType uint8

const (
	M_DoubleGyre ModelType = iota
	M_BowerJet
)

var modelNames = map[string]ModelType{
	"doublegyre": M_DoubleGyre,
	"bowerjet":   M_BowerJet,
	"bower":      M_BowerJet,
}

func NewModelType(label string) (mt ModelType, err error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(label))
	var ok bool
	if mt, ok = modelNames[key]; !ok {
		err = fmt.Errorf("unknown velocity model [%s], choose one of %v", label, ModelNames())
	}
	return
}

func ModelNames() (names []string) {
	for name := range modelNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// NewVelocityFunction builds the analytic velocity of a named model. An empty
// parameter list uses the model defaults.
func NewVelocityFunction(label string, parameters []float64) (fn func(x, y, t float64) (u, v float64), err error) {
	var mt ModelType
	if mt, err = NewModelType(label); err != nil {
		return
	}
	switch mt {
	case M_BowerJet:
		var bj *BowerJet.BowerJet
		if bj, err = BowerJet.NewBowerJetFromParameters(parameters); err != nil {
			return
		}
		fn = bj.Velocity
	case M_DoubleGyre:
		fallthrough
	default:
		var dg *DoubleGyre.DoubleGyre
		if dg, err = DoubleGyre.NewDoubleGyreFromParameters(parameters); err != nil {
			return
		}
		fn = dg.Velocity
	}
	return
}
