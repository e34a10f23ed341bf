/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/notargets/golcs/InputParameters"
	"github.com/notargets/golcs/flow"
	"github.com/notargets/golcs/ftle"
	"github.com/notargets/golcs/utils"
)

type ModelLCS struct {
	ICFile    string
	Verbose   bool
	ProcLimit int
}

func NewModelLCS(icFile string) *ModelLCS {
	return &ModelLCS{
		ICFile:    icFile,
		Verbose:   viper.GetBool("verbose"),
		ProcLimit: viper.GetInt("procs"),
	}
}

var exampleFile = `
########################################
Title: "Double Gyre"
Model: DoubleGyre # Can be "BowerJet"
Parameters: [0.1, 0.1, 0.6283185307179586] # Empty for model defaults
Grid: # Particle grid
  Nx: 200
  Ny: 100
  Xmin: 0
  Xmax: 2
  Ymin: 0
  Ymax: 1
Delta: 0.1
Steps: 200
InitialTime: 0
Direction: Both # Can be "Forward" or "Backward"
OutputPrefix: double_gyre
PlotPNG: true
# Velocity data, used by the discrete and generate commands
DataGrid:
  Nx: 21
  Ny: 11
  Xmin: 0
  Xmax: 2
  Ymin: 0
  Ymax: 1
DataDelta: 1
DataBegin: 0
DataEnd: 20
VelocityPrefix: vel_
########################################
`

func processInput(m *ModelLCS) (ip *InputParameters.InputParametersLCS) {
	var (
		err  error
		data []byte
	)
	if len(m.ICFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(m.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParametersLCS{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	if err = ip.Validate(); err != nil {
		panic(err)
	}
	return
}

func setupFlowField(ff *flow.FlowField, m *ModelLCS, ip *InputParameters.InputParametersLCS) (err error) {
	g := ip.Grid
	ff.InitialPosition().SetUniform(g.Xmin, g.Xmax, g.Ymin, g.Ymax)
	if err = ff.SetDelta(ip.Delta); err != nil {
		return
	}
	ff.SetStep(ip.Steps)
	ff.Verbose = m.Verbose
	ff.ProcLimit = m.ProcLimit
	return
}

// OutputFileName is prefix_ftle_pos for forward runs and prefix_ftle_neg for
// backward runs, with the given extension.
func OutputFileName(prefix string, d flow.Direction, ext string) string {
	sign := "pos"
	if d == flow.Backward {
		sign = "neg"
	}
	if prefix == "" {
		prefix = "lcs"
	}
	return prefix + "_ftle_" + sign + ext
}

// RunLCS advects and computes the FTLE once per requested direction. When
// both directions are requested the backward run starts where the forward
// run ended.
func RunLCS(ff *flow.FlowField, m *ModelLCS, ip *InputParameters.InputParametersLCS) (results []*ftle.FTLE, err error) {
	var (
		dirs  []flow.Direction
		start = time.Now()
	)
	if dirs, err = ip.GetDirections(); err != nil {
		return
	}
	for k, d := range dirs {
		t0 := ip.InitialTime
		if k > 0 {
			t0 = ip.InitialTime + float64(ip.Steps)*ip.Delta
		}
		ff.SetDirection(d)
		ff.SetInitialTime(t0)
		if err = ff.Run(); err != nil {
			return
		}
		f := ftle.New(ff)
		f.Verbose, f.ProcLimit = m.Verbose, m.ProcLimit
		if err = f.Calculate(); err != nil {
			return
		}
		fileName := OutputFileName(ip.OutputPrefix, d, ".txt")
		if err = f.Field().WriteFile(fileName); err != nil {
			return
		}
		fmt.Printf("%s FTLE over [%v,%v] written to %s\n", d, t0, ff.Time(), fileName)
		if ip.PlotPNG {
			pngName := OutputFileName(ip.OutputPrefix, d, ".png")
			title := fmt.Sprintf("%s %s FTLE", ip.Title, d)
			if err = f.WritePNG(pngName, title); err != nil {
				return
			}
			fmt.Printf("%s FTLE plot written to %s\n", d, pngName)
		}
		results = append(results, f)
	}
	if m.Verbose {
		fmt.Printf("Total execution time: %v, %s\n", time.Since(start), utils.GetMemUsage())
	}
	return
}
