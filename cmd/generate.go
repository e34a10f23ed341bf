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
	"math"

	"github.com/spf13/cobra"

	"github.com/notargets/golcs/InputParameters"
	"github.com/notargets/golcs/flow"
	"github.com/notargets/golcs/model_problems"
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write velocity snapshots of an analytic model",
	Long: `
Samples an analytic velocity model on the data grid every DataDelta from
DataBegin to DataEnd and writes one snapshot file per time, named
VelocityPrefix + int(time) + VelocitySuffix, for use by the discrete command

golcs generate -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		m := NewModelLCS(icFile)
		ip := processInput(m)
		if _, err := RunGenerate(m, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(GenerateCmd)
	GenerateCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Model\n\t- DataGrid\n\t- DataDelta, DataBegin, DataEnd")
}

// RunGenerate returns the names of the written files.
func RunGenerate(m *ModelLCS, ip *InputParameters.InputParametersLCS) (files []string, err error) {
	if err = ip.ValidateData(); err != nil {
		return
	}
	var (
		fn    func(x, y, t float64) (u, v float64)
		g     = ip.DataGrid
		begin = math.Min(ip.DataBegin, ip.DataEnd)
		n     = int(math.Round(math.Abs(ip.DataEnd-ip.DataBegin) / ip.DataDelta))
	)
	if fn, err = model_problems.NewVelocityFunction(ip.Model, ip.Parameters); err != nil {
		return
	}
	d := flow.NewDiscrete(g.Nx, g.Ny)
	d.SetVelocityFileNamePrefix(ip.VelocityPrefix)
	if ip.VelocitySuffix != "" {
		d.SetVelocityFileNameSuffix(ip.VelocitySuffix)
	}
	pos := d.DataPosition()
	pos.SetUniform(g.Xmin, g.Xmax, g.Ymin, g.Ymax)
	vel := flow.NewVelocity(pos)
	for k := 0; k <= n; k++ {
		t := begin + float64(k)*ip.DataDelta
		vel.Evaluate(fn, t, nil)
		fileName := d.FileName(t)
		if err = vel.WriteFile(fileName); err != nil {
			return
		}
		if m.Verbose {
			fmt.Printf("Wrote velocity data at time = %v to %s\n", t, fileName)
		}
		files = append(files, fileName)
	}
	return
}
