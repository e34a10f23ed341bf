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

	"github.com/spf13/cobra"

	"github.com/notargets/golcs/InputParameters"
	"github.com/notargets/golcs/flow"
	"github.com/notargets/golcs/ftle"
)

// DiscreteCmd represents the discrete command
var DiscreteCmd = &cobra.Command{
	Use:   "discrete",
	Short: "FTLE of velocity snapshots read from files",
	Long: `
Advects the particle grid through velocity snapshots sampled on the data grid,
interpolated in time between the two snapshots bracketing the current time and
bilinearly in space, then computes the FTLE field

golcs discrete -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		m := NewModelLCS(icFile)
		ip := processInput(m)
		if m.Verbose {
			ip.Print()
		}
		if _, err := RunDiscrete(m, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(DiscreteCmd)
	DiscreteCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Grid, DataGrid\n\t- DataDelta, DataBegin, DataEnd\n\t- VelocityPrefix")
}

func RunDiscrete(m *ModelLCS, ip *InputParameters.InputParametersLCS) (results []*ftle.FTLE, err error) {
	if err = ip.ValidateData(); err != nil {
		return
	}
	var (
		g  = ip.DataGrid
		ff *flow.FlowField
		d  *flow.Discrete
	)
	ff, d = flow.NewDiscreteFlowField(ip.Grid.Nx, ip.Grid.Ny, g.Nx, g.Ny)
	d.DataPosition().SetUniform(g.Xmin, g.Xmax, g.Ymin, g.Ymax)
	d.SetVelocityFileNamePrefix(ip.VelocityPrefix)
	if ip.VelocitySuffix != "" {
		d.SetVelocityFileNameSuffix(ip.VelocitySuffix)
	}
	if err = d.SetDataDelta(ip.DataDelta); err != nil {
		return
	}
	d.SetDataTimeRange(ip.DataBegin, ip.DataEnd)
	d.Verbose = m.Verbose
	if err = setupFlowField(ff, m, ip); err != nil {
		return
	}
	return RunLCS(ff, m, ip)
}
