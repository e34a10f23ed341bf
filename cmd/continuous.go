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
	"github.com/notargets/golcs/model_problems"
)

// ContinuousCmd represents the continuous command
var ContinuousCmd = &cobra.Command{
	Use:   "continuous",
	Short: "FTLE of an analytic velocity model",
	Long: `
Advects the particle grid through an analytic velocity model and computes the
FTLE field, models are: ` + fmt.Sprint(model_problems.ModelNames()) + `

golcs continuous -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		m := NewModelLCS(icFile)
		ip := processInput(m)
		if m.Verbose {
			ip.Print()
		}
		if _, err := RunContinuous(m, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(ContinuousCmd)
	ContinuousCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Model\n\t- Grid\n\t- Delta, Steps")
}

func RunContinuous(m *ModelLCS, ip *InputParameters.InputParametersLCS) (results []*ftle.FTLE, err error) {
	var fn func(x, y, t float64) (u, v float64)
	if fn, err = model_problems.NewVelocityFunction(ip.Model, ip.Parameters); err != nil {
		return
	}
	ff := flow.NewContinuousFlowField(ip.Grid.Nx, ip.Grid.Ny, fn)
	if err = setupFlowField(ff, m, ip); err != nil {
		return
	}
	return RunLCS(ff, m, ip)
}
