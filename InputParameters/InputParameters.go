package InputParameters

import (
	"fmt"
	"math"

	"github.com/ghodss/yaml"

	"github.com/notargets/golcs/flow"
)

type Grid struct {
	Nx   int     `yaml:"Nx"`
	Ny   int     `yaml:"Ny"`
	Xmin float64 `yaml:"Xmin"`
	Xmax float64 `yaml:"Xmax"`
	Ymin float64 `yaml:"Ymin"`
	Ymax float64 `yaml:"Ymax"`
}

func (g Grid) validate(name string) (err error) {
	switch {
	case g.Nx < 2 || g.Ny < 2:
		err = fmt.Errorf("%s needs at least 2 points per axis, have [%d,%d]", name, g.Nx, g.Ny)
	case !(g.Xmax > g.Xmin) || !(g.Ymax > g.Ymin):
		err = fmt.Errorf("%s extent is empty: x [%v,%v], y [%v,%v]", name, g.Xmin, g.Xmax, g.Ymin, g.Ymax)
	}
	return
}

// Parameters obtained from the YAML input file
type InputParametersLCS struct {
	Title          string    `yaml:"Title"`
	Model          string    `yaml:"Model"`      // Analytic velocity model, see model_problems
	Parameters     []float64 `yaml:"Parameters"` // Model parameters, empty for defaults
	Grid           Grid      `yaml:"Grid"`       // Particle grid
	DataGrid       Grid      `yaml:"DataGrid"`   // Grid the velocity snapshots are sampled on
	Delta          float64   `yaml:"Delta"`
	Steps          int       `yaml:"Steps"`
	InitialTime    float64   `yaml:"InitialTime"`
	Direction      string    `yaml:"Direction"` // Forward, Backward or Both
	DataDelta      float64   `yaml:"DataDelta"`
	DataBegin      float64   `yaml:"DataBegin"`
	DataEnd        float64   `yaml:"DataEnd"`
	VelocityPrefix string    `yaml:"VelocityPrefix"`
	VelocitySuffix string    `yaml:"VelocitySuffix"`
	OutputPrefix   string    `yaml:"OutputPrefix"`
	PlotPNG        bool      `yaml:"PlotPNG"`
}

func (ip *InputParametersLCS) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Validate checks what every run needs. Discrete runs also call ValidateData.
func (ip *InputParametersLCS) Validate() (err error) {
	if err = ip.Grid.validate("Grid"); err != nil {
		return
	}
	if !(ip.Delta > 0) {
		return fmt.Errorf("Delta must be positive, have %v", ip.Delta)
	}
	if ip.Steps < 1 {
		return fmt.Errorf("Steps must be at least 1, have %d", ip.Steps)
	}
	_, err = ip.GetDirections()
	return
}

func (ip *InputParametersLCS) ValidateData() (err error) {
	if err = ip.DataGrid.validate("DataGrid"); err != nil {
		return
	}
	if !(ip.DataDelta > 0) {
		return fmt.Errorf("DataDelta must be positive, have %v", ip.DataDelta)
	}
	if math.Abs(ip.DataEnd-ip.DataBegin) < ip.DataDelta {
		return fmt.Errorf("data time range [%v,%v] is shorter than DataDelta %v",
			ip.DataBegin, ip.DataEnd, ip.DataDelta)
	}
	if ip.VelocityPrefix == "" {
		return fmt.Errorf("VelocityPrefix is required for velocity data")
	}
	return
}

// GetDirections returns the run directions in order, "Both" is Forward then
// Backward. An empty direction is Forward.
func (ip *InputParametersLCS) GetDirections() (dirs []flow.Direction, err error) {
	if ip.Direction == "Both" || ip.Direction == "both" {
		return []flow.Direction{flow.Forward, flow.Backward}, nil
	}
	var d flow.Direction
	if d, err = flow.NewDirection(ip.Direction); err != nil {
		return
	}
	return []flow.Direction{d}, nil
}

func (ip *InputParametersLCS) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	if ip.Model != "" {
		fmt.Printf("[%s]\t\t= Model\n", ip.Model)
		fmt.Printf("%v\t\t= Parameters\n", ip.Parameters)
	}
	fmt.Printf("[%d,%d]\t\t\t= Grid Size\n", ip.Grid.Nx, ip.Grid.Ny)
	fmt.Printf("x [%v,%v], y [%v,%v]\t= Grid Extent\n", ip.Grid.Xmin, ip.Grid.Xmax, ip.Grid.Ymin, ip.Grid.Ymax)
	fmt.Printf("%8.5f\t\t= Delta\n", ip.Delta)
	fmt.Printf("[%d]\t\t\t= Steps\n", ip.Steps)
	fmt.Printf("%8.5f\t\t= InitialTime\n", ip.InitialTime)
	fmt.Printf("[%s]\t\t= Direction\n", ip.Direction)
	if ip.VelocityPrefix != "" {
		fmt.Printf("[%d,%d]\t\t\t= Data Grid Size\n", ip.DataGrid.Nx, ip.DataGrid.Ny)
		fmt.Printf("%8.5f\t\t= DataDelta\n", ip.DataDelta)
		fmt.Printf("[%v,%v]\t\t= Data Time Range\n", ip.DataBegin, ip.DataEnd)
		fmt.Printf("[%s]\t\t= VelocityPrefix\n", ip.VelocityPrefix)
	}
	fmt.Printf("[%s]\t\t= OutputPrefix\n", ip.OutputPrefix)
}
