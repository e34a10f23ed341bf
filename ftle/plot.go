package ftle

import (
	"bufio"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// grid exposes the FTLE over the initial particle coordinates as a GridXYZ.
type grid struct {
	f *FTLE
}

func (g grid) Dims() (c, r int) { return g.f.Nx, g.f.Ny }

func (g grid) Z(c, r int) float64 { return g.f.Get(c, r) }

func (g grid) X(c int) float64 {
	x, _ := g.f.ff.InitialPosition().Get(c, 0)
	return x
}

func (g grid) Y(r int) float64 {
	_, y := g.f.ff.InitialPosition().Get(0, r)
	return y
}

// WritePNG renders the field as a heat map over the initial particle grid.
func (f *FTLE) WritePNG(fileName, title string) (err error) {
	var (
		file *os.File
		p    = plot.New()
	)
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewHeatMap(grid{f: f}, moreland.Kindlmann().Palette(255)))

	c := vgimg.NewWith(vgimg.UseWH(8*vg.Inch, 5*vg.Inch), vgimg.UseDPI(150))
	p.Draw(draw.New(c))

	if file, err = os.Create(fileName); err != nil {
		return fmt.Errorf("unable to create [%s]: %w", fileName, err)
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if _, err = (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		return fmt.Errorf("unable to write png [%s]: %w", fileName, err)
	}
	if err = bw.Flush(); err != nil {
		return
	}
	return file.Close()
}
