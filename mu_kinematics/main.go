package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/decibelcooper/higgsplot"
	"github.com/decibelcooper/higgsplot/evio"
	"github.com/decibelcooper/higgsplot/fourlep"
)

var (
	pTMax    = flag.Float64("maxpt", 100, "maximum transverse momentum")
	etaLimit = flag.Float64("etalimit", 2.4, "maximum absolute value of eta")
	nBinsPT  = flag.Int("nbinspt", 20, "number of bins in transverse momentum")
	nBinsEta = flag.Int("nbinseta", 20, "number of bins in eta")
	title    = flag.String("title", "", "plot title")
	output   = flag.String("output", "out.png", "output file")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <input-files>...

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	p, _ := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = "eta"
	p.Y.Label.Text = "p_T (GeV)"
	p.X.Tick.Marker = higgsplot.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = higgsplot.PreciseTicks{NSuggestedTicks: 5}

	sel := fourlep.DefaultSelection()
	grid := NewOccupancyGrid(*nBinsEta, -*etaLimit, *etaLimit, *nBinsPT, sel.MinPt, *pTMax)

	for _, filename := range flag.Args() {
		sc, err := evio.Open(filename)
		if err != nil {
			log.Fatal(err)
		}

		for sc.Next() {
			evt := sc.Event()
			for i := range evt.Leptons {
				l := &evt.Leptons[i]
				if sel.GoodLepton(l) {
					grid.Fill(l.P.Eta(), l.P.Pt())
				}
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
		sc.Close()
	}

	img := vgimg.New(670, 400)
	dc := draw.New(img)
	dc0 := draw.Crop(dc, 0, -70, 0, 0)
	dc1 := draw.Crop(dc, 620, 0, 0, 0)

	colorMap := moreland.ExtendedBlackBody()
	colorMap.SetMin(0)
	colorMap.SetMax(grid.MaxZ())
	pal := colorMap.Palette(1000)
	heatMap := plotter.NewHeatMap(grid, pal)
	heatMap.Min = 0
	heatMap.Max = grid.MaxZ()
	p.Add(heatMap)

	p.Draw(dc0)

	p, _ = plot.New()

	colorBar := &plotter.ColorBar{ColorMap: colorMap}
	colorBar.Vertical = true
	p.Add(colorBar)
	p.HideX()
	p.Y.Padding = 0

	p.Draw(dc1)

	w, err := os.Create(*output)
	if err != nil {
		log.Panic(err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		log.Panic(err)
	}
}

// OccupancyGrid counts selected muons per (eta, pT) cell for drawing
// with a heat map.
type OccupancyGrid struct {
	h              *hbook.H2D
	nBinsX, nBinsY int
}

func NewOccupancyGrid(nBinsX int, xLow, xHigh float64, nBinsY int, yLow, yHigh float64) *OccupancyGrid {
	return &OccupancyGrid{
		hbook.NewH2D(nBinsX, xLow, xHigh, nBinsY, yLow, yHigh),
		nBinsX, nBinsY,
	}
}

func (g *OccupancyGrid) Fill(x, y float64) {
	g.h.Fill(x, y, 1)
}

func (g *OccupancyGrid) Dims() (int, int) {
	return g.nBinsX, g.nBinsY
}

func (g *OccupancyGrid) Z(i, j int) float64 {
	return g.h.GridXYZ().Z(i, j)
}

func (g *OccupancyGrid) X(i int) float64 {
	return g.h.GridXYZ().X(i)
}

func (g *OccupancyGrid) Y(j int) float64 {
	return g.h.GridXYZ().Y(j)
}

// MaxZ returns the largest cell count, for scaling the color map.
func (g *OccupancyGrid) MaxZ() float64 {
	max := 1.0
	for i := 0; i < g.nBinsX; i++ {
		for j := 0; j < g.nBinsY; j++ {
			if z := g.Z(i, j); z > max {
				max = z
			}
		}
	}
	return max
}
