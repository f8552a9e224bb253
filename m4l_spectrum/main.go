package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/decibelcooper/higgsplot"
	"github.com/decibelcooper/higgsplot/evio"
	"github.com/decibelcooper/higgsplot/fourlep"
)

var (
	title    = flag.String("title", "", "plot title")
	output   = flag.String("output", "out.png", "output file")
	nBins    = flag.Int("nbins", 37, "number of bins")
	minMass  = flag.Float64("minmass", 70, "minimum four-muon mass in GeV")
	maxMass  = flag.Float64("maxmass", 181, "maximum four-muon mass in GeV")
	nWorkers = flag.Int("workers", runtime.NumCPU(), "number of event workers")
	doProf   = flag.Bool("profile", false, "write a CPU profile")

	mcFiles  higgsplot.StringArrayFlags
	mcScales higgsplot.FloatArrayFlags
)

func init() {
	flag.Var(&mcFiles, "mc", "simulation input file (repeatable)")
	flag.Var(&mcScales, "mcscale", "per-entry weight for the corresponding -mc file (repeatable, default 1)")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <data-input-files>...

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 && len(mcFiles.Array) == 0 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	if *doProf {
		defer profile.Start().Stop()
	}

	p, _ := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = "Four-muon mass (GeV)"
	p.Y.Label.Text = "Events"
	p.X.Tick.Marker = higgsplot.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = higgsplot.PreciseTicks{NSuggestedTicks: 5}

	sel := fourlep.DefaultSelection()

	for i, filename := range mcFiles.Array {
		hist := hbook.NewH1D(*nBins, *minMass, *maxMass)
		fillM4LHist(hist, filename, sel, mcScales.Get(i, 1))

		h := hplot.NewH1D(hist)
		h.FillColor = nil
		h.LineStyle.Color = higgsplot.LineColor(i)
		h.Infos.Style = hplot.HInfoNone
		p.Add(h)
	}

	if flag.NArg() > 0 {
		dataHist := hbook.NewH1D(*nBins, *minMass, *maxMass)
		for _, filename := range flag.Args() {
			fillM4LHist(dataHist, filename, sel, 1)
		}

		errPoints := higgsplot.DataPoints(dataHist, *nBins, *minMass, *maxMass)
		scatter, _ := plotter.NewScatter(errPoints.XYs)
		scatter.GlyphStyle = draw.GlyphStyle{
			Shape:  draw.CircleGlyph{},
			Radius: vg.Points(2),
			Color:  color.RGBA{A: 255},
		}
		yerr, _ := plotter.NewYErrorBars(errPoints)
		p.Add(scatter, yerr)
	}

	p.Save(6*vg.Inch, 4*vg.Inch, *output)
}

func fillM4LHist(hist *hbook.H1D, filename string, sel fourlep.Selection, weight float64) {
	sc, err := evio.Open(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer sc.Close()

	results, err := evio.Process(sc, *nWorkers, func(evt evio.Event) (fourlep.Result, bool) {
		return fourlep.Reconstruct(sel, evt.Leptons)
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, res := range results {
		hist.Fill(res.M4L, weight)
	}
}
