package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"runtime"

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
	prefix   = flag.String("prefix", "out", "output file prefix")
	nBins    = flag.Int("nbins", 36, "number of bins")
	nWorkers = flag.Int("workers", runtime.NumCPU(), "number of event workers")

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

	sel := fourlep.DefaultSelection()

	// The histogram ranges are the selection windows.
	var (
		mcZ1Hists, mcZ2Hists []*hbook.H1D
		dataZ1               = hbook.NewH1D(*nBins, sel.MinZ1Mass, sel.MaxZ1Mass)
		dataZ2               = hbook.NewH1D(*nBins, sel.MinZ2Mass, sel.MaxZ2Mass)
	)

	for i, filename := range mcFiles.Array {
		z1 := hbook.NewH1D(*nBins, sel.MinZ1Mass, sel.MaxZ1Mass)
		z2 := hbook.NewH1D(*nBins, sel.MinZ2Mass, sel.MaxZ2Mass)
		fillZHists(z1, z2, filename, sel, mcScales.Get(i, 1))
		mcZ1Hists = append(mcZ1Hists, z1)
		mcZ2Hists = append(mcZ2Hists, z2)
	}
	for _, filename := range flag.Args() {
		fillZHists(dataZ1, dataZ2, filename, sel, 1)
	}

	savePlot("Z1 mass (GeV)", *prefix+"_z1.png", mcZ1Hists, dataZ1, sel.MinZ1Mass, sel.MaxZ1Mass)
	savePlot("Z2 mass (GeV)", *prefix+"_z2.png", mcZ2Hists, dataZ2, sel.MinZ2Mass, sel.MaxZ2Mass)
}

func fillZHists(z1, z2 *hbook.H1D, filename string, sel fourlep.Selection, weight float64) {
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
		z1.Fill(res.MZ1, weight)
		z2.Fill(res.MZ2, weight)
	}
}

func savePlot(label, output string, mcHists []*hbook.H1D, dataHist *hbook.H1D, min, max float64) {
	p, _ := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = label
	p.Y.Label.Text = "Events"
	p.X.Tick.Marker = higgsplot.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = higgsplot.PreciseTicks{NSuggestedTicks: 5}

	for i, hist := range mcHists {
		h := hplot.NewH1D(hist)
		h.FillColor = nil
		h.LineStyle.Color = higgsplot.LineColor(i)
		h.Infos.Style = hplot.HInfoNone
		p.Add(h)
	}

	errPoints := higgsplot.DataPoints(dataHist, *nBins, min, max)
	if len(errPoints.XYs) > 0 {
		scatter, _ := plotter.NewScatter(errPoints.XYs)
		scatter.GlyphStyle = draw.GlyphStyle{
			Shape:  draw.CircleGlyph{},
			Radius: vg.Points(2),
			Color:  color.RGBA{A: 255},
		}
		yerr, _ := plotter.NewYErrorBars(errPoints)
		p.Add(scatter, yerr)
	}

	p.Save(6*vg.Inch, 4*vg.Inch, output)
}
