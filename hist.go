package higgsplot

import (
	"image/color"
	"math"

	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// LineColor returns the line color for the i-th input file, shared by
// the analysis commands so overlaid plots stay comparable.
func LineColor(i int) color.RGBA {
	switch i {
	case 1:
		return color.RGBA{G: 255, A: 255}
	case 2:
		return color.RGBA{B: 255, A: 255}
	case 3:
		return color.RGBA{R: 255, B: 127, G: 127, A: 255}
	}
	return color.RGBA{A: 255}
}

// DataPoints converts a histogram of observed counts into bin-center
// points with Poisson errors, for drawing data on top of simulated
// distributions. Empty bins are skipped.
func DataPoints(h *hbook.H1D, nBins int, min, max float64) plotutil.ErrorPoints {
	binHalfWidth := (max - min) / float64(2*nBins)

	var (
		points  plotter.XYs
		xErrors plotter.XErrors
		yErrors plotter.YErrors
	)
	for i := 0; i < nBins; i++ {
		x, y := h.XY(i)
		if y == 0 {
			continue
		}
		yErr := math.Sqrt(y)
		points = append(points, struct{ X, Y float64 }{x + binHalfWidth, y})
		xErrors = append(xErrors, struct{ Low, High float64 }{binHalfWidth, binHalfWidth})
		yErrors = append(yErrors, struct{ Low, High float64 }{yErr, yErr})
	}
	return plotutil.ErrorPoints{XYs: points, XErrors: xErrors, YErrors: yErrors}
}
