// Package higgsplot provides the shared plotting helpers of the
// four-muon analysis commands: axis tick markers, repeatable flag
// values, and histogram drawing utilities.
package higgsplot

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks is a tick marker that chooses major tick values with the
// fewest digits needed to distinguish them, rather than truncating.
type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	if t.NSuggestedTicks == 0 {
		t.NSuggestedTicks = 4
	}

	if max <= min {
		panic("illegal range")
	}

	tens := math.Pow10(int(math.Floor(math.Log10(max - min))))
	n := (max - min) / tens
	for n < float64(t.NSuggestedTicks)-1 {
		tens /= 10
		n = (max - min) / tens
	}

	majorMult := int(n / float64(t.NSuggestedTicks-1))
	switch majorMult {
	case 7:
		majorMult = 6
	case 9:
		majorMult = 8
	}
	majorDelta := float64(majorMult) * tens

	var labeled []float64
	val := math.Floor(min/majorDelta) * majorDelta
	for ; val <= max; val += majorDelta {
		if val >= min {
			labeled = append(labeled, val)
		}
	}
	prec := int(math.Ceil(math.Log10(val)) - math.Floor(math.Log10(majorDelta)))

	var ticks []plot.Tick
	for _, v := range labeled {
		v = roundPrec(v, prec)
		ticks = append(ticks, plot.Tick{
			Value: v,
			Label: strconv.FormatFloat(v, 'g', -1, 64),
		})
	}

	minorDelta := majorDelta / 2
	switch majorMult {
	case 3, 6:
		minorDelta = majorDelta / 3
	case 5:
		minorDelta = majorDelta / 5
	}

	for val = math.Floor(min/minorDelta) * minorDelta; val <= max; val += minorDelta {
		if val < min || hasTick(ticks, val) {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: val})
	}
	return ticks
}

func hasTick(ticks []plot.Tick, val float64) bool {
	for _, t := range ticks {
		if t.Value == val {
			return true
		}
	}
	return false
}

func roundPrec(x float64, prec int) float64 {
	if x == 0 {
		// keep zero free of the negative bit
		return 0
	}
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(prec)
	intermed := x * pow
	if math.IsInf(intermed, 0) {
		return x
	}
	if x < 0 {
		x = math.Ceil(intermed - 0.5)
	} else {
		x = math.Floor(intermed + 0.5)
	}
	if x == 0 {
		return 0
	}
	return x / pow
}
