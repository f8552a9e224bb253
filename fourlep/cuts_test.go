package fourlep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoodLepton(t *testing.T) {
	sel := DefaultSelection()

	good := mkLepton(20, 1.0, 0, +1)
	good.Iso = 0.1
	good.Dxy, good.DxyErr = 0.01, 0.01
	good.Dz, good.DzErr = 0.02, 0.02
	assert.True(t, sel.GoodLepton(&good))

	for name, mod := range map[string]func(*Lepton){
		"low pt":    func(l *Lepton) { l.P = NewLepton(4, 1.0, 0, 0, +1).P },
		"high eta":  func(l *Lepton) { l.P = NewLepton(20, 2.5, 0, 0, +1).P },
		"isolation": func(l *Lepton) { l.Iso = 0.5 },
		"dxy":       func(l *Lepton) { l.Dxy = 0.6 },
		"dz":        func(l *Lepton) { l.Dz = 1.5 },
		"sip3d":     func(l *Lepton) { l.Dxy, l.DxyErr, l.DzErr = 0.3, 0.01, 0.01 },
	} {
		l := good
		mod(&l)
		assert.False(t, sel.GoodLepton(&l), name)
	}
}

func TestGoodLeptonsKeepsOrder(t *testing.T) {
	sel := DefaultSelection()
	leptons := []Lepton{
		mkLepton(20, 0, 0, +1),
		mkLepton(2, 0, 1, -1), // fails the pt cut
		mkLepton(30, 0, 2, -1),
	}
	good := sel.GoodLeptons(leptons)
	require.Len(t, good, 2)
	assert.InDelta(t, 20.0, good[0].P.Pt(), 1e-9)
	assert.InDelta(t, 30.0, good[1].P.Pt(), 1e-9)
}

func TestGoodAssignmentWindows(t *testing.T) {
	sel := DefaultSelection()
	leptons := append(backToBackPair(45.5, 0), backToBackPair(15, math.Pi/2)...)

	a := Assign(leptons, Candidate{0, 1, 2, 3})
	assert.True(t, sel.GoodAssignment(leptons, a))

	low := a
	low.MZ1 = 30 // below the Z1 window
	assert.False(t, sel.GoodAssignment(leptons, low))

	low = a
	low.MZ2 = 5 // below the Z2 window
	assert.False(t, sel.GoodAssignment(leptons, low))
}

func TestGoodAssignmentDeltaR(t *testing.T) {
	sel := DefaultSelection()
	// Collinear pair: fails the minimum separation.
	leptons := []Lepton{
		mkLepton(45, 0, 0, +1),
		mkLepton(46, 0, 0.001, -1),
		mkLepton(15, 0, math.Pi/2, +1),
		mkLepton(15, 0, -math.Pi/2, -1),
	}
	a := Assign(leptons, Candidate{0, 1, 2, 3})
	a.MZ1, a.MZ2 = 91, 30 // windows pass, separation decides
	assert.False(t, sel.GoodAssignment(leptons, a))
}

func TestReconstruct(t *testing.T) {
	sel := DefaultSelection()
	leptons := append(backToBackPair(45.5, 0), backToBackPair(15, math.Pi/2)...)

	res, ok := Reconstruct(sel, leptons)
	require.True(t, ok)
	assert.InDelta(t, 91.0, res.MZ1, 1e-9)
	assert.InDelta(t, 30.0, res.MZ2, 1e-9)
	assert.InDelta(t, 121.0, res.M4L, 1e-9)
}

func TestReconstructTooFewGoodLeptons(t *testing.T) {
	sel := DefaultSelection()
	leptons := append(backToBackPair(45.5, 0), backToBackPair(15, math.Pi/2)...)
	leptons[3].Iso = 0.9 // drops below four good muons

	_, ok := Reconstruct(sel, leptons)
	assert.False(t, ok)
}
