package fourlep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backToBackPair returns an opposite-charge pair of massless leptons
// with transverse momentum pt each, emitted back to back at the given
// azimuth. Its invariant mass is 2*pt.
func backToBackPair(pt, phi float64) []Lepton {
	return []Lepton{
		mkLepton(pt, 0, phi, +1),
		mkLepton(pt, 0, phi+math.Pi, -1),
	}
}

func TestPairMass(t *testing.T) {
	leptons := backToBackPair(45.5, 0)
	assert.InDelta(t, 91.0, PairMass(leptons, 0, 1), 1e-9)
}

func TestAssignLabelsCloserPair(t *testing.T) {
	// Pair (0,1) has mass 91.0, pair (2,3) has mass 30.0.
	leptons := append(backToBackPair(45.5, 0), backToBackPair(15, math.Pi/2)...)
	a := Assign(leptons, Candidate{0, 1, 2, 3})

	assert.Equal(t, [2]int{0, 1}, a.Z1)
	assert.Equal(t, [2]int{2, 3}, a.Z2)
	assert.InDelta(t, 91.0, a.MZ1, 1e-9)
	assert.InDelta(t, 30.0, a.MZ2, 1e-9)

	// Swapping the pairs in the candidate must not change the labels.
	leptons = append(backToBackPair(15, math.Pi/2), backToBackPair(45.5, 0)...)
	a = Assign(leptons, Candidate{0, 1, 2, 3})
	assert.Equal(t, [2]int{2, 3}, a.Z1)
	assert.InDelta(t, 91.0, a.MZ1, 1e-9)
	assert.InDelta(t, 30.0, a.MZ2, 1e-9)
}

func TestAssignTieKeepsFirstPair(t *testing.T) {
	// Kinematically identical pairs: exactly equal masses.
	leptons := append(backToBackPair(30, 0), backToBackPair(30, 0)...)
	a := Assign(leptons, Candidate{0, 1, 2, 3})
	assert.Equal(t, [2]int{0, 1}, a.Z1)
	assert.Equal(t, [2]int{2, 3}, a.Z2)
}

func TestSelectBestAssignmentEmpty(t *testing.T) {
	_, ok := SelectBestAssignment(nil, nil)
	assert.False(t, ok)
}

func TestSelectBestAssignment(t *testing.T) {
	leptons := append(backToBackPair(45.5, 0), backToBackPair(15, math.Pi/2)...)
	cands := FindCandidates(leptons)
	require.Len(t, cands, 2)

	best, ok := SelectBestAssignment(leptons, cands)
	require.True(t, ok)
	assert.Equal(t, Candidate{0, 1, 2, 3}, best.Cand)
	assert.InDelta(t, 91.0, best.MZ1, 1e-9)
	assert.InDelta(t, 30.0, best.MZ2, 1e-9)

	// The cross pairing (0,3)&(1,2) is farther from the Z mass than
	// either straight pair and must lose regardless of enumeration
	// order.
	cross := Assign(leptons, cands[1])
	assert.True(t,
		math.Abs(best.MZ1-NominalZMass) < math.Abs(cross.MZ1-NominalZMass))
}

func TestFourLeptonMass(t *testing.T) {
	// Two back-to-back massless pairs: the total momentum vanishes and
	// the four-lepton mass is the summed energy.
	leptons := append(backToBackPair(45.5, 0), backToBackPair(15, math.Pi/2)...)
	assert.InDelta(t, 121.0, FourLeptonMass(leptons, Candidate{0, 1, 2, 3}), 1e-9)
}
