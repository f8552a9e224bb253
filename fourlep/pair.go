package fourlep

import "math"

// NominalZMass is the Z boson mass in GeV used to label pair
// assignments.
const NominalZMass = 91.1876

// A PairAssignment labels the two pairs of a Candidate: Z1 is the pair
// whose invariant mass is closer to the nominal Z mass, Z2 the other.
type PairAssignment struct {
	Cand Candidate

	Z1  [2]int
	Z2  [2]int
	MZ1 float64
	MZ2 float64
}

// Assign labels the pairs of a single candidate. When both pairs are
// equally distant from the nominal Z mass, the first pair is Z1.
func Assign(leptons []Lepton, cand Candidate) PairAssignment {
	m01 := PairMass(leptons, cand[0], cand[1])
	m23 := PairMass(leptons, cand[2], cand[3])

	a := PairAssignment{Cand: cand}
	if math.Abs(m23-NominalZMass) < math.Abs(m01-NominalZMass) {
		a.Z1, a.MZ1 = [2]int{cand[2], cand[3]}, m23
		a.Z2, a.MZ2 = [2]int{cand[0], cand[1]}, m01
	} else {
		a.Z1, a.MZ1 = [2]int{cand[0], cand[1]}, m01
		a.Z2, a.MZ2 = [2]int{cand[2], cand[3]}, m23
	}
	return a
}

// SelectBestAssignment picks, among all candidates of one event, the
// assignment whose Z1 mass is closest to the nominal Z mass. Ties keep
// the first-enumerated candidate. The second return value reports
// whether any assignment exists; an empty candidate list is an absence,
// not an error.
func SelectBestAssignment(leptons []Lepton, cands []Candidate) (PairAssignment, bool) {
	var (
		best  PairAssignment
		found bool
	)
	for _, cand := range cands {
		a := Assign(leptons, cand)
		if !found || math.Abs(a.MZ1-NominalZMass) < math.Abs(best.MZ1-NominalZMass) {
			best = a
			found = true
		}
	}
	return best, found
}
