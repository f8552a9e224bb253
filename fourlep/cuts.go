package fourlep

import "math"

// Selection holds the muon quality and Z-window cuts of the four-muon
// analysis. Use DefaultSelection for the values of the published
// exercise; individual fields may be overridden before use.
type Selection struct {
	MinPt     float64 // GeV
	MaxAbsEta float64
	MaxIso    float64
	MaxSIP3D  float64
	MaxAbsDxy float64 // cm
	MaxAbsDz  float64 // cm

	MinZ1Mass float64 // GeV
	MaxZ1Mass float64
	MinZ2Mass float64
	MaxZ2Mass float64
	MinDeltaR float64 // between the two muons of a pair
}

// DefaultSelection returns the cut values of the CMS open-data
// four-muon exercise.
func DefaultSelection() Selection {
	return Selection{
		MinPt:     5,
		MaxAbsEta: 2.4,
		MaxIso:    0.40,
		MaxSIP3D:  4,
		MaxAbsDxy: 0.5,
		MaxAbsDz:  1.0,

		MinZ1Mass: 40,
		MaxZ1Mass: 120,
		MinZ2Mass: 12,
		MaxZ2Mass: 120,
		MinDeltaR: 0.02,
	}
}

// GoodLepton reports whether a muon passes the kinematic, isolation,
// and impact-parameter cuts.
func (s Selection) GoodLepton(l *Lepton) bool {
	if l.P.Pt() < s.MinPt || math.Abs(l.P.Eta()) > s.MaxAbsEta {
		return false
	}
	if l.Iso > s.MaxIso {
		return false
	}
	if l.SIP3D() > s.MaxSIP3D {
		return false
	}
	if math.Abs(l.Dxy) > s.MaxAbsDxy || math.Abs(l.Dz) > s.MaxAbsDz {
		return false
	}
	return true
}

// GoodLeptons returns the muons passing GoodLepton, preserving their
// relative order. The input is not modified.
func (s Selection) GoodLeptons(leptons []Lepton) []Lepton {
	var good []Lepton
	for i := range leptons {
		if s.GoodLepton(&leptons[i]) {
			good = append(good, leptons[i])
		}
	}
	return good
}

// GoodAssignment reports whether an assignment's pair masses fall in
// the Z1/Z2 windows and its paired muons are separated by the minimum
// angular distance.
func (s Selection) GoodAssignment(leptons []Lepton, a PairAssignment) bool {
	if a.MZ1 < s.MinZ1Mass || a.MZ1 > s.MaxZ1Mass {
		return false
	}
	if a.MZ2 < s.MinZ2Mass || a.MZ2 > s.MaxZ2Mass {
		return false
	}
	for _, pair := range [2][2]int{a.Z1, a.Z2} {
		if deltaR(&leptons[pair[0]], &leptons[pair[1]]) < s.MinDeltaR {
			return false
		}
	}
	return true
}

// Result holds the reconstructed masses of one selected four-muon
// candidate.
type Result struct {
	M4L float64
	MZ1 float64
	MZ2 float64
}

// Reconstruct applies the lepton selection, enumerates the pair
// candidates, picks the best Z-pair assignment, and applies the mass
// window cuts. The second return value reports whether the event
// yields a selected candidate.
func Reconstruct(sel Selection, leptons []Lepton) (Result, bool) {
	good := sel.GoodLeptons(leptons)
	best, ok := SelectBestAssignment(good, FindCandidates(good))
	if !ok || !sel.GoodAssignment(good, best) {
		return Result{}, false
	}
	return Result{
		M4L: FourLeptonMass(good, best.Cand),
		MZ1: best.MZ1,
		MZ2: best.MZ2,
	}, true
}
