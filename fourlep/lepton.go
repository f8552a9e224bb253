// Package fourlep reconstructs four-muon candidates: it enumerates the
// ways an event's muons split into two opposite-charge pairs, labels the
// Z boson candidates of each splitting, and applies the selection cuts of
// the four-lepton analysis.
package fourlep

import (
	"math"

	"go-hep.org/x/hep/fmom"
)

// Lepton is one reconstructed muon, carrying its electric charge, its
// four-momentum, and the quality variables used by the selection cuts.
// Leptons are identified within an event by their position in the
// event's lepton list.
type Lepton struct {
	P      fmom.PtEtaPhiM
	Charge int // +1 or -1

	Iso    float64 // relative isolation in a dR=0.4 cone
	Dxy    float64 // transverse impact parameter (cm)
	DxyErr float64
	Dz     float64 // longitudinal impact parameter (cm)
	DzErr  float64
}

// NewLepton builds a lepton from its kinematics and charge, with no
// quality variables set.
func NewLepton(pt, eta, phi, mass float64, charge int) Lepton {
	return Lepton{P: fmom.NewPtEtaPhiM(pt, eta, phi, mass), Charge: charge}
}

// SIP3D returns the 3D impact parameter significance.
func (l *Lepton) SIP3D() float64 {
	err := math.Sqrt(l.DxyErr*l.DxyErr + l.DzErr*l.DzErr)
	if err == 0 {
		return 0
	}
	return math.Sqrt(l.Dxy*l.Dxy+l.Dz*l.Dz) / err
}

// PairMass returns the invariant mass of the leptons at indices i and j.
func PairMass(leptons []Lepton, i, j int) float64 {
	return fmom.InvMass(&leptons[i].P, &leptons[j].P)
}

// FourLeptonMass returns the invariant mass of the four leptons indexed
// by the candidate.
func FourLeptonMass(leptons []Lepton, cand Candidate) float64 {
	var px, py, pz, e float64
	for _, i := range cand {
		p := &leptons[i].P
		px += p.Px()
		py += p.Py()
		pz += p.Pz()
		e += p.E()
	}
	m2 := e*e - px*px - py*py - pz*pz
	if m2 < 0 {
		return 0
	}
	return math.Sqrt(m2)
}

// deltaR is the separation of two leptons in the eta-phi plane.
func deltaR(a, b *Lepton) float64 {
	dEta := a.P.Eta() - b.P.Eta()
	dPhi := math.Mod(a.P.Phi()-b.P.Phi(), 2*math.Pi)
	if dPhi > math.Pi {
		dPhi -= 2 * math.Pi
	} else if dPhi < -math.Pi {
		dPhi += 2 * math.Pi
	}
	return math.Sqrt(dEta*dEta + dPhi*dPhi)
}
