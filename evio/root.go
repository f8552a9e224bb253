package evio

import (
	"fmt"

	"go-hep.org/x/hep/rootio"

	"github.com/decibelcooper/higgsplot/fourlep"
)

// nanoEvent maps the muon branches of a NanoAOD-style tree.
type nanoEvent struct {
	Pt     []float32 `rootio:"Muon_pt"`
	Eta    []float32 `rootio:"Muon_eta"`
	Phi    []float32 `rootio:"Muon_phi"`
	Mass   []float32 `rootio:"Muon_mass"`
	Charge []int32   `rootio:"Muon_charge"`
	Iso    []float32 `rootio:"Muon_pfRelIso04_all"`
	Dxy    []float32 `rootio:"Muon_dxy"`
	DxyErr []float32 `rootio:"Muon_dxyErr"`
	Dz     []float32 `rootio:"Muon_dz"`
	DzErr  []float32 `rootio:"Muon_dzErr"`
}

// ROOTScanner reads muons from a ROOT tree of per-event muon branches.
type ROOTScanner struct {
	f   *rootio.File
	sc  *rootio.TreeScanner
	evt Event
	err error
}

// OpenROOT opens the named tree of a ROOT file.
func OpenROOT(name, tree string) (*ROOTScanner, error) {
	f, err := rootio.Open(name)
	if err != nil {
		return nil, err
	}
	obj, err := f.Get(tree)
	if err != nil {
		f.Close()
		return nil, err
	}
	t, ok := obj.(rootio.Tree)
	if !ok {
		f.Close()
		return nil, fmt.Errorf("evio: %q in %s is not a tree", tree, name)
	}
	sc, err := rootio.NewTreeScanner(t, &nanoEvent{})
	if err != nil {
		f.Close()
		return nil, err
	}
	return &ROOTScanner{f: f, sc: sc}, nil
}

func (s *ROOTScanner) Next() bool {
	if s.err != nil || !s.sc.Next() {
		return false
	}
	var data nanoEvent
	if err := s.sc.Scan(&data); err != nil {
		s.err = err
		return false
	}

	leptons := make([]fourlep.Lepton, len(data.Pt))
	for i := range leptons {
		l := fourlep.NewLepton(
			float64(data.Pt[i]),
			float64(data.Eta[i]),
			float64(data.Phi[i]),
			float64(data.Mass[i]),
			int(data.Charge[i]),
		)
		l.Iso = float64(data.Iso[i])
		l.Dxy = float64(data.Dxy[i])
		l.DxyErr = float64(data.DxyErr[i])
		l.Dz = float64(data.Dz[i])
		l.DzErr = float64(data.DzErr[i])
		leptons[i] = l
	}
	s.evt = Event{Leptons: leptons}
	return true
}

func (s *ROOTScanner) Event() Event { return s.evt }

func (s *ROOTScanner) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.sc.Err()
}

func (s *ROOTScanner) Close() error {
	s.sc.Close()
	return s.f.Close()
}
