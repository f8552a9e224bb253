package evio

import (
	"math"

	"github.com/proio-org/go-proio"
	"github.com/proio-org/go-proio-pb/model/eic"

	"github.com/decibelcooper/higgsplot/fourlep"
)

const muonMass = 0.1056583745 // GeV

// ProioScanner reads muon candidates from the reconstructed tracks of a
// proio stream. Tracks carry momentum over charge and a charge sign;
// the muon rest mass is assumed.
type ProioScanner struct {
	reader *proio.Reader
	events <-chan *proio.Event
	evt    Event
}

// OpenProio opens a proio input file.
func OpenProio(name string) (*ProioScanner, error) {
	reader, err := proio.Open(name)
	if err != nil {
		return nil, err
	}
	return &ProioScanner{reader: reader, events: reader.ScanEvents()}, nil
}

func (s *ProioScanner) Next() bool {
	event, ok := <-s.events
	if !ok {
		return false
	}

	var leptons []fourlep.Lepton
	for _, id := range event.TaggedEntries("Reconstructed") {
		track, ok := event.GetEntry(id).(*eic.Track)
		if !ok || len(track.Segment) == 0 {
			continue
		}
		seg := track.Segment[0]

		px, py, pz := *seg.Poq.X, *seg.Poq.Y, *seg.Poq.Z
		pMag := math.Sqrt(px*px + py*py + pz*pz)
		if pMag == 0 {
			continue
		}
		charge := +1
		if *seg.Chargesign < 0 {
			charge = -1
		}
		leptons = append(leptons, fourlep.NewLepton(
			math.Hypot(px, py),
			math.Atanh(pz/pMag),
			math.Atan2(py, px),
			muonMass,
			charge,
		))
	}
	s.evt = Event{Leptons: leptons}
	return true
}

func (s *ProioScanner) Event() Event { return s.evt }

func (s *ProioScanner) Err() error { return nil }

func (s *ProioScanner) Close() error {
	s.reader.Close()
	return nil
}
