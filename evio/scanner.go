// Package evio reads per-event muon records from ROOT and proio input
// files and fans independent events out to analysis workers.
package evio

import (
	"strings"

	"github.com/decibelcooper/higgsplot/fourlep"
)

// Event is one collision event's worth of reconstructed muons.
type Event struct {
	Leptons []fourlep.Lepton
}

// Scanner iterates over the events of one input file. Each call to
// Next advances to the next event; Event returns a value that does not
// alias the scanner's internal state, so events may be handed to other
// goroutines.
type Scanner interface {
	Next() bool
	Event() Event
	Err() error
	Close() error
}

// Open opens an event input file, dispatching on its extension: .proio
// and .proio.gz files are read with go-proio, anything else as a ROOT
// file holding an Events tree.
func Open(name string) (Scanner, error) {
	if strings.HasSuffix(name, ".proio") || strings.HasSuffix(name, ".proio.gz") {
		return OpenProio(name)
	}
	return OpenROOT(name, "Events")
}
