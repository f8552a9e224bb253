package evio

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibelcooper/higgsplot/fourlep"
)

type sliceScanner struct {
	events []Event
	i      int
	err    error
}

func (s *sliceScanner) Next() bool {
	if s.i >= len(s.events) {
		return false
	}
	s.i++
	return true
}

func (s *sliceScanner) Event() Event { return s.events[s.i-1] }
func (s *sliceScanner) Err() error   { return s.err }
func (s *sliceScanner) Close() error { return nil }

func fourMuonEvent(pt float64) Event {
	return Event{Leptons: []fourlep.Lepton{
		fourlep.NewLepton(pt, 0, 0, 0, +1),
		fourlep.NewLepton(pt, 0, math.Pi, 0, -1),
		fourlep.NewLepton(15, 0, math.Pi/2, 0, +1),
		fourlep.NewLepton(15, 0, -math.Pi/2, 0, -1),
	}}
}

func TestProcess(t *testing.T) {
	sc := &sliceScanner{}
	var want []float64
	for i := 0; i < 50; i++ {
		pt := 40 + float64(i)/10
		sc.events = append(sc.events, fourMuonEvent(pt))
		want = append(want, 2*pt)
		// events without enough muons produce no result
		sc.events = append(sc.events, Event{Leptons: sc.events[0].Leptons[:2]})
	}

	sel := fourlep.DefaultSelection()
	results, err := Process(sc, 4, func(evt Event) (fourlep.Result, bool) {
		return fourlep.Reconstruct(sel, evt.Leptons)
	})
	require.NoError(t, err)
	require.Len(t, results, 50)

	var got []float64
	for _, res := range results {
		got = append(got, res.MZ1)
	}
	sort.Float64s(got)
	sort.Float64s(want)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestProcessDefaultWorkers(t *testing.T) {
	sc := &sliceScanner{events: []Event{fourMuonEvent(45.5)}}
	results, err := Process(sc, 0, func(evt Event) (fourlep.Result, bool) {
		return fourlep.Result{M4L: float64(len(evt.Leptons))}, true
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 4.0, results[0].M4L)
}

func TestProcessScannerError(t *testing.T) {
	scanErr := errors.New("truncated input")
	sc := &sliceScanner{events: []Event{fourMuonEvent(45.5)}, err: scanErr}
	_, err := Process(sc, 2, func(Event) (fourlep.Result, bool) {
		return fourlep.Result{}, false
	})
	assert.Equal(t, scanErr, err)
}
