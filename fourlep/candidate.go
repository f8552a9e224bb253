package fourlep

// A Candidate is one way of grouping four distinct leptons of an event
// into two opposite-charge pairs. The indices refer to positions in the
// event's lepton list: the first pair is (c[0],c[1]) and the second pair
// is (c[2],c[3]), with c[0] < c[1] and c[2] < c[3]. Two groupings that
// differ only by swapping the pairs are the same splitting; the finder
// emits each splitting once, with the lowest of the four indices in the
// first pair.
type Candidate [4]int

// FindCandidates enumerates every splitting of the event's leptons into
// two charge-balanced pairs of four distinct leptons. The output order
// is lexicographic in the candidate indices and stable across calls.
//
// FindCandidates is total: fewer than four leptons, or charges that
// admit no opposite-charge pairing, yield an empty result rather than
// an error.
func FindCandidates(leptons []Lepton) []Candidate {
	var cands []Candidate
	n := len(leptons)
	for i0 := 0; i0 < n; i0++ {
		for i1 := i0 + 1; i1 < n; i1++ {
			if leptons[i0].Charge+leptons[i1].Charge != 0 {
				continue
			}
			for i2 := i0 + 1; i2 < n; i2++ {
				if i2 == i1 {
					continue
				}
				for i3 := i2 + 1; i3 < n; i3++ {
					if i3 == i1 {
						continue
					}
					if leptons[i2].Charge+leptons[i3].Charge != 0 {
						continue
					}
					cands = append(cands, Candidate{i0, i1, i2, i3})
				}
			}
		}
	}
	return cands
}
