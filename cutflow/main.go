package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/decibelcooper/higgsplot/evio"
	"github.com/decibelcooper/higgsplot/fourlep"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <input-files>...

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	var (
		nEvents    int
		nFourMuons int
		nCandidate int
		nSelected  int
	)

	sel := fourlep.DefaultSelection()
	for _, filename := range flag.Args() {
		sc, err := evio.Open(filename)
		if err != nil {
			log.Fatal(err)
		}

		for sc.Next() {
			nEvents++

			good := sel.GoodLeptons(sc.Event().Leptons)
			if len(good) < 4 {
				continue
			}
			nFourMuons++

			best, ok := fourlep.SelectBestAssignment(good, fourlep.FindCandidates(good))
			if !ok {
				continue
			}
			nCandidate++

			if sel.GoodAssignment(good, best) {
				nSelected++
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
		sc.Close()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	printStage(w, "events read", nEvents, nEvents)
	printStage(w, ">= 4 good muons", nFourMuons, nEvents)
	printStage(w, "charge-balanced candidate", nCandidate, nEvents)
	printStage(w, "Z windows and separation", nSelected, nEvents)
	w.Flush()
}

func printStage(w *tabwriter.Writer, stage string, n, total int) {
	frac := 0.0
	if total > 0 {
		frac = float64(n) / float64(total)
	}
	fmt.Fprintf(w, "%s\t%d\t%.4f\n", stage, n, frac)
}
