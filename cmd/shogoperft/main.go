// Command shogoperft runs the perft harness against a given SFEN
// position, printing the leaf-node count (or a per-move breakdown with
// -divide). No timing is measured or printed.
package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/shogo-dev/shogo"
	"github.com/shogo-dev/shogo/internal/perft"
)

const startSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

func main() {
	sfenFlag := flag.String("sfen", startSFEN, "SFEN position to run perft from")
	depth := flag.Int("depth", 2, "perft depth")
	divide := flag.Bool("divide", false, "print a per-root-move node count breakdown")
	verbose := flag.Bool("verbose", false, "enable structured logging during init")
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("building logger: %v", err)
		}
		shogo.SetLogger(logger)
	}

	shogo.InitAttackTables()
	shogo.InitZobristKeys()

	p := shogo.NewPosition()
	if err := p.SetSFEN(*sfenFlag); err != nil {
		log.Fatalf("parsing sfen: %v", err)
	}

	if *divide {
		for move, nodes := range perft.Divide(p, *depth) {
			log.Printf("%s: %d", move, nodes)
		}
		return
	}

	nodes := perft.Count(p, *depth)
	log.Printf("depth %d: %d nodes", *depth, nodes)
}
