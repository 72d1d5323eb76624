// Command fission runs perft validation for the move generation core, or a
// minimal UCI loop when started without arguments.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fissionchess/fission"
	"github.com/fissionchess/fission/internal/perft"
)

func main() {
	fission.InitBetweenTable()
	fission.InitZobristTable()

	perftFEN := flag.String("perft", "", "FEN of the position to run a perft on")
	depth := flag.Int("depth", 6, "perft depth")
	verbose := flag.Bool("v", false, "print per move node counts")
	testFile := flag.String("test", "", "perft suite file to run")
	flag.Parse()

	switch {
	case *testFile != "":
		if err := perft.RunFile(*testFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

	case *perftFEN != "":
		var p fission.Position
		fission.SetFromFEN(&p, *perftFEN)
		fmt.Print(p.String())

		start := time.Now()
		var nodes uint64
		if *verbose {
			nodes = perft.Divide(&p, *depth, os.Stdout)
		} else {
			nodes = perft.Count(&p, *depth)
		}
		elapsed := time.Since(start)

		fmt.Printf("TOTAL NODES: %d\n", nodes)
		fmt.Printf("TIME:        %s\n", elapsed)
		fmt.Printf("NPS:         %.0f\n", float64(nodes)/elapsed.Seconds())

	default:
		uciLoop()
	}
}
