// uci.go implements the minimal UCI surface the core needs to be driven
// interactively: position setup, move application, and perft.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fissionchess/fission"
	"github.com/fissionchess/fission/internal/perft"
)

func uciLoop() {
	var pos fission.Position
	fission.SetFromFEN(&pos, fission.InitialPos)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "uci":
			fmt.Println("id name fission")
			fmt.Println("uciok")

		case "isready":
			fmt.Println("readyok")

		case "ucinewgame":
			fission.SetFromFEN(&pos, fission.InitialPos)

		case "position":
			handlePosition(&pos, fields[1:])

		case "go":
			if len(fields) >= 3 && fields[1] == "perft" {
				depth, err := strconv.Atoi(fields[2])
				if err != nil || depth < 1 {
					break
				}
				nodes := perft.Divide(&pos, depth, os.Stdout)
				fmt.Printf("\nNodes searched: %d\n", nodes)
			}

		case "d":
			fmt.Print(pos.String())

		case "quit":
			return
		}
	}
}

// handlePosition applies "position [startpos | fen <fen>] [moves <m>...]".
func handlePosition(pos *fission.Position, args []string) {
	i := 0
	switch {
	case len(args) == 0:
		return

	case args[0] == "startpos":
		fission.SetFromFEN(pos, fission.InitialPos)
		i = 1

	case args[0] == "fen":
		i = 1
		for i < len(args) && args[i] != "moves" {
			i++
		}
		fission.SetFromFEN(pos, strings.Join(args[1:i], " "))
	}

	if i < len(args) && args[i] == "moves" {
		for _, str := range args[i+1:] {
			m := fission.ParseMove(pos, str)
			if m.From == fission.NoSquare {
				fmt.Fprintf(os.Stderr, "info string illegal move %s\n", str)
				return
			}
			pos.MakeMove(m)
		}
	}
}
