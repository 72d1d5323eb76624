/*
Package perft implements the performance test driver used to validate the
move generator: an exhaustive leaf node count at a fixed depth, compared
against known-good values.

See https://www.chessprogramming.org/Perft
*/
package perft

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/schollz/progressbar/v3"

	"github.com/fissionchess/fission"
)

// Count walks the legal move tree to the given depth and returns the
// number of visited leaf nodes.
func Count(p *fission.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var l fission.MoveList
	fission.GenLegalMoves(p, &l)

	if depth == 1 {
		return uint64(l.Count)
	}

	var nodes uint64
	for i := range l.Count {
		p.MakeMove(l.Moves[i])
		nodes += Count(p, depth-1)
		p.UndoMove(l.Moves[i])
	}
	return nodes
}

// Divide writes the subtree count of every root move to w and returns the
// total.  The per move split is what makes diverging branches findable.
func Divide(p *fission.Position, depth int, w io.Writer) uint64 {
	var l fission.MoveList
	fission.GenLegalMoves(p, &l)

	var nodes uint64
	for i := range l.Count {
		m := l.Moves[i]
		p.MakeMove(m)
		cnt := Count(p, depth-1)
		p.UndoMove(m)

		fmt.Fprintf(w, "%s: %d\n", m, cnt)
		nodes += cnt
	}
	return nodes
}

// Test is one expected node count for one position.
type Test struct {
	FEN   string
	Depth int
	Nodes uint64
}

// Run executes a single test and prints a coloured PASS/FAIL line.
func Run(t Test) bool {
	var p fission.Position
	fission.SetFromFEN(&p, t.FEN)

	nodes := Count(&p, t.Depth)
	if nodes == t.Nodes {
		colorstring.Printf("[green][PASS][reset] %s || Depth: %d\n", t.FEN, t.Depth)
		return true
	}

	colorstring.Printf("[red][FAIL][reset] %s || Depth: %d || EXPECTED: %d -- RETURNED: %d\n",
		t.FEN, t.Depth, t.Nodes, nodes)
	return false
}

/*
ParseSuite reads a perft suite: one position per line, the FEN followed by
";D<depth> <nodes>" entries.

	rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ;D1 20 ;D2 400

Empty lines and lines starting with '#' are skipped.
*/
func ParseSuite(r io.Reader) ([]Test, error) {
	var tests []Test

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ";")
		fen := strings.TrimSpace(parts[0])
		if fen == "" {
			continue
		}

		for _, token := range parts[1:] {
			token = strings.TrimSpace(token)
			if len(token) < 2 || token[0] != 'D' {
				continue
			}

			fields := strings.SplitN(token[1:], " ", 2)
			if len(fields) != 2 {
				continue
			}

			depth, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("perft: bad depth in %q: %w", token, err)
			}
			nodes, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("perft: bad node count in %q: %w", token, err)
			}

			tests = append(tests, Test{FEN: fen, Depth: depth, Nodes: nodes})
		}
	}

	return tests, scanner.Err()
}

// RunFile runs every test of a suite file and reports the summary.
// The returned error is non-nil when any test fails.
func RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tests, err := ParseSuite(f)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(tests),
		progressbar.OptionSetDescription("perft"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowCount(),
	)

	passed := 0
	for _, t := range tests {
		if Run(t) {
			passed++
		}
		bar.Add(1)
	}
	fmt.Printf("\nTotal tests:  %d\nTests passed: %d\n", len(tests), passed)

	if passed != len(tests) {
		return fmt.Errorf("perft: %d of %d tests failed", len(tests)-passed, len(tests))
	}
	return nil
}
