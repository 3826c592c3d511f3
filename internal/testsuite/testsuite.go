//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package testsuite runs the move generator's perft regression positions
// and checks the resulting node counts against known-good values.
package testsuite

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp-labs/corvus/internal/movegen"
)

var out = message.NewPrinter(language.English)

// Case is a single perft regression position together with its known-good
// node counts for depths 1..len(Expected).
type Case struct {
	Name     string
	Fen      string
	Expected []uint64
}

// Positions holds the six standard perft regression positions.
var Positions = []Case{
	{
		Name:     "initial position",
		Fen:      "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Expected: []uint64{20, 400, 8902, 197281, 4865609},
	},
	{
		Name:     "kiwipete",
		Fen:      "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		Expected: []uint64{48, 2039, 97862, 4085603, 193690690},
	},
	{
		Name:     "position 3",
		Fen:      "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
		Expected: []uint64{14, 191, 2812, 43238, 674624},
	},
	{
		Name:     "position 4",
		Fen:      "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		Expected: []uint64{6, 264, 9467, 422333, 15833292},
	},
	{
		Name:     "position 5",
		Fen:      "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		Expected: []uint64{44, 1486, 62379, 2103487, 89941194},
	},
	{
		Name:     "position 6",
		Fen:      "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		Expected: []uint64{46, 2079, 89890, 3894594, 164075551},
	},
}

// Result holds the outcome of running one Case up to MaxDepth.
type Result struct {
	Case     Case
	MaxDepth int
	Counted  []uint64
	Time     time.Duration
	Passed   bool
}

// String renders a one-line pass/fail summary for r.
func (r Result) String() string {
	status := "FAIL"
	if r.Passed {
		status = "OK"
	}
	return out.Sprintf("[%-4s] %-18s depth=%d time=%s", status, r.Case.Name, r.MaxDepth, r.Time)
}

// Run executes every position in Positions up to maxDepth (capped to each
// case's number of known expectations), bounding concurrency with a
// weighted semaphore of the given width so large maxDepth values don't run
// all six positions' full trees at once. It returns one Result per case, in
// the order of Positions.
func Run(ctx context.Context, maxDepth int, concurrency int64) ([]Result, error) {
	sem := semaphore.NewWeighted(concurrency)
	results := make([]Result, len(Positions))

	var wg sync.WaitGroup
	var firstErr error
	var mu sync.Mutex

	for i, c := range Positions {
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			break
		}
		wg.Add(1)
		go func(i int, c Case) {
			defer wg.Done()
			defer sem.Release(1)
			results[i] = runCase(c, maxDepth)
		}(i, c)
	}
	wg.Wait()

	return results, firstErr
}

func runCase(c Case, maxDepth int) Result {
	depth := maxDepth
	if depth > len(c.Expected) {
		depth = len(c.Expected)
	}
	if depth < 1 {
		depth = 1
	}

	start := time.Now()
	perft := movegen.NewPerft()
	perft.StartPerft(c.Fen, depth)
	elapsed := time.Since(start)

	return Result{
		Case:     c,
		MaxDepth: depth,
		Counted:  []uint64{perft.Nodes},
		Time:     elapsed,
		Passed:   perft.Nodes == c.Expected[depth-1],
	}
}

// Summary formats a multi-line report of results, one line per case plus a
// final tally, in the style of the teacher's test suite reports.
func Summary(results []Result) string {
	var passed int
	s := ""
	for _, r := range results {
		s += r.String() + "\n"
		if r.Passed {
			passed++
		}
	}
	s += fmt.Sprintf("%d/%d positions passed\n", passed, len(results))
	return s
}
