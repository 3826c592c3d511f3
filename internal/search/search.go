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

// Package search implements a fixed-depth alpha-beta minimax search over
// the move generator and static evaluator.
package search

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp-labs/corvus/internal/config"
	"github.com/fkopp-labs/corvus/internal/evaluator"
	myLogging "github.com/fkopp-labs/corvus/internal/logging"
	"github.com/fkopp-labs/corvus/internal/movegen"
	"github.com/fkopp-labs/corvus/internal/position"
	. "github.com/fkopp-labs/corvus/internal/types"
)

var out = message.NewPrinter(language.German)

// Search holds the state of a single depth-limited alpha-beta search.
// Create a new instance with NewSearch() and reuse it across moves -
// it carries no state that needs to be reset between searches beyond
// what StartSearch() resets itself.
type Search struct {
	log *logging.Logger
	eval *evaluator.Evaluator
	mg   *movegen.Movegen

	statistics Statistics
}

// NewSearch creates a new Search instance.
func NewSearch() *Search {
	return &Search{
		log:  myLogging.GetLog(),
		eval: evaluator.NewEvaluator(),
		mg:   movegen.NewMoveGen(),
	}
}

// LastStatistics returns the statistics gathered during the most recent
// call to StartSearch.
func (s *Search) LastStatistics() Statistics {
	return s.statistics
}

// StartSearch runs a fixed-depth alpha-beta search on p and returns the
// best move found, or MoveNone if the position has no legal moves.
func (s *Search) StartSearch(p *position.Position) Move {
	depth := config.Settings.Search.SearchDepth
	if depth <= 0 {
		depth = 4
	}

	s.statistics = Statistics{Depth: depth}
	start := time.Now()

	value, best := s.search(p, depth, -ValueInfinite, ValueInfinite)

	s.statistics.Duration = time.Since(start)
	s.statistics.BestMove = best
	s.statistics.BestValue = value
	s.log.Debugf("search finished: %s", s.statistics.String())
	return best
}

// search is the recursive negamax alpha-beta core. It returns the value of
// p from the perspective of the side to move, and the best move found at
// this node (MoveNone at leaf nodes or terminal nodes).
func (s *Search) search(p *position.Position, depth int, alpha Value, beta Value) (Value, Move) {
	s.statistics.NodesVisited++

	moves := s.mg.GenerateLegalMoves(p, movegen.GenAll)
	if moves.Len() == 0 {
		if p.HasCheck() {
			s.statistics.Checkmates++
			return -ValueCheckMate, MoveNone
		}
		s.statistics.Stalemates++
		return ValueDraw, MoveNone
	}

	if depth == 0 {
		s.statistics.Leafs++
		// Evaluate is always from White's perspective; negamax needs the
		// value from the perspective of the side to move.
		return Value(p.NextPlayer().Direction()) * s.eval.Evaluate(p), MoveNone
	}

	moves.Sort()

	bestValue := -ValueInfinite
	bestMove := MoveNone

	for _, m := range *moves {
		p.DoMove(m)
		value, _ := s.search(p, depth-1, -beta, -alpha)
		value = -value
		p.UndoMove()

		if value > bestValue {
			bestValue = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			break
		}
	}

	return bestValue, bestMove
}
