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

package search

import (
	"time"

	. "github.com/fkopp-labs/corvus/internal/types"
)

// Statistics holds counters and diagnostic data about a single search,
// collected for reporting and not used by the search itself.
type Statistics struct {
	NodesVisited    uint64
	Leafs           uint64
	Checkmates      uint64
	Stalemates      uint64
	BetaCuts        uint64
	BestMove        Move
	BestValue       Value // from the root side-to-move's perspective
	Depth           int
	Duration        time.Duration
}

func (s *Statistics) String() string {
	return out.Sprintf(
		"nodes:%d leafs:%d checkmates:%d stalemates:%d betaCuts:%d depth:%d bestMove:%s bestValue:%d time:%s",
		s.NodesVisited, s.Leafs, s.Checkmates, s.Stalemates, s.BetaCuts,
		s.Depth, s.BestMove.StringUci(), s.BestValue, s.Duration)
}
