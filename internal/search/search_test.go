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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkopp-labs/corvus/internal/config"
	"github.com/fkopp-labs/corvus/internal/position"
	. "github.com/fkopp-labs/corvus/internal/types"
)

func TestStartSearch_FindsMove(t *testing.T) {
	config.Settings.Search.SearchDepth = 3
	s := NewSearch()
	p := position.NewPosition()
	best := s.StartSearch(p)
	assert.NotEqual(t, MoveNone, best)
	assert.True(t, best.IsValid())
}

func TestStartSearch_FindsMateInOne(t *testing.T) {
	config.Settings.Search.SearchDepth = 2
	s := NewSearch()
	// Back rank mate: white to move, Ra8 is mate.
	p, err := position.NewPositionFen("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	best := s.StartSearch(p)
	assert.Equal(t, "a1a8", best.StringUci())
}

func TestStartSearch_NoLegalMoves(t *testing.T) {
	config.Settings.Search.SearchDepth = 2
	s := NewSearch()
	// Stalemate position: black to move has no legal moves and is not in check.
	p, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	best := s.StartSearch(p)
	assert.Equal(t, MoveNone, best)
}
