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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkopp-labs/corvus/internal/position"
	. "github.com/fkopp-labs/corvus/internal/types"
)

func TestEvaluate_StartPositionIsBalanced(t *testing.T) {
	e := NewEvaluator()
	p := position.NewPosition()
	assert.EqualValues(t, 0, e.Evaluate(p))
}

func TestEvaluate_MirroredPositionIsNegated(t *testing.T) {
	e := NewEvaluator()
	original, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	// mirror(P): colors swapped and ranks flipped (rank r <-> rank 9-r),
	// which also flips the side to move.
	mirrored, err := position.NewPositionFen("r3k2r/pppbbppp/2n2q1P/1P2p3/3pn3/BN2PNP1/P1PPQPB1/R3K2R b KQkq - 0 1")
	assert.NoError(t, err)

	assert.Equal(t, e.Evaluate(original), -e.Evaluate(mirrored))
}

func TestEvaluate_RemovingAPieceNeverHelpsThatSide(t *testing.T) {
	e := NewEvaluator()
	full, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	withoutQueen, err := position.NewPositionFen("r3k2r/p1pp1pb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	// Removing Black's queen can only help White's (absolute) score.
	assert.LessOrEqual(t, int(e.Evaluate(full)), int(e.Evaluate(withoutQueen)))
}

func TestEvaluate_InsufficientMaterialIsDraw(t *testing.T) {
	e := NewEvaluator()
	p, err := position.NewPositionFen("8/8/8/4k3/8/8/4K3/8 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, ValueDraw, e.Evaluate(p))
}
