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

package types

// GamePhaseMax is the game phase value of a full board (2 knights + 2
// bishops + 2 rooks*2 + 1 queen*4, doubled for both sides' worth of minor
// and major pieces: 2*(2*1+2*1+2*2+1*4) = 24). It is used both to scale the
// incremental game phase counter kept on Position and, via PosValue, for
// move-ordering interpolation between the mid game and end game tables.
const GamePhaseMax = 24

var initialized = false

// Init pre computes all lookup tables the types package relies on: square
// bitboards, sliding attack rays, magic bitboards and piece-square tables.
// It must be called once before any board, move generation or evaluation
// code in this module is used.
func Init() {
	if initialized {
		return
	}
	initBb()
	initPosValues()
	initialized = true
}
