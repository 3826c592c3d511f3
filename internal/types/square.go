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

// Square represents a square on the chess board numbered 0 (a1) to 63 (h8),
// file first: sq = rank*8 + file.
type Square uint8

// SqLength is the number of squares on the board.
const SqLength = 64

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// IsValid checks if sq represents a valid square on the board.
func (sq Square) IsValid() bool {
	return sq <= SqH8
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	if !sq.IsValid() {
		return FileNone
	}
	return File(sq % 8)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	if !sq.IsValid() {
		return RankNone
	}
	return Rank(sq / 8)
}

// Bb returns a Bitboard with only the bit of sq set.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// To returns the square reached by moving one step in the given direction.
// Returns SqNone if the resulting square would be off the board.
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	var df, dr int
	switch d {
	case North:
		df, dr = 0, 1
	case South:
		df, dr = 0, -1
	case East:
		df, dr = 1, 0
	case West:
		df, dr = -1, 0
	case Northeast:
		df, dr = 1, 1
	case Northwest:
		df, dr = -1, 1
	case Southeast:
		df, dr = 1, -1
	case Southwest:
		df, dr = -1, -1
	default:
		return SqNone
	}
	f := int(sq.FileOf()) + df
	r := int(sq.RankOf()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}

// SquareOf returns the square for the given file and rank.
// Returns SqNone if file or rank are invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(uint8(r)*8 + uint8(f))
}

const squareLabels string = "a1b1c1d1e1f1g1h1a2b2c2d2e2f2g2h2a3b3c3d3e3f3g3h3a4b4c4d4e4f4g4h4" +
	"a5b5c5d5e5f5g5h5a6b6c6d6e6f6g6h6a7b7c7d7e7f7g7h7a8b8c8d8e8f8g8h8"

// String returns the algebraic name of the square (e.g. "a1", "h8") or
// "-" if sq is not a valid square.
func (sq Square) String() string {
	if sq > SqH8 {
		return "-"
	}
	i := int(sq) * 2
	return squareLabels[i : i+2]
}

// MakeSquare parses an algebraic square name (e.g. "a1") and returns the
// corresponding Square, or SqNone if s is not a valid square name.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone
	}
	return SquareOf(File(f-'a'), Rank(r-'1'))
}
