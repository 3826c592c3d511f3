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

// Value is a centipawn score or search value.
type Value int

// Sentinel and bound values used by search and evaluation.
//noinspection GoUnusedConst
const (
	ValueZero         Value = 0
	ValueDraw         Value = 0
	ValueInfinite     Value = 200_000
	ValueNone         Value = 201_000
	ValueNA           Value = -ValueInfinite - 1
	ValueCheckMate    Value = 100_000
	ValueCheckMateMin       = ValueCheckMate - 1000
)

// IsValid checks if v lies within the representable search value range.
func (v Value) IsValid() bool {
	return v >= -ValueInfinite && v <= ValueInfinite
}

// PieceType identifies a kind of chess piece independent of color.
type PieceType uint8

//noinspection GoUnusedConst
const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength
)

// pieceTypeValue holds the static material value of each piece type.
var pieceTypeValue = [PtLength]Value{0, 40_000, 100, 320, 330, 500, 900}

// ValueOf returns the static material value of the piece type.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// gamePhaseValue holds the contribution of one piece of this type towards
// the running game phase counter (Stockfish-style: minor=1, rook=2, queen=4).
var gamePhaseValue = [PtLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue returns how much one piece of this type contributes to the
// game phase counter used for positional-value interpolation and move ordering.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

var pieceTypeLabels = [PtLength]string{"-", "K", "P", "N", "B", "R", "Q"}

// String returns the upper case letter for the piece type ("-" if none).
func (pt PieceType) String() string {
	if pt >= PtLength {
		return "-"
	}
	return pieceTypeLabels[pt]
}

// IsValid checks if pt is a real piece type (not PtNone).
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

var pieceTypeCharLabels = [PtLength]string{"", "k", "p", "n", "b", "r", "q"}

// Char returns the lower case letter for the piece type, used in promotion
// notation (e.g. the "q" in "a7a8q"). Returns "" for PtNone.
func (pt PieceType) Char() string {
	if pt >= PtLength {
		return ""
	}
	return pieceTypeCharLabels[pt]
}

// Piece represents a concrete chess piece: a Color packed into bit 3 and a
// PieceType packed into bits 0-2 (color<<3 + pieceType).
type Piece uint8

//noinspection GoUnusedConst
const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength Piece = 16
)

// MakePiece combines a color and a piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if !c.IsValid() || !pt.IsValid() {
		return PieceNone
	}
	return Piece(int(c)<<3 + int(pt))
}

// TypeOf returns the PieceType of the piece.
func (p Piece) TypeOf() PieceType {
	pt := PieceType(p & 7)
	if !pt.IsValid() {
		return PtNone
	}
	return pt
}

// ColorOf returns the Color of the piece.
func (p Piece) ColorOf() Color {
	if !p.IsValid() {
		return ColorNone
	}
	return Color(p >> 3)
}

// IsValid checks if p is a real piece (not PieceNone).
func (p Piece) IsValid() bool {
	return p.TypeOf() != PtNone
}

// ValueOf returns the static material value of the piece.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

// String returns the FEN letter for the piece, upper case for White, lower
// case for Black, "-" for PieceNone.
func (p Piece) String() string {
	switch p.ColorOf() {
	case White:
		return p.TypeOf().String()
	case Black:
		s := p.TypeOf().String()
		if s == "-" {
			return s
		}
		return string(s[0] + 'a' - 'A')
	default:
		return "-"
	}
}

var pieceFromCharMap = map[string]Piece{
	"K": WhiteKing, "P": WhitePawn, "N": WhiteKnight, "B": WhiteBishop, "R": WhiteRook, "Q": WhiteQueen,
	"k": BlackKing, "p": BlackPawn, "n": BlackKnight, "b": BlackBishop, "r": BlackRook, "q": BlackQueen,
}

// PieceFromChar parses a single FEN piece letter into a Piece, returning
// PieceNone if s is not exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	if p, ok := pieceFromCharMap[s]; ok {
		return p
	}
	return PieceNone
}
