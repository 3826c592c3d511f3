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

// Package notation parses and formats moves in coordinate notation
// (e.g. "e2e4", "a7a8q"), the form used on the wire by the XBoard/CECP
// protocol.
package notation

import (
	"regexp"
	"strings"

	"github.com/fkopp-labs/corvus/internal/movegen"
	"github.com/fkopp-labs/corvus/internal/position"
	. "github.com/fkopp-labs/corvus/internal/types"
)

var regexCoordMove = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])([nbrqNBRQ])?$`)

// Parse matches moveStr against the legal moves of p and returns the
// matching Move. Returns a *position.ParseError if moveStr is not
// well-formed coordinate notation or does not name a legal move on p.
func Parse(mg *movegen.Movegen, p *position.Position, moveStr string) (Move, error) {
	moveStr = strings.TrimSpace(moveStr)

	matches := regexCoordMove.FindStringSubmatch(moveStr)
	if matches == nil {
		return MoveNone, &position.ParseError{Input: moveStr, Reason: "not coordinate move notation"}
	}

	m := mg.GetMoveFromUci(p, moveStr)
	if m == MoveNone {
		return MoveNone, &position.ParseError{Input: moveStr, Reason: "not a legal move in the current position"}
	}
	return m, nil
}

// Format returns the coordinate notation for m (e.g. "e2e4", "a7a8q"),
// the inverse of Parse.
func Format(m Move) string {
	return m.StringUci()
}
