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

// Package evaluator contains structures and functions to calculate
// the value of a chess position to be used in a chess engine search.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp-labs/corvus/internal/config"
	myLogging "github.com/fkopp-labs/corvus/internal/logging"
	"github.com/fkopp-labs/corvus/internal/position"
	. "github.com/fkopp-labs/corvus/internal/types"
)

var out = message.NewPrinter(language.German)

// Evaluator evaluates chess positions by material plus piece-square tables.
// Create a new instance with NewEvaluator().
type Evaluator struct {
	log      *logging.Logger
	position *position.Position
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// Evaluate calculates a value for a chess position from material and
// piece-square tables, always returned from White's perspective: positive
// favors White regardless of whose move it is.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	e.position = p

	if p.HasInsufficientMaterial() {
		return ValueDraw
	}

	// Material, summed from each side's six piece bitboards.
	material := p.Material(White) - p.Material(Black)

	// The king table used is chosen by a single global switch: once queens
	// and rooks together drop below the threshold the endgame table takes
	// over for both sides at once, with no blending by game phase. The other
	// piece tables are the same in both phases, so the switch only changes
	// the kings' contribution.
	rookQueenMaterial := p.PiecesBb(White, Rook).PopCount()*int(Rook.ValueOf()) +
		p.PiecesBb(Black, Rook).PopCount()*int(Rook.ValueOf()) +
		p.PiecesBb(White, Queen).PopCount()*int(Queen.ValueOf()) +
		p.PiecesBb(Black, Queen).PopCount()*int(Queen.ValueOf())
	endgame := rookQueenMaterial < config.Settings.Eval.EndgameMaterialThreshold

	var psq Value
	if endgame {
		psq = p.PsqEndValue(White) - p.PsqEndValue(Black)
	} else {
		psq = p.PsqMidValue(White) - p.PsqMidValue(Black)
	}

	return material + psq
}

// Report prints a report about the evaluation of the given position. Used
// in debugging and logging.
func (e *Evaluator) Report(p *position.Position) string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", p.StringFen()))
	report.WriteString(out.Sprintf("%s\n", p.StringBoard()))
	report.WriteString(out.Sprintf("Material White/Black : %d/%d\n", p.Material(White), p.Material(Black)))
	report.WriteString(out.Sprintf("Psq mid White/Black  : %d/%d\n", p.PsqMidValue(White), p.PsqMidValue(Black)))
	report.WriteString(out.Sprintf("Psq end White/Black  : %d/%d\n", p.PsqEndValue(White), p.PsqEndValue(Black)))
	report.WriteString(out.Sprintf("Eval value  : %d \n(from White's perspective, next player = %s)\n", e.Evaluate(p), p.NextPlayer().String()))
	return report.String()
}
