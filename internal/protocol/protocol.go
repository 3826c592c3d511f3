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

// Package protocol implements the Handler data structure and functionality to
// handle the XBoard/CECP protocol communication between the chess user
// interface and the engine.
package protocol

import (
	"bufio"
	"bytes"
	"os"
	"regexp"
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/fkopp-labs/corvus/internal/logging"
	"github.com/fkopp-labs/corvus/internal/movegen"
	"github.com/fkopp-labs/corvus/internal/notation"
	"github.com/fkopp-labs/corvus/internal/position"
	"github.com/fkopp-labs/corvus/internal/search"
	. "github.com/fkopp-labs/corvus/internal/types"
)

// Handler handles all communication with the chess ui via the XBoard/CECP
// protocol and drives the search for the engine's own moves.
// Create an instance with NewHandler().
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	myMoveGen  *movegen.Movegen
	mySearch   *search.Search
	myPosition *position.Position

	// xboard is true once the "xboard" command switched the session into
	// protocol mode.
	xboard bool
	// forced is true while the engine must not move on its own, e.g. right
	// after startup, after "force", or once it has no legal move left
	// (checkmate or stalemate).
	forced bool
	// computerColorWhite / computerColorBlack mark the side the engine is
	// currently playing; they are set by "new", "go" and "force".
	computerColorWhite bool
	computerColorBlack bool

	log *logging.Logger
}

// NewHandler creates a new Handler instance. Input/output io can be replaced
// by changing the instance's InIo and OutIo members.
//  Example:
// 		h.InIo = bufio.NewScanner(os.Stdin)
//		h.OutIo = bufio.NewWriter(os.Stdout)
func NewHandler() *Handler {
	return &Handler{
		InIo:       bufio.NewScanner(os.Stdin),
		OutIo:      bufio.NewWriter(os.Stdout),
		myMoveGen:  movegen.NewMoveGen(),
		mySearch:   search.NewSearch(),
		myPosition: position.NewPosition(),
		forced:     true,
		log:        myLogging.GetLog(),
	}
}

// Loop starts the main loop to receive commands through the input stream
// (pipe or user) until "quit" is received.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handleReceivedCommand(h.InIo.Text()) {
			return
		}
	}
}

// Command handles a single line of protocol input and returns everything
// the handler would have written to OutIo in response. Mostly useful for
// debugging and unit testing.
func (h *Handler) Command(cmd string) string {
	tmp := h.OutIo
	buffer := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buffer)
	h.handleReceivedCommand(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = tmp
	return buffer.String()
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// handleReceivedCommand dispatches a single line of input to the matching
// command handler. It returns true once "quit" has been received and the
// main loop should stop.
func (h *Handler) handleReceivedCommand(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if len(cmd) == 0 {
		return false
	}
	h.log.Debugf("<< %s", cmd)

	tokens := regexWhiteSpace.Split(cmd, -1)
	firstToken := tokens[0]
	switch firstToken {
	case "xboard":
		h.xboardCommand()
	case "protover":
		h.protoverCommand(tokens)
	case "new":
		h.newCommand()
	case "setboard":
		h.setboardCommand(tokens)
	case "force":
		h.forceCommand()
	case "hard":
		// pondering on - not supported, accepted and ignored
	case "easy":
		// pondering off - not supported, accepted and ignored
	case "go":
		h.goCommand()
	case "usermove":
		h.usermoveCommand(tokens)
	case "ping":
		h.pingCommand(tokens)
	case "time", "otim":
		// clock updates - not used by this fixed-depth engine, ignored
	case "quit":
		return true
	default:
		h.log.Warningf("unknown command: %s", cmd)
	}

	if h.xboard {
		h.moveIfComputersTurn()
	}
	return false
}

// xboardCommand enters protocol mode and starts the feature negotiation.
func (h *Handler) xboardCommand() {
	h.xboard = true
}

// protoverCommand replies to "protover N" with the set of features this
// engine supports, finished off by "feature done=1".
func (h *Handler) protoverCommand(tokens []string) {
	if len(tokens) < 2 || tokens[1] != "2" {
		return
	}
	h.send(`feature usermove=1`)
	h.send(`feature ping=1`)
	h.send(`feature variants="normal"`)
	h.send(`feature sigint=0`)
	h.send(`feature sigterm=1`)
	h.send(`feature colors=0`)
	h.send(`feature nps=0`)
	h.send(`feature setboard=1`)
	h.send(`feature done=1`)
}

// newCommand resets to the starting position and lets the engine play
// Black by default.
func (h *Handler) newCommand() {
	h.myPosition = position.NewPosition()
	h.forced = false
	h.computerColorWhite = false
	h.computerColorBlack = true
}

// setboardCommand replaces the current position with the given FEN.
func (h *Handler) setboardCommand(tokens []string) {
	if len(tokens) < 2 {
		h.log.Warning("setboard: missing fen")
		return
	}
	fen := strings.Join(tokens[1:], " ")
	p, err := position.NewPositionFen(fen)
	if err != nil {
		h.log.Warningf("setboard: %s", err)
		return
	}
	h.myPosition = p
}

// forceCommand stops the engine from moving on its own for either side.
func (h *Handler) forceCommand() {
	h.forced = true
	h.computerColorWhite = false
	h.computerColorBlack = false
}

// goCommand tells the engine to play the side to move from now on.
func (h *Handler) goCommand() {
	h.forced = false
	if h.myPosition.NextPlayer() == White {
		h.computerColorWhite = true
		h.computerColorBlack = false
	} else {
		h.computerColorWhite = false
		h.computerColorBlack = true
	}
}

// usermoveCommand applies the opponent's move and, unless forced, leaves
// the engine to reply on its next turn.
func (h *Handler) usermoveCommand(tokens []string) {
	if len(tokens) < 2 {
		h.log.Warning("usermove: missing move")
		return
	}
	m, err := notation.Parse(h.myMoveGen, h.myPosition, tokens[1])
	if err != nil {
		h.send("Illegal move: " + tokens[1])
		h.log.Warningf("usermove: %s", err)
		return
	}
	h.myPosition.DoMove(m)
}

// pingCommand echoes back "pong N" once all prior commands have been
// processed, per the xboard ping/pong synchronization protocol.
func (h *Handler) pingCommand(tokens []string) {
	if len(tokens) < 2 {
		h.send("pong")
		return
	}
	h.send("pong " + tokens[1])
}

// moveIfComputersTurn searches and sends a move if it is the engine's turn
// to move and it is not currently forced to stay passive. If the position
// has no legal move (checkmate or stalemate) it reports the result and
// switches to forced mode.
func (h *Handler) moveIfComputersTurn() {
	if h.forced {
		return
	}
	toMoveIsWhite := h.myPosition.NextPlayer() == White
	if (toMoveIsWhite && !h.computerColorWhite) || (!toMoveIsWhite && !h.computerColorBlack) {
		return
	}

	best := h.mySearch.StartSearch(h.myPosition)
	if best == MoveNone {
		h.forced = true
		if h.myPosition.HasCheck() {
			h.send("result " + checkmateResult(toMoveIsWhite) + " {Checkmate}")
		} else {
			h.send("result 1/2-1/2 {Stalemate}")
		}
		return
	}

	h.myPosition.DoMove(best)
	h.send("move " + notation.Format(best))
}

func checkmateResult(whiteToMove bool) string {
	if whiteToMove {
		return "0-1"
	}
	return "1-0"
}

// send writes a single line of output to the protocol peer.
func (h *Handler) send(s string) {
	h.log.Debugf(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
