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

package protocol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkopp-labs/corvus/internal/config"
)

func TestHandler_ProtoverNegotiation(t *testing.T) {
	h := NewHandler()
	h.Command("xboard")
	out := h.Command("protover 2")
	assert.Contains(t, out, `feature usermove=1`)
	assert.Contains(t, out, `feature done=1`)
}

func TestHandler_Ping(t *testing.T) {
	h := NewHandler()
	out := h.Command("ping 7")
	assert.Equal(t, "pong 7\n", out)
}

func TestHandler_SetboardAndForce(t *testing.T) {
	h := NewHandler()
	h.Command("setboard 8/P7/8/8/8/8/8/k1K5 w - - 0 1")
	assert.Equal(t, "8/P7/8/8/8/8/8/k1K5 w - - 0 1", strings.TrimSpace(h.myPosition.StringFen()))
	h.Command("force")
	assert.True(t, h.forced)
}

func TestHandler_UsermoveAppliesMove(t *testing.T) {
	h := NewHandler()
	h.Command("new")
	h.Command("force")
	h.Command("usermove e2e4")
	assert.Equal(t, "e2e4", h.myPosition.LastMove().StringUci())
}

func TestHandler_UsermoveIllegalIsRejected(t *testing.T) {
	h := NewHandler()
	h.Command("new")
	h.Command("force")
	out := h.Command("usermove e2e5")
	assert.Contains(t, out, "Illegal move")
}

func TestHandler_GoTriggersEngineMove(t *testing.T) {
	config.Settings.Search.SearchDepth = 2
	h := NewHandler()
	h.Command("xboard")
	h.Command("new")
	out := h.Command("go")
	assert.Contains(t, out, "move ")
}

func TestHandler_QuitStopsLoop(t *testing.T) {
	h := NewHandler()
	assert.True(t, h.handleReceivedCommand("quit"))
}
