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

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkopp-labs/corvus/internal/movegen"
	"github.com/fkopp-labs/corvus/internal/position"
)

func TestParse_Valid(t *testing.T) {
	mg := movegen.NewMoveGen()
	p := position.NewPosition()
	m, err := Parse(mg, p, "e2e4")
	assert.NoError(t, err)
	assert.Equal(t, "e2e4", Format(m))
}

func TestParse_Malformed(t *testing.T) {
	mg := movegen.NewMoveGen()
	p := position.NewPosition()
	_, err := Parse(mg, p, "zz99")
	assert.Error(t, err)
}

func TestParse_Illegal(t *testing.T) {
	mg := movegen.NewMoveGen()
	p := position.NewPosition()
	_, err := Parse(mg, p, "e2e5")
	assert.Error(t, err)
}

func TestParse_Promotion(t *testing.T) {
	mg := movegen.NewMoveGen()
	p, err := position.NewPositionFen("8/P7/8/8/8/8/8/k1K5 w - - 0 1")
	assert.NoError(t, err)
	m, err := Parse(mg, p, "a7a8q")
	assert.NoError(t, err)
	assert.Equal(t, "a7a8q", Format(m))
}
