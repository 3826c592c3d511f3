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

package testsuite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Depth2AllPositionsPass(t *testing.T) {
	results, err := Run(context.Background(), 2, 2)
	assert.NoError(t, err)
	assert.Len(t, results, len(Positions))
	for _, r := range results {
		assert.True(t, r.Passed, "%s: expected %d, got %d", r.Case.Name, r.Case.Expected[r.MaxDepth-1], r.Counted[0])
	}
}

func TestRun_InitialPositionDepth3(t *testing.T) {
	results, err := Run(context.Background(), 3, 1)
	assert.NoError(t, err)
	initial := results[0]
	assert.Equal(t, "initial position", initial.Case.Name)
	assert.Equal(t, uint64(8902), initial.Counted[0])
	assert.True(t, initial.Passed)
}

func TestSummary_ReportsTally(t *testing.T) {
	results, err := Run(context.Background(), 1, 4)
	assert.NoError(t, err)
	summary := Summary(results)
	assert.Contains(t, summary, "6/6 positions passed")
}
