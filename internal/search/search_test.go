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

package search

import (
	"os"
	"path"
	"runtime"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/ardenlab/chessknight/internal/config"
	"github.com/ardenlab/chessknight/internal/logging"
	"github.com/ardenlab/chessknight/internal/position"
	. "github.com/ardenlab/chessknight/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// Setup the tests.
func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestStartSearchInitialPosition(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	result := s.StartSearch(*p, 3)
	logTest.Debug(result.String())
	assert.True(t, result.BestMove.IsValid())
	assert.Greater(t, result.Nodes, uint64(0))
}

func TestMatePosition(t *testing.T) {
	s := NewSearch()
	p, err := position.NewPositionFen("8/8/8/8/8/5K2/8/R4k2 b - - 0 1")
	assert.NoError(t, err)
	result := s.StartSearch(*p, 2)
	logTest.Debug(result.String())
	assert.Equal(t, MoveNone, result.BestMove)
	assert.EqualValues(t, ValueMin, result.BestValue)
}

func TestStaleMatePosition(t *testing.T) {
	s := NewSearch()
	p, err := position.NewPositionFen("6R1/8/8/8/8/5K2/R7/7k b - - 0 1")
	assert.NoError(t, err)
	result := s.StartSearch(*p, 2)
	logTest.Debug(result.String())
	assert.Equal(t, MoveNone, result.BestMove)
	assert.EqualValues(t, ValueDraw, result.BestValue)
}

func TestFindsHangingQueenCapture(t *testing.T) {
	s := NewSearch()
	// The black rook on a1 can take the white queen on d1; the king recaptures,
	// but black still wins the queen for the rook.
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/r2QK3 b - - 0 1")
	assert.NoError(t, err)
	result := s.StartSearch(*p, 2)
	logTest.Debug(result.String())
	assert.Equal(t, SqA1, result.BestMove.From())
	assert.Equal(t, SqD1, result.BestMove.To())
}

func TestDefaultDepthFallsBackToConfig(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	result := s.StartSearch(*p, 0)
	assert.Equal(t, config.Settings.Search.Depth, result.Depth)
}
