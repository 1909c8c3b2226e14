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

// Package search implements a synchronous negamax search with alpha-beta
// pruning over a single position. There is no time control, no
// transposition table, no opening book and no UCI wiring - the caller
// hands a position and a depth to StartSearch and blocks until the
// result is back.
package search

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ardenlab/chessknight/internal/config"
	"github.com/ardenlab/chessknight/internal/evaluator"
	myLogging "github.com/ardenlab/chessknight/internal/logging"
	"github.com/ardenlab/chessknight/internal/movegen"
	"github.com/ardenlab/chessknight/internal/moveslice"
	"github.com/ardenlab/chessknight/internal/position"
	. "github.com/ardenlab/chessknight/internal/types"
)

var out = message.NewPrinter(language.German)

// Result carries the outcome of a search: the move to play at the
// root and its negamax value from the searching side's perspective.
type Result struct {
	BestMove  Move
	BestValue Value
	Depth     int
	Nodes     uint64
	Time      time.Duration
}

// String returns a human-readable representation of a search result.
func (r *Result) String() string {
	return out.Sprintf("bestmove %s value %s depth %d nodes %d time %s",
		r.BestMove.StringUci(), r.BestValue.String(), r.Depth, r.Nodes, r.Time)
}

// Search holds everything needed to run a negamax search on a single
// position. A Search instance is not safe for concurrent use - create
// one per goroutine if several positions should be searched in
// parallel (see the CLI's -fenfile mode).
type Search struct {
	log    *logging.Logger
	mg     *movegen.Movegen
	eval   *evaluator.Evaluator
	nodes  uint64
	result Result
}

// NewSearch creates a new, ready to use Search instance.
func NewSearch() *Search {
	return &Search{
		log:  myLogging.GetSearchLog(),
		mg:   movegen.NewMoveGen(),
		eval: evaluator.NewEvaluator(),
	}
}

// StartSearch runs a negamax search with alpha-beta pruning to the given
// depth on a copy of p and returns the principal move at the root.
// depth <= 0 falls back to the configured default search depth.
func (s *Search) StartSearch(p position.Position, depth int) Result {
	if depth <= 0 {
		depth = config.Settings.Search.Depth
	}
	if depth <= 0 {
		depth = 4
	}

	s.nodes = 0
	start := time.Now()

	moves := s.mg.GenerateLegalMoves(&p, movegen.GenAll)
	if moves.Len() == 0 {
		terminal := ValueDraw
		if p.HasCheck() {
			terminal = ValueMin
		}
		s.result = Result{BestMove: MoveNone, BestValue: terminal, Depth: depth, Time: time.Since(start)}
		return s.result
	}

	if config.Settings.Search.UseMoveOrdering {
		s.orderMoves(&p, moves)
	}

	best := ValueMin
	bestMove := MoveNone
	alpha := ValueMin
	beta := ValueMax

	for _, m := range *moves {
		p.DoMove(m)
		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}
		value := -s.negamax(&p, depth-1, -beta, -alpha)
		p.UndoMove()

		if value > best {
			best = value
			bestMove = m
		}
		if best > alpha {
			alpha = best
		}
	}

	s.result = Result{
		BestMove:  bestMove,
		BestValue: best,
		Depth:     depth,
		Nodes:     s.nodes,
		Time:      time.Since(start),
	}
	s.log.Debugf("search finished: %s", s.result.String())
	return s.result
}

// LastResult returns the result of the most recently completed search.
func (s *Search) LastResult() Result {
	return s.result
}

// negamax is the recursive alpha-beta search below the root. At depth
// zero it returns the material-only leaf evaluation; otherwise it
// generates every legal move, orders them, and recurses with a negated
// and swapped window. A position with no legal moves is checkmate
// (the worst possible score, offset by nothing since the search
// carries no mate-distance scoring) if the side to move is in check,
// or a stalemate draw otherwise.
func (s *Search) negamax(p *position.Position, depth int, alpha, beta Value) Value {
	s.nodes++

	if depth == 0 {
		return s.eval.Evaluate(p)
	}

	moves := s.mg.GenerateLegalMoves(p, movegen.GenAll)
	if moves.Len() == 0 {
		if p.HasCheck() {
			return ValueMin
		}
		return ValueDraw
	}

	if config.Settings.Search.UseMoveOrdering {
		s.orderMoves(p, moves)
	}

	best := ValueMin
	for _, m := range *moves {
		p.DoMove(m)
		value := -s.negamax(p, depth-1, -beta, -alpha)
		p.UndoMove()

		if value > best {
			best = value
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// orderMoves sorts moves captures-first using a simple MVV-LVA style
// key so alpha-beta finds cutoffs earlier.
func (s *Search) orderMoves(p *position.Position, moves *moveslice.MoveSlice) {
	moves.SortBy(func(m Move) Value {
		return moveOrderScore(p, m)
	})
}

// moveOrderScore scores a move for ordering purposes only - it is never
// stored on the move itself and has no effect on search correctness,
// only on how quickly alpha-beta cutoffs are found.
func moveOrderScore(p *position.Position, m Move) Value {
	var score Value
	captured := p.GetPiece(m.To())
	switch {
	case m.Kind() == EnPassant:
		score = 10*Pawn.ValueOf() - Pawn.ValueOf()
	case captured != PieceNone:
		mover := p.GetPiece(m.From()).TypeOf()
		score = 10*captured.ValueOf() - mover.ValueOf()
	}
	if m.IsPromotion() {
		score += Queen.ValueOf()
	}
	return score
}
