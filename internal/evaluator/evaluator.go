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

// Package evaluator calculates a value for a chess position to be used
// as the leaf evaluation in search. Per the material-only leaf
// evaluator the search relies on, this stops at material (plus an
// optional, off-by-default piece-square term and tempo bonus) and does
// not touch mobility, king safety or pawn structure.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ardenlab/chessknight/internal/config"
	myLogging "github.com/ardenlab/chessknight/internal/logging"
	"github.com/ardenlab/chessknight/internal/position"
	. "github.com/ardenlab/chessknight/internal/types"
)

var out = message.NewPrinter(language.German)

// Evaluator computes the value of a chess position. Create a new
// instance with NewEvaluator().
type Evaluator struct {
	log *logging.Logger

	position *position.Position
	score    Score
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog(),
	}
}

// InitEval prepares the evaluator for an evaluation of p. Evaluate
// calls this itself, but tests may call it separately to inspect
// intermediate state.
func (e *Evaluator) InitEval(p *position.Position) {
	e.position = p
	e.score.MidGameValue = 0
	e.score.EndGameValue = 0
}

// Evaluate returns the value of position from the view of the side to
// move: positive means the side to move stands better.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	e.InitEval(p)
	return e.evaluate()
}

// evaluate assumes InitEval has already been called.
func (e *Evaluator) evaluate() Value {
	if e.position.HasInsufficientMaterial() {
		return ValueDraw
	}

	// Material is computed from the view of White and converted to the
	// side-to-move's view by finalEval; everything else is optional and
	// off by default (see internal/config/evalconfig.go).
	if config.Settings.Eval.UseMaterialEval {
		material := int(e.position.Material(White) - e.position.Material(Black))
		e.score.MidGameValue += material
		e.score.EndGameValue += material
	}

	if config.Settings.Eval.UsePositionalEval {
		mid := int(e.position.PsqMidValue(White) - e.position.PsqMidValue(Black))
		end := int(e.position.PsqEndValue(White) - e.position.PsqEndValue(Black))
		e.score.MidGameValue += mid
		e.score.EndGameValue += end
	}

	if config.Settings.Eval.UseTempo {
		// Tempo bonus, from White's view like the rest of the score;
		// finalEval below flips it to the side-to-move's perspective.
		e.score.MidGameValue += int(config.Settings.Eval.Tempo)
	}

	return e.finalEval(e.value())
}

// value adds up the mid and end game scores weighted by game phase.
func (e *Evaluator) value() Value {
	return e.score.ValueFromScore(e.position.GamePhaseFactor())
}

// finalEval converts a White-relative value to the side-to-move's view.
func (e *Evaluator) finalEval(value Value) Value {
	return value * Value(e.position.NextPlayer().Direction())
}

// Report prints a human-readable evaluation breakdown. Used in debugging.
func (e *Evaluator) Report() string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", e.position.StringFen()))
	report.WriteString(out.Sprintf("%s\n", e.position.StringBoard()))
	report.WriteString(out.Sprintf("GamePhase Factor: %f\n", e.position.GamePhaseFactor()))
	report.WriteString(out.Sprintf("Eval value  : %d \n(from the view of next player = %s)\n",
		e.Evaluate(e.position), e.position.NextPlayer().String()))
	return report.String()
}
