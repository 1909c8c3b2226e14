/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search. There is no opening book, no transposition
// table, no null move pruning, no iterative deepening and no
// quiescence search - the search is a plain negamax with alpha-beta
// and MVV-LVA move ordering, see internal/search.
type searchConfiguration struct {
	// Depth is the default search depth used when StartSearch is
	// called with depth <= 0.
	Depth int

	// UseMoveOrdering enables MVV-LVA style move ordering before each
	// node's move loop so alpha-beta finds cutoffs earlier.
	UseMoveOrdering bool
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.Depth = 4
	Settings.Search.UseMoveOrdering = true
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {

}
