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

package position

import (
	. "github.com/ardenlab/chessknight/internal/types"
)

// zobrist holds one random Key per piece/square combination, one per
// castling rights combination, one per en passant file (plus a ninth
// entry at index 8) and one for side to move. A position's hash is the
// XOR of the entries matching its current state. The entry at index 8 is
// generated but never XORed into a hash: a position without an en passant
// square contributes no en passant key.
type zobrist struct {
	pieces         [PieceLength][SqLength]Key
	castlingRights [CastlingRightsLength]Key
	enPassantFile  [9]Key // index 8 is generated but never used
	nextPlayer     Key
}

// zobristBase holds the single package-wide set of zobrist random keys,
// generated once at startup by initZobrist.
var zobristBase = zobrist{}

// initZobrist fills zobristBase with pseudo random 64-bit keys. The seed
// is fixed so that zobrist keys (and therefore transposition hashes) are
// reproducible across runs.
func initZobrist() {
	r := NewRandom(1070372)
	for p := PieceNone; p < PieceLength; p++ {
		for sq := SqA1; sq < SqNone; sq++ {
			zobristBase.pieces[p][sq] = Key(r.Rand64())
		}
	}
	for cr := CastlingRights(0); cr < CastlingRightsLength; cr++ {
		zobristBase.castlingRights[cr] = Key(r.Rand64())
	}
	for f := 0; f < 9; f++ {
		zobristBase.enPassantFile[f] = Key(r.Rand64())
	}
	zobristBase.nextPlayer = Key(r.Rand64())
}

func init() {
	initZobrist()
}
