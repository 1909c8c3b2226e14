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

package types

// PieceBoard is a nybble-packed piece placement table: one uint32 per
// rank, with each rank holding eight 4-bit nybbles (one per file). Each
// nybble is a Piece value as-is, since Piece already fits in 4 bits
// (PieceNone=0, White pieces 1-6, Black pieces 9-14).
type PieceBoard [8]uint32

func nybbleShift(f File) uint {
	return uint(f) << 2
}

// Get returns the piece placed on sq, or PieceNone if sq is empty.
func (pb *PieceBoard) Get(sq Square) Piece {
	r := sq.RankOf()
	f := sq.FileOf()
	return Piece((pb[r] >> nybbleShift(f)) & 0xF)
}

// Set places p on sq, overwriting whatever was there (PieceNone removes
// a piece).
func (pb *PieceBoard) Set(sq Square, p Piece) {
	r := sq.RankOf()
	f := sq.FileOf()
	shift := nybbleShift(f)
	pb[r] &^= 0xF << shift
	pb[r] |= uint32(p&0xF) << shift
}

// IsEmpty returns true if sq holds no piece.
func (pb *PieceBoard) IsEmpty(sq Square) bool {
	return pb.Get(sq) == PieceNone
}
