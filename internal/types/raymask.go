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

// dirRayMasks[sq][o] is the ray of squares from sq to the board edge along
// orientation o, exclusive of sq itself. Reuses the rays table built by
// raysPreCompute, indexed the other way round for the two-square queries
// below.
var dirRayMasks [SqLength][8]Bitboard

// alignMasks[sq][o] is the full line through sq along orientation o: the
// ray in both directions plus sq itself. Used to test whether a pinned
// pawn's en passant destination keeps it on the pin line.
var alignMasks [SqLength][8]Bitboard

// initRayMasks builds DirRayMasks/AlignMasks from the ray table. Must run
// after raysPreCompute has populated rays[].
func initRayMasks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		for o := Orientation(0); o < 8; o++ {
			dirRayMasks[sq][o] = rays[o][sq]
			alignMasks[sq][o] = rays[o][sq] | rays[o.Opposite()][sq] | sq.Bb()
		}
	}
}

// Opposite returns the orientation pointing the other way along the same line.
func (o Orientation) Opposite() Orientation {
	switch o {
	case N:
		return S
	case S:
		return N
	case E:
		return W
	case W:
		return E
	case NE:
		return SW
	case SW:
		return NE
	case NW:
		return SE
	case SE:
		return NW
	default:
		return o
	}
}

// IsPositive reports whether squares along o increase away from its
// origin (N, E, NE, NW), so the nearest blocker on a ray is its lowest
// set square (Lsb). The other four orientations (S, W, SE, SW) run
// toward decreasing squares, so the nearest blocker is the highest set
// square (Msb).
func (o Orientation) IsPositive() bool {
	return o == N || o == E || o == NE || o == NW
}

// RayFrom returns the ray of squares from sq to the board edge along
// orientation o, exclusive of sq itself.
func RayFrom(sq Square, o Orientation) Bitboard {
	return dirRayMasks[sq][o]
}

// DirRayMask returns the ray of squares from src toward dst, running all the
// way to the board edge, or BbZero if src and dst do not share a rank,
// file or diagonal. Used to restrict a pinned slider to the line it is
// pinned on.
func DirRayMask(src, dst Square) Bitboard {
	o, ok := src.OrientationTo(dst)
	if !ok {
		return BbZero
	}
	return dirRayMasks[src][o]
}

// AlignMask returns the full line through src and dst, both directions
// included, or BbZero if the two squares do not share a rank, file or
// diagonal. Used to test whether a pinned pawn may still move to dst
// without leaving the pin line (the en passant pin test compares
// AlignMask(src, king) against AlignMask(dst, king)).
func AlignMask(src, dst Square) Bitboard {
	o, ok := src.OrientationTo(dst)
	if !ok {
		return BbZero
	}
	return alignMasks[src][o]
}

// IsOrthogonal reports whether o is one of the four rook-style directions.
func (o Orientation) IsOrthogonal() bool {
	return o == N || o == E || o == S || o == W
}
