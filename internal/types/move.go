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

import (
	"fmt"
	"strings"
)

// Move is a 16-bit encoding of a chess move: source square, destination
// square and a move kind nibble. Unlike earlier FrankyGo move encodings
// this carries no embedded sort value - move ordering is the caller's
// concern (see moveslice.SortBy).
//  BITMAP 16-bit
//  1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  --------------------------------
//            1 1 1 1 1 1              from
//                        1 1 1 1 1 1  to
//  1 1 1 1                            kind
type Move uint16

const (
	// MoveNone is the empty, non valid move.
	MoveNone Move = 0

	fromShift uint   = 6
	kindShift uint   = 12
	squareMask Move  = 0x3F
	toMask     Move  = squareMask
	fromMask   Move  = squareMask << fromShift
	kindMask   Move  = 0xF << kindShift
)

// MoveKind distinguishes the handful of move shapes that need special
// make/unmake treatment (castling, en passant, the pawn double push and
// the four promotion kinds) from an ordinary move.
type MoveKind uint8

// MoveKind is deliberately packed into 4 bits even though only 3 are
// strictly needed, mirroring the nibble boundary the rest of the move
// encoding uses.
const (
	Basic          MoveKind = 0b0000
	EnPassant      MoveKind = 0b0001
	Castle         MoveKind = 0b0010
	PawnDoublePush MoveKind = 0b0011
	PromotionQueen MoveKind = 0b0100
	PromotionKnight MoveKind = 0b0101
	PromotionRook  MoveKind = 0b0110
	PromotionBishop MoveKind = 0b0111
)

// IsValid returns true if k is one of the eight defined move kinds.
func (k MoveKind) IsValid() bool {
	return k <= PromotionBishop
}

// IsPromotion returns true if k encodes one of the four promotion kinds.
func (k MoveKind) IsPromotion() bool {
	return k >= PromotionQueen && k <= PromotionBishop
}

// PieceType returns the piece type a promotion kind produces.
// Must only be called when k.IsPromotion() is true.
func (k MoveKind) PieceType() PieceType {
	switch k {
	case PromotionQueen:
		return Queen
	case PromotionKnight:
		return Knight
	case PromotionRook:
		return Rook
	case PromotionBishop:
		return Bishop
	default:
		panic(fmt.Sprintf("PieceType called on non-promotion move kind %d", k))
	}
}

// String returns a short label for the move kind.
func (k MoveKind) String() string {
	switch k {
	case Basic:
		return "basic"
	case EnPassant:
		return "enpassant"
	case Castle:
		return "castle"
	case PawnDoublePush:
		return "doublepush"
	case PromotionQueen:
		return "promotion(Q)"
	case PromotionKnight:
		return "promotion(N)"
	case PromotionRook:
		return "promotion(R)"
	case PromotionBishop:
		return "promotion(B)"
	default:
		return "invalid"
	}
}

// CreateMove returns an encoded Move instance for a plain (non-promotion)
// move kind. Basic, EnPassant, Castle and PawnDoublePush all go through
// here; promotions use CreatePromotion.
func CreateMove(from Square, to Square, kind MoveKind) Move {
	return Move(to) | Move(from)<<fromShift | Move(kind)<<kindShift
}

// CreatePromotion returns an encoded Move instance that promotes to pt,
// which must be one of Knight, Bishop, Rook or Queen.
func CreatePromotion(from Square, to Square, pt PieceType) Move {
	var kind MoveKind
	switch pt {
	case Queen:
		kind = PromotionQueen
	case Knight:
		kind = PromotionKnight
	case Rook:
		kind = PromotionRook
	case Bishop:
		kind = PromotionBishop
	default:
		panic(fmt.Sprintf("invalid promotion piece type %s", pt))
	}
	return Move(to) | Move(from)<<fromShift | Move(kind)<<kindShift
}

// From returns the from-Square of the move.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the to-Square of the move.
func (m Move) To() Square {
	return Square(m & toMask)
}

// Kind returns the MoveKind of the move.
func (m Move) Kind() MoveKind {
	return MoveKind((m & kindMask) >> kindShift)
}

// IsPromotion returns true if the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind().IsPromotion()
}

// PromotionType returns the piece type the move promotes to.
// Must only be called when m.IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	return m.Kind().PieceType()
}

// IsValid checks if the move has valid squares and a valid kind, and that
// from and to are distinct. MoveNone is not a valid move in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.From() != m.To() &&
		m.Kind().IsValid()
}

// String returns a verbose representation of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  kind:%s }", m.StringUci(), m.Kind().String())
}

// StringUci returns a UCI compatible representation of the move,
// e.g. "e2e4" or "e7e8q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.IsPromotion() {
		os.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return os.String()
}
