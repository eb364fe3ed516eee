// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package board

import "fmt"

// Side represents the owner of a piece.
type Side uint8

const (
	NoSide Side = iota
	White
	Black
)

// Other returns the opposing side. NoSide has no opponent.
func (side Side) Other() Side {
	switch side {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoSide
	}
}

func (side Side) String() string {
	switch side {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Kind represents the type of a piece, without its side.
type Kind uint8

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// KindN is the number of piece kinds, the Empty sentinel included.
const KindN = 7

var kindChars = [KindN]byte{'_', 'p', 'n', 'b', 'r', 'q', 'k'}

var kindNames = [KindN]string{"empty", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (kind Kind) String() string {
	if kind >= KindN {
		return "?"
	}

	return kindNames[kind]
}

// Piece is a value representing the occupant of a square. The zero value
// is NoPiece, the content of an empty square.
type Piece struct {
	Kind Kind
	Side Side
}

// NoPiece represents an empty square.
var NoPiece = Piece{}

// NewPiece returns a piece of the given kind owned by the given side.
func NewPiece(kind Kind, side Side) Piece {
	return Piece{Kind: kind, Side: side}
}

// IsEmpty reports whether the piece represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Char returns the single character encoding of the piece: lowercase for
// black, uppercase for white and '_' for an empty square.
func (p Piece) Char() byte {
	if p.Kind >= KindN || p.Kind == Empty {
		return kindChars[Empty]
	}

	char := kindChars[p.Kind]
	if p.Side == White {
		char -= 'a' - 'A'
	}

	return char
}

func (p Piece) String() string {
	return string(p.Char())
}

// ParsePiece decodes a single piece character.
func ParsePiece(char byte) (Piece, error) {
	if char == kindChars[Empty] {
		return NoPiece, nil
	}

	side := Black
	if char >= 'A' && char <= 'Z' {
		side = White
		char += 'a' - 'A'
	}

	for kind := Pawn; kind < KindN; kind++ {
		if kindChars[kind] == char {
			return NewPiece(kind, side), nil
		}
	}

	return NoPiece, fmt.Errorf("board: invalid piece character %q", char)
}
