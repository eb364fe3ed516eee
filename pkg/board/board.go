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

// Package board implements the 8x8 square-to-piece model of a match.
package board

import (
	"fmt"
	"strings"
)

// Size is the number of ranks and files on the board.
const Size = 8

// Coordinate addresses a square. Rank 0 is black's back rank.
type Coordinate struct {
	Rank, File int
}

// InBounds reports whether both the rank and the file are on the board.
func (c Coordinate) InBounds() bool {
	return c.Rank >= 0 && c.Rank < Size &&
		c.File >= 0 && c.File < Size
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Rank, c.File)
}

// Board is a fixed 8x8 grid of pieces. Empty squares hold NoPiece.
type Board [Size][Size]Piece

// backRank lists the pieces placed on each side's back rank, files 0-4.
var backRank = [...]Kind{Rook, Knight, Bishop, Queen, King}

// New returns a board with the starting layout: rook, knight, bishop, queen
// and king on files 0-4 of each back rank. No pawns are placed.
func New() *Board {
	var b Board
	for file, kind := range backRank {
		b[0][file] = NewPiece(kind, Black)
		b[Size-1][file] = NewPiece(kind, White)
	}

	return &b
}

// Get returns the piece on the given square. The second return value is
// false if the coordinate is not on the board.
func (b *Board) Get(c Coordinate) (Piece, bool) {
	if !c.InBounds() {
		return NoPiece, false
	}

	return b[c.Rank][c.File], true
}

// Set puts the given piece on the given square. Out of range coordinates
// are ignored.
func (b *Board) Set(c Coordinate, p Piece) {
	if c.InBounds() {
		b[c.Rank][c.File] = p
	}
}

// Each calls fn for every square, rank-major and file-minor.
func (b *Board) Each(fn func(Coordinate, Piece)) {
	for rank := 0; rank < Size; rank++ {
		for file := 0; file < Size; file++ {
			fn(Coordinate{Rank: rank, File: file}, b[rank][file])
		}
	}
}

// Parse decodes a layout string of eight '/' separated ranks, rank 0 first,
// each holding exactly eight piece characters.
func Parse(layout string) (*Board, error) {
	ranks := strings.Split(strings.TrimSpace(layout), "/")
	if len(ranks) != Size {
		return nil, fmt.Errorf("board: layout has %d ranks, expected %d", len(ranks), Size)
	}

	var b Board
	for rank, row := range ranks {
		if len(row) != Size {
			return nil, fmt.Errorf("board: rank %d has %d squares, expected %d", rank, len(row), Size)
		}

		for file := 0; file < Size; file++ {
			p, err := ParsePiece(row[file])
			if err != nil {
				return nil, err
			}

			b[rank][file] = p
		}
	}

	return &b, nil
}

// Layout encodes the board in the format read by Parse.
func (b *Board) Layout() string {
	var layout strings.Builder
	for rank := 0; rank < Size; rank++ {
		if rank > 0 {
			layout.WriteByte('/')
		}

		for file := 0; file < Size; file++ {
			layout.WriteByte(b[rank][file].Char())
		}
	}

	return layout.String()
}
