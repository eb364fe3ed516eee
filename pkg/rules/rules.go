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

// Package rules implements the per-piece legality checks for moves.
//
// The checks only look at the shape of a move. Sliding pieces are not
// checked for obstructions, kings may move into check and there is no
// castling, en passant or promotion. A move may also land on a square
// held by the mover's own piece.
package rules

import (
	"fmt"

	"laptudirm.com/x/rookie/pkg/board"
	"laptudirm.com/x/rookie/pkg/move"
)

// Ruleset configures the legality checks.
type Ruleset struct {
	// StrictKnight replaces the default knight check, which only rejects
	// two-file moves that don't change exactly one rank, with the exact
	// L-shape rule.
	StrictKnight bool
}

// Default is the Ruleset used by the package-level Validate.
var Default = Ruleset{}

// Validate checks the move with the Default ruleset.
func Validate(mov move.Contextual, side board.Side, b *board.Board) error {
	return Default.Validate(mov, side, b)
}

// Validate checks whether the given side may play the move on the board.
// The checks run in a fixed order and the first failure is returned:
// bounds, occupancy, ownership and finally the shape of the move. The
// board is never modified.
func (rules Ruleset) Validate(mov move.Contextual, side board.Side, b *board.Board) error {
	if !mov.From.InBounds() || !mov.To.InBounds() {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, mov.Raw)
	}

	owner := mov.Owner()
	if owner == board.NoSide {
		return fmt.Errorf("player [%s] %w", side, ErrEmptySquare)
	}

	if owner != side {
		return fmt.Errorf("player [%s] %w [%s]", side, ErrWrongOwner, owner)
	}

	return rules.checkShape(mov, b)
}

func (rules Ruleset) checkShape(mov move.Contextual, b *board.Board) error {
	d := displacement(mov.Raw)

	var legal bool
	switch mov.Kind() {
	case board.Pawn:
		return checkPawn(mov, d, b)
	case board.Knight:
		if rules.StrictKnight {
			legal = d.knightExact()
		} else {
			legal = d.knight()
		}
	case board.Bishop:
		legal = d.diagonal()
	case board.Rook:
		legal = d.straight()
	case board.Queen:
		legal = d.diagonal() || d.straight()
	case board.King:
		legal = d.adjacent()
	default:
		return fmt.Errorf("%w: unknown piece kind %d", ErrIllegalShape, mov.Kind())
	}

	if !legal {
		return newShapeError(mov.Kind())
	}

	return nil
}

// checkPawn needs the board to look for a capture target.
func checkPawn(mov move.Contextual, d delta, b *board.Board) error {
	direction, home := 1, 1
	if mov.Owner() == board.White {
		direction, home = -1, board.Size-2
	}

	files := abs(d.files)
	switch forward := d.ranks * direction; {
	case forward == 1:
	case forward == 2 && files == 0 && mov.From.Rank == home:
	default:
		return newShapeError(board.Pawn)
	}

	switch {
	case files > 1:
		return &ShapeError{Kind: board.Pawn, Reason: pawnFileReason}
	case files == 1:
		// No en passant: the target must be on the destination square.
		target, _ := b.Get(mov.To)
		if target.IsEmpty() || target.Side == mov.Owner() {
			return &ShapeError{Kind: board.Pawn, Reason: pawnFileReason}
		}
	}

	return nil
}

type delta struct {
	ranks, files int
}

func displacement(raw move.Raw) delta {
	return delta{
		ranks: raw.To.Rank - raw.From.Rank,
		files: raw.To.File - raw.From.File,
	}
}

// knight only rejects a two-file move that doesn't also change exactly one
// rank. Other shapes, one-file moves included, are let through.
func (d delta) knight() bool {
	return !(abs(d.files) == 2 && abs(d.ranks) != 1)
}

func (d delta) knightExact() bool {
	files, ranks := abs(d.files), abs(d.ranks)
	return (files == 1 && ranks == 2) || (files == 2 && ranks == 1)
}

func (d delta) diagonal() bool {
	return d.files != 0 && abs(d.files) == abs(d.ranks)
}

func (d delta) straight() bool {
	return (d.files == 0) != (d.ranks == 0)
}

func (d delta) adjacent() bool {
	return abs(d.files) <= 1 && abs(d.ranks) <= 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
