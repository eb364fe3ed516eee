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

package rules

import (
	"errors"

	"laptudirm.com/x/rookie/pkg/board"
)

var (
	ErrOutOfBounds  = errors.New("move out of board range")
	ErrEmptySquare  = errors.New("cannot move an empty square")
	ErrWrongOwner   = errors.New("cannot move a piece owned by the opponent")
	ErrIllegalShape = errors.New("illegal piece movement")
)

var shapeReasons = [board.KindN]string{
	board.Pawn:   "Pawns can only move one square forward (2 on the first turn for each player)",
	board.Knight: "Knights may only move in an L shape",
	board.Bishop: "Bishops can only move diagonally",
	board.Rook:   "Rooks can move either horizontally or vertically - not both",
	board.Queen:  "Queens can move either diagonally or horizontally or vertically",
	board.King:   "King can move at most 1 square horizontally and/or vertically",
}

// pawnFileReason replaces the pawn's shape reason when it changes files
// without a capture.
const pawnFileReason = "Pawns cannot change files unless capturing an opponent's piece"

// ShapeError is returned when a move does not match the movement pattern
// of the moving piece. It matches ErrIllegalShape with errors.Is.
type ShapeError struct {
	Kind   board.Kind
	Reason string
}

func newShapeError(kind board.Kind) *ShapeError {
	return &ShapeError{Kind: kind, Reason: shapeReasons[kind]}
}

func (err *ShapeError) Error() string {
	return err.Reason
}

func (err *ShapeError) Is(target error) bool {
	return target == ErrIllegalShape
}
