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

package move

import "laptudirm.com/x/rookie/pkg/board"

// Contextual is a Raw move annotated with a snapshot of the piece on its
// origin square, taken once before validation.
type Contextual struct {
	Raw

	Piece board.Piece
}

// Kind returns the kind of the moving piece, Empty if there is none.
func (mov Contextual) Kind() board.Kind {
	return mov.Piece.Kind
}

// Owner returns the side of the moving piece, NoSide if there is none.
func (mov Contextual) Owner() board.Side {
	if mov.Piece.IsEmpty() {
		return board.NoSide
	}

	return mov.Piece.Side
}

// Resolve reads the origin square of the move from the board. An empty or
// off-board origin is represented by board.NoPiece.
func Resolve(raw Raw, b *board.Board) Contextual {
	p, _ := b.Get(raw.From)
	return Contextual{Raw: raw, Piece: p}
}
