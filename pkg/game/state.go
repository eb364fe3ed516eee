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

// Package game implements the mutable state of a single match.
package game

import (
	"laptudirm.com/x/rookie/pkg/board"
	"laptudirm.com/x/rookie/pkg/move"
	"laptudirm.com/x/rookie/pkg/rules"
)

// State is the state of a match. It owns its board and is only modified
// through Apply.
type State struct {
	Board *board.Board

	// Active is the side to move.
	Active board.Side

	// Plies is the number of moves applied so far.
	Plies int

	// Previous is the last applied move, nil before the first one.
	Previous *move.Contextual

	Rules rules.Ruleset

	// winner is never assigned since game end is not detected.
	winner board.Side
}

// New returns the state of a fresh match on the given board, with white to
// move. A nil board is replaced by the starting layout.
func New(b *board.Board) *State {
	if b == nil {
		b = board.New()
	}

	return &State{
		Board:  b,
		Active: board.White,
		Rules:  rules.Default,
	}
}

// Turn returns the turn number, which starts at 1 and grows by a half for
// every ply.
func (state *State) Turn() float64 {
	return 1 + float64(state.Plies)/2
}

// FullTurn returns the truncated turn number, shared by both moves of a
// full turn.
func (state *State) FullTurn() int {
	return 1 + state.Plies/2
}

// Resolve annotates a parsed move with the piece on its origin square.
func (state *State) Resolve(raw move.Raw) move.Contextual {
	return move.Resolve(raw, state.Board)
}

// Validate checks the move for the active side.
func (state *State) Validate(mov move.Contextual) error {
	return state.Rules.Validate(mov, state.Active, state.Board)
}

// Apply plays a validated move: it is recorded as the previous move, the
// turn advances, the other side becomes active and the moving piece is
// relocated, overwriting anything on the destination square. The origin is
// cleared last, so a move onto its own square removes the piece.
func (state *State) Apply(mov move.Contextual) {
	state.Previous = &mov
	state.Plies++
	state.Active = state.Active.Other()

	state.Board.Set(mov.To, mov.Piece)
	state.Board.Set(mov.From, board.NoPiece)
}

// Play parses, validates and applies the given move string. The state is
// left untouched if an error is returned.
func (state *State) Play(movstr string) (move.Contextual, error) {
	raw, err := move.Parse(movstr)
	if err != nil {
		return move.Contextual{}, err
	}

	mov := state.Resolve(raw)
	if err := state.Validate(mov); err != nil {
		return mov, err
	}

	state.Apply(mov)
	return mov, nil
}

// IsOver reports whether the match has ended. Game end is never detected,
// so it always returns false.
func (state *State) IsOver() bool {
	return state.Result() != Ongoing
}

// Winner returns the winning side. The second return value is false while
// no winner has been decided, which is always the case.
func (state *State) Winner() (board.Side, bool) {
	return state.winner, state.winner != board.NoSide
}

// Result returns the result of the match.
func (state *State) Result() Result {
	switch state.winner {
	case board.White:
		return WhiteWins
	case board.Black:
		return BlackWins
	default:
		return Ongoing
	}
}
