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

// Package session implements the interactive loop which reads moves from a
// player and feeds them to a match.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/rookie/pkg/board"
	"laptudirm.com/x/rookie/pkg/game"
	"laptudirm.com/x/rookie/pkg/render"
	"laptudirm.com/x/rookie/pkg/rules"
)

// quitWords end the current match when entered instead of a move.
var quitWords = map[string]bool{
	"quit":   true,
	"resign": true,
}

type Config struct {
	// NewBoard returns the starting board of every match.
	NewBoard func() (*board.Board, error)

	Rules rules.Ruleset

	Renderer render.Renderer

	// SVG is a file the board is written to after every accepted move.
	SVG string
}

type Session struct {
	Config

	in  *bufio.Reader
	out io.Writer
	log *logrus.Entry
}

// errEOF is returned internally when the input runs out.
var errEOF = errors.New("session: end of input")

// errLineTooLong is returned for input lines longer than MaxLineLength.
// The rest of the line is discarded.
var errLineTooLong = errors.New("input line is too long")

// MaxLineLength is the longest input line accepted, in bytes.
const MaxLineLength = 1024

func New(config Config, in io.Reader, out io.Writer) *Session {
	if config.NewBoard == nil {
		config.NewBoard = func() (*board.Board, error) {
			return board.New(), nil
		}
	}

	if config.Renderer == nil {
		config.Renderer = render.Text{}
	}

	return &Session{
		Config: config,

		in:  bufio.NewReader(in),
		out: out,
		log: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Run plays matches until the player declines to play again or the input
// ends. Running out of input is not an error.
func (session *Session) Run(ctx context.Context) error {
	for {
		session.printf("New chess match\n")
		if err := session.Match(ctx); err != nil {
			if errors.Is(err, errEOF) {
				return nil
			}

			return err
		}

		session.printf("Do you want to play again? (y/n): ")
		answer, err := session.readLine()
		if err != nil && !errors.Is(err, errLineTooLong) {
			if errors.Is(err, errEOF) {
				return nil
			}

			return err
		}

		if strings.ToLower(answer) == "n" {
			return nil
		}
	}
}

// Match plays a single match. Since the end of a match is never detected,
// it only returns once the player quits or the input ends.
func (session *Session) Match(ctx context.Context) error {
	b, err := session.NewBoard()
	if err != nil {
		return err
	}

	state := game.New(b)
	state.Rules = session.Rules

	log := session.log.WithField("match", uuid.NewString())
	log.Debug("Starting match")

	session.printf("Note: all moves should be in 0-index 2d array notation.\n")
	session.printf("Example: '(1,0)-(1,1)'\n")

	for !state.IsOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := session.Renderer.Render(session.out, state); err != nil {
			return err
		}

		quit, err := session.playMove(state, log)
		if err != nil {
			return err
		}

		if quit {
			log.WithField("turn", state.FullTurn()).Debug("Match abandoned")
			return nil
		}
	}

	log.WithField("result", state.Result()).Debug("Match over")
	return nil
}

// playMove prompts until a legal move is entered and applies it. It
// reports whether the player asked to quit instead.
func (session *Session) playMove(state *game.State, log *logrus.Entry) (bool, error) {
	for {
		session.printf("[%s] Enter move: ", state.Active)
		movstr, err := session.readLine()
		if errors.Is(err, errLineTooLong) {
			log.WithField("side", state.Active).Debug("Move rejected: line too long")
			session.printf("Move [%s] is not valid: %s\n", movstr, err)
			continue
		}

		if err != nil {
			return false, err
		}

		if quitWords[strings.ToLower(movstr)] {
			return true, nil
		}

		mov, err := state.Play(movstr)
		if err != nil {
			log.WithFields(logrus.Fields{
				"side": state.Active,
				"move": movstr,
			}).WithError(err).Debug("Move rejected")
			session.printf("Move [%s] is not valid: %s\n", movstr, err)
			continue
		}

		log.WithFields(logrus.Fields{
			"side":  mov.Owner(),
			"piece": mov.Kind(),
			"move":  mov.Raw,
			"turn":  state.Turn(),
		}).Debug("Move accepted")

		if session.SVG != "" {
			if err := session.writeSVG(state); err != nil {
				log.WithError(err).Warn("Unable to write svg board")
			}
		}

		return false, nil
	}
}

func (session *Session) writeSVG(state *game.State) error {
	file, err := os.Create(session.SVG)
	if err != nil {
		return err
	}

	if err := (render.SVG{}).Render(file, state); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

// readLine reads the next line of input with all whitespace removed. Lines
// longer than MaxLineLength are consumed whole and reported with
// errLineTooLong, along with their first few characters.
func (session *Session) readLine() (string, error) {
	var line []byte
	tooLong := false

	for {
		chunk, more, err := session.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", errEOF
			}

			return "", err
		}

		if !tooLong {
			if len(line)+len(chunk) > MaxLineLength {
				tooLong = true
				if len(line) < 16 {
					line = append(line, chunk[:16-len(line)]...)
				}
				line = line[:16]
			} else {
				line = append(line, chunk...)
			}
		}

		if !more {
			break
		}
	}

	text := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(line))

	if tooLong {
		return text + "...", errLineTooLong
	}

	return text, nil
}

func (session *Session) printf(format string, a ...any) {
	fmt.Fprintf(session.out, format, a...)
}
