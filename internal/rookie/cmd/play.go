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

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rookie/internal/session"
	"laptudirm.com/x/rookie/pkg/config"
	"laptudirm.com/x/rookie/pkg/render"
	"laptudirm.com/x/rookie/pkg/rules"
)

// rookie play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a two player match in the terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts an interactive match between two players
			sharing the terminal. White moves first.

			Moves are written as a pair of 0-indexed (rank,file)
			coordinates separated by a dash, like (7,4)-(6,4). Rank 0 is
			black's back rank and rank 7 is white's.

			Only the shape of a move is checked: pieces may jump over
			each other and the game never ends by itself. Enter quit to
			abandon a match.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			applyFlags(cmd, cfg)

			s := session.New(session.Config{
				NewBoard: cfg.Board,
				Rules:    rules.Ruleset{StrictKnight: cfg.StrictKnight},
				Renderer: render.Text{Color: cfg.Color},
				SVG:      cfg.SVG,
			}, cmd.InOrStdin(), cmd.OutOrStdout())

			return s.Run(cmd.Context())
		},
	}

	cmd.Flags().Bool("no-color", false, "Don't color the board")
	cmd.Flags().String("svg", "", "Write the board as svg to this file after every move")
	cmd.Flags().String("position", "", "Custom starting layout, eight '/' separated ranks from rank 0")
	addRuleFlags(cmd)

	return cmd
}

func addRuleFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strict-knight", false, "Only allow exact L-shaped knight moves")
}

// applyFlags overrides the configuration with the flags given on the
// command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		cfg.Color = !noColor
	}
	if flags.Changed("svg") {
		cfg.SVG, _ = flags.GetString("svg")
	}
	if flags.Changed("position") {
		cfg.Position, _ = flags.GetString("position")
	}
	if flags.Changed("strict-knight") {
		cfg.StrictKnight, _ = flags.GetBool("strict-knight")
	}
}
