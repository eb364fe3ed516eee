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
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rookie/pkg/game"
	"laptudirm.com/x/rookie/pkg/render"
	"laptudirm.com/x/rookie/pkg/rules"
)

// rookie check
func Check() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check move...",
		Short: "Check a sequence of moves from the starting position",
		Args:  cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`check plays the given moves in order, starting from the
			starting position with white to move, and reports whether
			each one is legal.

			Checking stops at the first illegal move, which is reported
			as an error. The final board is printed if all moves are
			legal.`),
		Example: "  rookie check '(7,4)-(6,4)' '(0,4)-(1,4)'",

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			applyFlags(cmd, cfg)

			b, err := cfg.Board()
			if err != nil {
				return err
			}

			state := game.New(b)
			state.Rules = rules.Ruleset{StrictKnight: cfg.StrictKnight}

			out := cmd.OutOrStdout()
			for i, arg := range args {
				movstr := strings.Join(strings.Fields(arg), "")

				side := state.Active
				mov, err := state.Play(movstr)
				if err != nil {
					return fmt.Errorf("move %d [%s] by %s is not valid: %w", i+1, movstr, side, err)
				}

				logrus.WithField("piece", mov.Kind()).Debugf("Played %s", mov.Raw)
				fmt.Fprintf(out, "%d. %s %s %s: legal\n", i+1, side, mov.Kind(), mov.Raw)
			}

			return render.Text{}.Render(out, state)
		},
	}

	cmd.Flags().String("position", "", "Custom starting layout, eight '/' separated ranks from rank 0")
	addRuleFlags(cmd)

	return cmd
}
