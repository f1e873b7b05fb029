// resolution-de-problemes-combinatoires - a Sudoku solving and generation service.
// Copyright (C) 2026 Erwann Lesech.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/gridfile"
	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/puzzle"
)

func newSolveCommand() *cobra.Command {
	var noSave bool
	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a puzzle file and save the solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path := gridfile.FindRaw(args[0])
			g, err := gridfile.Load(path)
			if err != nil {
				return err
			}
			solved := g.Copy()
			start := time.Now()
			ok := puzzle.Solve(solved)
			elapsed := time.Since(start)
			if !ok {
				fmt.Fprintln(out, g.DisplayString())
				return fmt.Errorf("%s has no solution (searched for %v)", path, elapsed)
			}
			fmt.Fprintln(out, solved.DisplayString())
			fmt.Fprintf(out, "Solved %s in %v.\n", path, elapsed)
			if noSave {
				return nil
			}
			solutionPath := gridfile.SolutionPath(path)
			if err := gridfile.Save(solutionPath, solved); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote the solution to %s.\n", solutionPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noSave, "no-save", false, "don't write the solution file")
	return cmd
}
