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
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/gridfile"
	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/puzzle"
)

func newGenerateCommand() *cobra.Command {
	var (
		size       int
		difficulty string
		seed       int64
		outPath    string
		unique     bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one puzzle file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := puzzle.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			var rnd *rand.Rand
			if cmd.Flags().Changed("seed") {
				rnd = rand.New(rand.NewSource(seed))
			}
			gen := puzzle.NewGenerator(rnd)
			var g *puzzle.Grid
			if unique {
				g, err = gen.CreatePuzzleUnique(size, d)
			} else {
				g, err = gen.CreatePuzzle(size, d)
			}
			if err != nil {
				return err
			}
			path := outPath
			if path == "" {
				path = gridfile.RawPath(fmt.Sprintf("sudoku_%dx%d_%s.txt", size, size, d))
			}
			if err := gridfile.Save(path, g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote a %dx%d %s puzzle (%d empty) to %s.\n",
				size, size, d, g.Empty(), path)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 9, "side length of the grid")
	cmd.Flags().StringVar(&difficulty, "difficulty", "easy", "removal tier: easy, medium, or hard")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed random seed, for reproducible output")
	cmd.Flags().StringVar(&outPath, "out", "", "output path (default under the raw grids directory)")
	cmd.Flags().BoolVar(&unique, "unique", false, "only remove values while the solution stays unique")
	return cmd
}
