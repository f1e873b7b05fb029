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

// largest side length the batch generator will attempt; a brute-force
// fill of a 25x25 grid can run for hours
const maxBatchSize = 16

func newBatchCommand() *cobra.Command {
	var (
		sizes []int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate a puzzle file per size and difficulty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, size := range sizes {
				if size > maxBatchSize {
					return fmt.Errorf("size %d refused: filling a grid that large takes too long", size)
				}
			}
			var rnd *rand.Rand
			if cmd.Flags().Changed("seed") {
				rnd = rand.New(rand.NewSource(seed))
			}
			gen := puzzle.NewGenerator(rnd)
			for _, size := range sizes {
				for d := puzzle.Easy; d <= puzzle.Hard; d++ {
					g, err := gen.CreatePuzzle(size, d)
					if err != nil {
						return err
					}
					path := gridfile.RawPath(fmt.Sprintf("test_sudoku_%dx%d_%s.txt", size, size, d))
					if err := gridfile.Save(path, g); err != nil {
						return err
					}
					fmt.Fprintf(out, "Wrote %s.\n", path)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{4, 9, 16}, "grid sizes to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed random seed, for reproducible output")
	return cmd
}
