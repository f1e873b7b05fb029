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
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/gridfile"
)

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Split a file of wire-form grids into puzzle files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			grids, err := gridfile.ImportWire(args[0])
			if err != nil {
				return err
			}
			stem := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			for i, g := range grids {
				path := gridfile.RawPath(fmt.Sprintf("%s_%d.txt", stem, i+1))
				if err := gridfile.Save(path, g); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %s (%dx%d, %d empty).\n", path, g.Size(), g.Size(), g.Empty())
			}
			fmt.Fprintf(out, "Imported %d grids from %s.\n", len(grids), args[0])
			return nil
		},
	}
}
