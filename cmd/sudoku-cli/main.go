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

// Command-line client for the puzzle tools: solving, generation,
// batch import, and an interactive shell.
package main

import (
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

const gridsDirectoryEnvVar = "GRIDS_DIRECTORY"

func newRootCommand() *cobra.Command {
	var (
		profileRun  bool
		dataDir     string
		stopProfile interface{ Stop() }
	)

	root := &cobra.Command{
		Use:          "sudoku-cli",
		Short:        "Sudoku solving and generation tools",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if dataDir != "" {
				os.Setenv(gridsDirectoryEnvVar, dataDir)
			}
			if profileRun {
				stopProfile = profile.Start(profile.ProfilePath("."))
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if stopProfile != nil {
				stopProfile.Stop()
			}
		},
	}
	root.PersistentFlags().BoolVar(&profileRun, "profile", false,
		"write a CPU profile beside the binary")
	root.PersistentFlags().StringVar(&dataDir, "data", "",
		"grids directory (default \"data\", or "+gridsDirectoryEnvVar+")")

	root.AddCommand(
		newSolveCommand(),
		newGenerateCommand(),
		newBatchCommand(),
		newImportCommand(),
		newShowCommand(),
		newPlayCommand(),
	)
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
