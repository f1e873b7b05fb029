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

// Make the storage system ready for the service.  Idempotent, so
// release phases can run it on every deployment.
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/dbprep"
)

var log = logrus.New()

func main() {
	log.Printf("Preparing data storage and cache...")
	if err := prepareStorage(); err != nil {
		log.Fatalf("Couldn't prepare storage: %v", err)
	}
	log.Printf("Database ready.")
}

func prepareStorage() error {
	if err := dbprep.EnsureAll(); err != nil {
		return err
	}
	version, err := dbprep.SchemaVersion()
	if err != nil {
		return fmt.Errorf("Couldn't read the prepared schema version: %v", err)
	}
	if version == 0 {
		return fmt.Errorf("Schema still at version 0 after preparation")
	}
	return nil
}
