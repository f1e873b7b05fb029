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

// Package dbprep makes the backing stores ready for the service:
// it migrates the database schema, loads the sample puzzle
// library, and can flush the cache.  Every operation is
// idempotent, so deployments just call EnsureAll at startup.
package dbprep

import (
	"fmt"
)

// EnsureAll makes the database ready: schema current, sample
// library loaded.
func EnsureAll() error {
	if err := EnsureSchema(); err != nil {
		return fmt.Errorf("Couldn't install schema: %v", err)
	}
	if err := EnsureData(); err != nil {
		return fmt.Errorf("Couldn't load data: %v", err)
	}
	return nil
}

// ClearAll empties the cache and tears the database down to
// nothing.  A database with no schema has no data to remove.
func ClearAll() error {
	if err := ClearCache(); err != nil {
		return fmt.Errorf("Couldn't clear cache: %v", err)
	}
	version, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("Couldn't read schema version: %v", err)
	}
	if version == 0 {
		return nil
	}
	if err := RemoveData(); err != nil {
		return fmt.Errorf("Couldn't remove data: %v", err)
	}
	if err := RemoveSchema(); err != nil {
		return fmt.Errorf("Couldn't remove schema: %v", err)
	}
	return nil
}

// ReinitializeAll takes the stores back to a fresh install:
// empty cache, current schema, sample library only.
func ReinitializeAll() error {
	if err := ClearAll(); err != nil {
		return err
	}
	if err := EnsureAll(); err != nil {
		return err
	}
	return nil
}
