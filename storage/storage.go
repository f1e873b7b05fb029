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

// Package storage persists the state the web service keeps
// between requests: solver sessions, cached solutions, and the
// library of named puzzles.  Sessions and solutions live in
// Redis; the puzzle library and the solve audit trail live in
// Postgres, with a Redis read-through cache in front of the
// library.
//
// Storage operations don't return errors.  Any failure of the
// underlying stores panics with an error, on the theory that the
// caller's entry point (a request handler, a command) recovers
// and turns the panic into its own failure report.
package storage

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/dbprep"
)

var log = logrus.New()

// Connect prepares the backing stores and opens the package
// connections to them.  It returns the URLs of the cache and the
// database it connected to.
func Connect() (cacheId, databaseId string, err error) {
	// make sure the database is initialized
	if err = dbprep.EnsureAll(); err != nil {
		err = fmt.Errorf("Couldn't initialize storage: %v", err)
		return
	}

	rdInit()
	rdMutex.Lock()
	defer rdMutex.Unlock()
	cacheId, err = rdConnect()
	if err != nil {
		return
	}

	pgInit()
	databaseId, err = pgConnect()
	if err != nil {
		rdClose()
		return
	}

	log.Infof("Connected to cache at %q, database at %q.", cacheId, databaseId)
	return
}

// Close closes the package connections.  Safe to call even if
// Connect failed.
func Close() {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	rdClose()
	pgClose()
}

/*

cache connection

*/

var (
	rdc     redis.Conn // open connection, nil if none
	rdUrl   string     // URL of the cache
	rdMutex sync.Mutex // serializes cache operations
)

// rdInit reads the cache URL from the environment.
func rdInit() {
	if url := os.Getenv("REDIS_URL"); url != "" {
		rdUrl = url
	} else {
		rdUrl = "redis://localhost:6379/0"
	}
}

// rdConnect dials the cache.  Callers must hold rdMutex.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdUrl)
	if err != nil {
		return "", fmt.Errorf("Can't connect to cache at %q: %v", rdUrl, err)
	}
	rdc = conn
	return rdUrl, nil
}

// rdClose closes the cache connection, if any.  Callers must
// hold rdMutex.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute runs the body against the cache with rdMutex held.
// Redis connections can go away without warning, so it pings
// first and reconnects once if the connection is gone.  Problems
// executing the body, including panics, are recovered and then
// panicked to the caller's entry point after the mutex is
// released.
func rdExecute(body func(conn redis.Conn) error) {
	wrapper := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = e
				} else {
					err = fmt.Errorf("Caught panic during cache operation: %v", r)
				}
			}
		}()
		if _, perr := rdc.Do("PING"); perr != nil {
			log.Warnf("Lost cache connection (%v); reconnecting.", perr)
			rdClose()
			if _, cerr := rdConnect(); cerr != nil {
				return cerr
			}
		}
		return body(rdc)
	}
	rdMutex.Lock()
	defer func(err error) {
		rdMutex.Unlock()
		if err != nil {
			panic(err)
		}
	}(wrapper())
}

/*

database connection

*/

var (
	pgc   *pgxpool.Pool // open pool, nil if none
	pgUrl string        // URL of the database
)

// pgInit reads the database URL from the environment.
func pgInit() {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		pgUrl = url
	} else {
		pgUrl = "postgres://localhost/sudoku?sslmode=disable"
	}
}

// pgConnect opens the database pool and verifies it with a ping.
func pgConnect() (string, error) {
	pool, err := pgxpool.New(context.Background(), pgUrl)
	if err != nil {
		return "", fmt.Errorf("Bad database URL %q: %v", pgUrl, err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return "", fmt.Errorf("Can't connect to database at %q: %v", pgUrl, err)
	}
	pgc = pool
	return pgUrl, nil
}

// pgClose closes the database pool, if any.
func pgClose() {
	if pgc != nil {
		pgc.Close()
		pgc = nil
	}
}

// pgExecute runs the body inside a database transaction.  The
// transaction commits if the body returns nil and rolls back
// otherwise.  Problems executing the body, including panics, are
// recovered and then panicked to the caller's entry point after
// the transaction is resolved.
func pgExecute(body func(tx pgx.Tx) error) {
	wrapper := func(tx pgx.Tx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = e
				} else {
					err = fmt.Errorf("Caught panic during database operation: %v", r)
				}
			}
		}()
		return body(tx)
	}
	ctx := context.Background()
	tx, err := pgc.Begin(ctx)
	if err != nil {
		panic(fmt.Errorf("Can't open a database transaction: %v", err))
	}
	defer func(err error) {
		if err != nil {
			tx.Rollback(ctx)
			panic(err)
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			panic(fmt.Errorf("Can't commit database transaction: %v", cerr))
		}
	}(wrapper(tx))
}
