// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema for the relational storage backend.

One table holds everything:

  - submissions: id, name, email, answer, timestamp

CreateSchema picks the postgres or sqlite dialect by driver name and is
safe to call repeatedly (IF NOT EXISTS).
*/
package db
