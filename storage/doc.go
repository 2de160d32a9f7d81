// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage implements the backend adapters and the selection/fallback
controller around them.

# Adapters

Four adapters implement the same insert/count/list contract:

  - Supabase: hosted database over the Supabase REST client
  - Sheets: append-only rows in a Google Sheet, reads served from an
    in-process mirror
  - Relational: pooled database/sql against postgres (lib/pq) or sqlite
    (modernc), selected by DATABASE_TYPE
  - Memory: a mutex-guarded, process-lifetime slice

All adapter failures cross the boundary as *StorageError values.

# Selection

Select runs once at startup. The configured backend is attempted only when
its credentials are present; construction failure logs and degrades to
memory. The decision is immutable for the process lifetime.

# Fallback

Controller.Insert retries a failed write once through the memory store and
reports the backend that actually wrote the record. Count and List treat
adapter failure as soft: they log and serve the memory view instead of
propagating an error. The system prefers accept-and-store-somewhere over
strict durability; a write that landed in memory is lost on restart.
*/
package storage
