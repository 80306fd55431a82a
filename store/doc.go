// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the application state and hands out snapshots.

# Model

The whole AppState lives in memory; GetState returns deep copies. Update
applies a mutation to a copy, rewrites the affected tables in a single
transaction, swaps the in-memory state, then notifies subscribers. A
failed write leaves both the database and the in-memory state untouched.

# Tables

  - candidate: the draw pool, in display order
  - prize: award slots (unique titles, positive counts)
  - result: committed winners per prize
  - free_draw: free-mode history
  - setting: selected prize, free-mode flag and pool snapshot

# Drivers

The store runs on modernc.org/sqlite (default, pure Go) or lib/pq,
selected by the config's database type; queries are written with ?
placeholders and rebound for postgres.

# Seeding

On first run the store seeds a default 40-name pool and three default
prizes (Grand/Second/Third), overridable with a YAML seed file:

	names:
	  - Ada
	  - Grace
	prizes:
	  - title: Grand Prize
	    count: 1
*/
package store
