// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires URL patterns to handlers.

Uses Go 1.22+ enhanced routing with method and path parameters:

	mux.HandleFunc("POST /prizes/{id}/select", ...)

# Route Groups

  - GET /health, GET /state, GET /wheel/frame: public reads
  - POST/DELETE /candidates: pool management (admin)
  - POST/PUT/DELETE /prizes, POST /prizes/{id}/select: prize management (admin)
  - POST /draw, POST /reset: drawing (admin)
  - POST /free/*: free mode (admin)

Admin routes are wrapped with middleware.RequireAdminKey and require the
X-Admin-Key header; everything goes through middleware.WithLogging.

The mux is wrapped with middleware.CORS in main before serving.
*/
package router
