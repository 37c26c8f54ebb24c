// SPDX-License-Identifier: MIT

// Package server exposes the full-column-rank diagnostic over HTTP.
//
// Routes:
//
//	GET  /                      HTML page for the caller's session
//	POST /fullrank/preset       form: preset=<key>       (303 → /)
//	POST /fullrank/shape        form: n=<int>&p=<int>    (303 → /)
//	POST /fullrank/regenerate   form: (empty)            (303 → /)
//	GET  /api/fullrank          JSON state + view
//	POST /api/fullrank/events   JSON event → JSON state + view
//	GET  /ws                    WebSocket: one frame per inbound event
//	GET  /health                JSON health report
//	GET  /metrics               Prometheus exposition
//
// Sessions are identified by a cookie holding a UUID; a request without a
// valid cookie is assigned a new session.
package server
