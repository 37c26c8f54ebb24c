// SPDX-License-Identifier: MIT

// Package highdim is the root of the full-column-rank diagnostic: a small
// service that shows, for a randomly generated OLS design matrix X, whether
// XᵀX can be inverted.
//
// Layout:
//
//	matrix/          dense matrices, XᵀX, LU inverse and determinant, SVD bridge
//	design/          seeded integer design-matrix generator and seed sources
//	rank/            numeric rank, condition number and inverse outcome of X
//	report/          warning, summary lines and matrix panels for one report
//	fullrank/        per-session state, events and the render engine
//	session/         session stores (memory, Redis, circuit breaker) and manager
//	server/          HTTP, WebSocket and Prometheus surfaces
//	internal/config/ YAML and environment configuration
//	cmd/highdim/     serve, diagnose and selfcheck commands
//
// Quick look:
//
//	$ highdim diagnose --preset wide
//	⚠️ Warning: X is not full column rank! (XᵀX is singular or nearly singular).
//
//	n (rows of X): 6
//	p (columns of X): 10
//	rank(X): 6
//	...
package highdim
