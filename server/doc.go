// Package server is the thin HTTP glue over the puzzle engine.
//
// It exposes three routes on a gin engine:
//
//	GET /            — a small static index page describing the API
//	GET /healthz     — liveness probe
//	GET /api/puzzle  — generate one puzzle
//
// /api/puzzle accepts three query parameters, all optional:
//
//	technique  — linear_probing (default) | quadratic_probing |
//	             double_hashing | chaining; unrecognized values fall
//	             back to linear probing, matching the engine's contract
//	difficulty — easy (default) | medium | hard; anything else is a 400
//	seed       — int64 RNG seed for reproducible puzzles; 0 or absent
//	             draws a fresh time-based seed
//
// The engine itself is stateless; the only per-request state is a
// dedicated *rand.Rand, created per call because math/rand.Rand is not
// safe for concurrent use.
package server
