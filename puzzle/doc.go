// Package puzzle assembles complete hash-collision puzzles: it maps a
// difficulty tier to table geometry, synthesizes a collision-biased key
// set, replays the insertions under the requested technique, and
// returns one self-contained result record.
//
// # Pipeline
//
//	Generate → keygen (synthesize keys) → hashtable (build table + trace)
//
// Per difficulty tier the table sizes are prime (7, 11, 13), which
// keeps double hashing well-behaved and gives quadratic probing a
// fighting chance of visiting most slots.
//
// Technique selection is forgiving — an unrecognized technique string
// falls back to linear probing, matching the default-parameter path of
// HTTP callers. Difficulty selection is strict: an unknown tier returns
// keygen.ErrUnknownDifficulty, the only hard failure in the whole
// pipeline.
//
// Each call is independent and stateless; the only shared concern is
// the injected *rand.Rand (nil ⇒ deterministic default stream), which
// must not be shared across goroutines.
package puzzle
