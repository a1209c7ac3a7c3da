// Package keygen synthesizes small sets of positive integer keys
// engineered to collide under modulo-based hashing.
//
// # Why synthesized keys
//
// A puzzle built from uniformly random keys usually produces a boring
// table: few collisions, nothing to resolve, nothing to learn. keygen
// instead plants "clusters" — groups of keys that share an initial hash
// by construction (k = base + j·m all satisfy k mod m == base) — and
// then pads the set with random non-colliding keys and shuffles, so the
// forced collisions are buried in an innocent-looking key list.
//
// # The two synthesizers
//
//   - CollisionKeys — cluster geometry tuned for linear probing, double
//     hashing and chaining: easy 1×2, medium 2×2, hard 3×3, with the
//     cluster base drawn from [0, m-1].
//   - QuadraticKeys — geometry tuned for quadratic probing, whose probe
//     offsets (1, 4, 9, …) need deeper same-hash pileups to become
//     visible: easy [3], medium [4, 2], hard [4, 3], with the base
//     drawn from [1, m-2] to avoid the degenerate table edges.
//
// # Accepted imprecision
//
// Both synthesizers degrade rather than fail: the random fill gives up
// after 1000 total attempts and returns a shorter key set, and the
// shuffle happens before the final truncation, so a forced-collision
// key can occasionally be dropped in favor of a filler. Both behaviors
// trade guaranteed collision density for natural-looking randomness.
//
// # Determinism
//
// All randomness flows through an injected *rand.Rand; nil selects the
// fixed default stream (seed-0 policy), so same seed ⇒ identical key
// set. No time-based sources are hidden anywhere. math/rand.Rand is not
// goroutine-safe — give each concurrent caller its own generator.
package keygen
