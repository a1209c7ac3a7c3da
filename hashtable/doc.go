// Package hashtable replays hash-table insertion step by step under the
// four classic collision-resolution strategies, producing a trace that a
// learner can study slot by slot.
//
// # What it builds
//
// Given an ordered key set and a table size m, each builder inserts the
// keys one by one and records, per key:
//
//   - the initial hash h0 = k mod m;
//   - the full probe sequence examined (slot indices, in order, final
//     slot included);
//   - the final slot and the number of collisions (probes beyond the
//     first);
//   - a partially redacted formula string: the arithmetic is spelled
//     out, but the final numeric answer is withheld with "?" so the
//     learner fills in the blank. Chaining is the exception — it has no
//     empty-slot hunt to visualize, so its formula is fully solved.
//
// # Strategies
//
//   - LinearProbing:    h(k,i) = (h0 + i) mod m
//   - QuadraticProbing: h(k,i) = (h0 + i²) mod m
//   - DoubleHashing:    h(k,i) = (h0 + i·h2(k)) mod m, h2(k) = 1 + (k mod (m-1))
//   - Chaining:         append k to bucket h0
//
// Open-addressing builders give up on a key after m probe attempts and
// emit an error step instead of a placement; the remaining keys are
// still processed. Quadratic probing with a composite m is not
// guaranteed to visit every slot, so it can exhaust its attempts while
// empty slots remain — that is a property of the algorithm the trace
// reproduces faithfully, not a defect.
//
// Every builder is deterministic, allocation-bounded, and side-effect
// free: same keys and table size ⇒ identical Result.
//
// Complexity: O(len(keys)·m) time, O(m + Σ probes) memory.
package hashtable
