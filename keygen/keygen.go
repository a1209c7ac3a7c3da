package keygen

import "math/rand"

// maxFillAttempts caps the random padding loop per synthesis call.
// Running out degrades gracefully to a shorter key set; it never errors.
const maxFillAttempts = 1000

// CollisionKeys returns up to numKeys distinct integers in
// [1, maxKeyValue], biased to collide under modulo-tableSize hashing.
// Used for linear probing, double hashing and chaining puzzles.
//
// Algorithm:
//  1. Look up the tier's (count × size) cluster geometry.
//  2. Per cluster, draw base ∈ [0, tableSize-1] and emit candidates
//     base + j·tableSize for j = 0..size-1 — all sharing the same hash
//     by construction. Keep a candidate only if it lies in
//     [1, maxKeyValue] and was not already taken.
//  3. Pad with uniform random keys in [1, maxKeyValue] (1000 attempts
//     total, duplicates burn attempts).
//  4. Shuffle, then truncate to numKeys. Truncating after the shuffle
//     means a forced-collision key may be dropped — accepted trade-off
//     for randomness over guaranteed collision density.
//
// Errors: ErrUnknownDifficulty, ErrTableSize (tableSize < 1),
// ErrKeyRange (maxKeyValue < 1).
//
// Complexity: O(numKeys + attempts) time, O(numKeys) memory.
func CollisionKeys(tableSize, numKeys, maxKeyValue int, d Difficulty, rng *rand.Rand) ([]int, error) {
	geo, ok := collisionClusters[d]
	if !ok {
		return nil, ErrUnknownDifficulty
	}
	if tableSize < 1 {
		return nil, ErrTableSize
	}
	if maxKeyValue < 1 {
		return nil, ErrKeyRange
	}
	r := orDefault(rng)

	keys := make([]int, 0, numKeys)
	used := make(map[int]bool, numKeys)
	for c := 0; c < geo.count; c++ {
		base := r.Intn(tableSize)
		for j := 0; j < geo.size; j++ {
			k := base + j*tableSize
			if k >= 1 && k <= maxKeyValue && !used[k] {
				keys = append(keys, k)
				used[k] = true
			}
		}
	}

	return finishKeySet(keys, used, numKeys, maxKeyValue, r), nil
}

// QuadraticKeys returns up to numKeys distinct integers in
// [1, maxKeyValue], with cluster geometry tuned to stress quadratic
// probing. Same pad/shuffle/truncate behavior as CollisionKeys; the
// differences are the per-tier cluster sizes (see quadraticClusters)
// and the base range [1, tableSize-2], which avoids the table edges
// where the quadratic walk degenerates.
//
// Errors: ErrUnknownDifficulty, ErrTableSize (tableSize < 3),
// ErrKeyRange (maxKeyValue < 1).
//
// Complexity: O(numKeys + attempts) time, O(numKeys) memory.
func QuadraticKeys(tableSize, numKeys, maxKeyValue int, d Difficulty, rng *rand.Rand) ([]int, error) {
	sizes, ok := quadraticClusters[d]
	if !ok {
		return nil, ErrUnknownDifficulty
	}
	if tableSize < 3 {
		return nil, ErrTableSize
	}
	if maxKeyValue < 1 {
		return nil, ErrKeyRange
	}
	r := orDefault(rng)

	keys := make([]int, 0, numKeys)
	used := make(map[int]bool, numKeys)
	for _, size := range sizes {
		base := 1 + r.Intn(tableSize-2)
		for j := 0; j < size; j++ {
			k := base + j*tableSize
			if k >= 1 && k <= maxKeyValue && !used[k] {
				keys = append(keys, k)
				used[k] = true
			}
		}
	}

	return finishKeySet(keys, used, numKeys, maxKeyValue, r), nil
}

// finishKeySet pads keys with uniform randoms up to numKeys (capped at
// maxFillAttempts total draws), shuffles, and truncates to numKeys.
// May return fewer than numKeys keys when attempts run out.
func finishKeySet(keys []int, used map[int]bool, numKeys, maxKeyValue int, rng *rand.Rand) []int {
	for attempts := 0; len(keys) < numKeys && attempts < maxFillAttempts; attempts++ {
		k := 1 + rng.Intn(maxKeyValue)
		if !used[k] {
			keys = append(keys, k)
			used[k] = true
		}
	}

	shuffleIntsInPlace(keys, rng)
	if len(keys) > numKeys {
		keys = keys[:numKeys]
	}

	return keys
}
