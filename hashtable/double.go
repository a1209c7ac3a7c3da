package hashtable

// secondHash computes the step size h2(k) = 1 + (k mod (m-1)).
// The +1 keeps it in [1, m-1], so the probe walk can never stall.
func secondHash(key, tableSize int) int {
	return 1 + key%(tableSize-1)
}

// BuildDoubleHashing inserts keys using double hashing: probe i examines
// slot (h0 + i·h2(k)) mod tableSize, with h2(k) = 1 + (k mod (m-1)).
//
// Each placed step additionally carries the h2 value, since the learner
// needs it to reproduce the walk. Exhaustion after tableSize attempts
// yields a "Table full" error step.
//
// Errors: ErrTableSize for tableSize < 2 — a one-slot table has no
// m-1 modulus for the second hash.
//
// Complexity: O(len(keys)·tableSize) time.
func BuildDoubleHashing(keys []int, tableSize int) (*Result, error) {
	if tableSize < 2 {
		return nil, ErrTableSize
	}
	res := newOpenTable(DoubleHashing, keys, tableSize)

	for _, key := range keys {
		h0 := key % tableSize
		h2 := secondHash(key, tableSize)
		probes := []int{h0}
		placed := false

		for i := 0; i < tableSize; i++ {
			h := (h0 + i*h2) % tableSize
			if i > 0 {
				probes = append(probes, h)
			}
			if res.Slots[h] != EmptySlot {
				continue
			}
			res.Slots[h] = key
			res.Steps = append(res.Steps, Step{
				Key:        key,
				Hash:       h0,
				H2:         h2,
				Probes:     probes[:i+1],
				FinalIndex: h,
				Collisions: i,
				Formula:    doubleFormula(key, tableSize, h0, h2, i),
			})
			placed = true

			break
		}

		if !placed {
			res.Steps = append(res.Steps, Step{Key: key, Failed: true, FailReason: "Table full"})
		}
	}

	return res, nil
}
