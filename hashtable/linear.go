package hashtable

// BuildLinearProbing inserts keys into a table of tableSize slots using
// linear probing and records the trace.
//
// Algorithm, per key k:
//  1. h0 = k mod tableSize.
//  2. Probe h0, h0+1, h0+2, … (mod tableSize), wrapping, for at most
//     tableSize attempts.
//  3. Place k in the first empty slot; record the probe sequence up to
//     and including that slot, and collisions = probe index at placement.
//  4. If every attempt found an occupied slot, emit a "Table full"
//     error step instead; k is silently not inserted and the remaining
//     keys are still processed.
//
// Errors: ErrTableSize for tableSize < 1.
//
// Complexity: O(len(keys)·tableSize) time.
func BuildLinearProbing(keys []int, tableSize int) (*Result, error) {
	if tableSize < 1 {
		return nil, ErrTableSize
	}
	res := newOpenTable(LinearProbing, keys, tableSize)

	for _, key := range keys {
		h0 := key % tableSize
		probes := []int{h0}
		placed := false

		for i := 0; i < tableSize; i++ {
			h := (h0 + i) % tableSize
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
				Probes:     probes,
				FinalIndex: h,
				Collisions: i,
				Formula:    linearFormula(key, tableSize, h0, i),
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
