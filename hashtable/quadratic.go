package hashtable

// BuildQuadraticProbing inserts keys using quadratic probing: probe i
// examines slot (h0 + i²) mod tableSize.
//
// Two properties worth calling out:
//   - the probe sequence keeps repeats — with a composite tableSize the
//     quadratic walk can revisit a slot, and the trace shows exactly
//     what the algorithm examined, not a deduplicated view;
//   - exhaustion can occur even with empty slots remaining, for the
//     same reason. That yields a "No slot found" error step, faithfully
//     reproducing the algorithm rather than patching around it.
//
// Errors: ErrTableSize for tableSize < 1.
//
// Complexity: O(len(keys)·tableSize) time.
func BuildQuadraticProbing(keys []int, tableSize int) (*Result, error) {
	if tableSize < 1 {
		return nil, ErrTableSize
	}
	res := newOpenTable(QuadraticProbing, keys, tableSize)

	for _, key := range keys {
		h0 := key % tableSize
		probes := []int{h0}
		placed := false

		for i := 0; i < tableSize; i++ {
			h := (h0 + i*i) % tableSize
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
				Probes:     probes[:i+1],
				FinalIndex: h,
				Collisions: i,
				Formula:    quadraticFormula(key, tableSize, h0, i),
			})
			placed = true

			break
		}

		if !placed {
			res.Steps = append(res.Steps, Step{Key: key, Failed: true, FailReason: "No slot found (quadratic probing exhausted)"})
		}
	}

	return res, nil
}
