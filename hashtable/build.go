package hashtable

// Build routes keys to the builder for t.
//
// Contracts:
//   - tableSize ≥ 1, otherwise ErrTableSize;
//   - keys may be empty (the trace is simply empty);
//   - t must be one of the four declared Technique values, otherwise
//     ErrUnknownTechnique.
//
// Complexity: O(len(keys)·tableSize) time, O(tableSize + Σ probes) memory.
func Build(t Technique, keys []int, tableSize int) (*Result, error) {
	switch t {
	case LinearProbing:
		return BuildLinearProbing(keys, tableSize)
	case QuadraticProbing:
		return BuildQuadraticProbing(keys, tableSize)
	case DoubleHashing:
		return BuildDoubleHashing(keys, tableSize)
	case Chaining:
		return BuildChaining(keys, tableSize)
	default:
		return nil, ErrUnknownTechnique
	}
}

// newOpenTable allocates a Result skeleton for an open-addressing
// builder: every slot vacant, step slice pre-sized to len(keys).
func newOpenTable(t Technique, keys []int, tableSize int) *Result {
	slots := make([]int, tableSize)
	for i := range slots {
		slots[i] = EmptySlot
	}

	return &Result{
		Technique: t,
		TableSize: tableSize,
		Keys:      keys,
		Slots:     slots,
		Steps:     make([]Step, 0, len(keys)),
	}
}
