package hashtable

// BuildChaining inserts keys into tableSize buckets, appending each key
// to the end of bucket k mod tableSize. Insertion order is preserved
// per bucket and bucket length is unbounded, so chaining never fails —
// there is no error step for this technique.
//
// The formula string is fully solved (no "?"): with no empty-slot hunt
// to visualize, the redaction would have nothing to teach.
//
// Errors: ErrTableSize for tableSize < 1.
//
// Complexity: O(len(keys)) time, O(tableSize + len(keys)) memory.
func BuildChaining(keys []int, tableSize int) (*Result, error) {
	if tableSize < 1 {
		return nil, ErrTableSize
	}

	buckets := make([][]int, tableSize)
	for i := range buckets {
		buckets[i] = []int{}
	}
	res := &Result{
		Technique: Chaining,
		TableSize: tableSize,
		Keys:      keys,
		Buckets:   buckets,
		Steps:     make([]Step, 0, len(keys)),
	}

	for _, key := range keys {
		h := key % tableSize
		buckets[h] = append(buckets[h], key)
		res.Steps = append(res.Steps, Step{
			Key:        key,
			Hash:       h,
			FinalIndex: h,
			ChainLen:   len(buckets[h]),
			Formula:    chainFormula(key, tableSize, h),
		})
	}

	return res, nil
}
