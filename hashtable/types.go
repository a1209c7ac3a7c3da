package hashtable

import "errors"

var (
	// ErrTableSize indicates a non-positive table size.
	ErrTableSize = errors.New("hashtable: table size must be at least 1")
	// ErrUnknownTechnique indicates a Technique value outside the closed enum.
	ErrUnknownTechnique = errors.New("hashtable: unknown technique")
)

// EmptySlot marks a vacant slot in an open-addressing table.
// Keys are always positive, so the value can never collide with one.
const EmptySlot = -1

// Step records the insertion of a single key, in insertion order.
//
// Exactly one of three shapes applies:
//   - open addressing, placed: Hash, Probes, FinalIndex, Collisions and
//     Formula are set (H2 additionally for double hashing);
//   - chaining: Hash, FinalIndex, ChainLen and Formula are set; Probes
//     stays nil (chaining never probes);
//   - failed: Failed is true and FailReason holds the error marker; the
//     key was not inserted.
type Step struct {
	// Key is the key being inserted.
	Key int
	// Hash is the initial hash h0 = Key mod m.
	Hash int
	// H2 is the secondary hash step size; double hashing only, always ≥ 1.
	H2 int
	// Probes is the ordered sequence of slot indices examined, final
	// slot included. Repeats are kept as-is (quadratic probing may
	// revisit a slot); nothing is deduplicated.
	Probes []int
	// FinalIndex is the slot (or bucket) the key landed in.
	FinalIndex int
	// Collisions counts probes beyond the first, i.e. the probe index
	// at placement.
	Collisions int
	// ChainLen is the bucket length right after insertion; chaining only.
	ChainLen int
	// Formula is the human-readable, partially redacted arithmetic hint.
	Formula string
	// Failed marks a key that found no slot within m attempts.
	Failed bool
	// FailReason is the error marker shown in place of a placement.
	FailReason string
}

// Result is the populated table plus its step-by-step trace.
// It is constructed once by a builder and never mutated afterwards.
type Result struct {
	// Technique identifies which builder produced the result.
	Technique Technique
	// TableSize is the number of slots (or buckets) m.
	TableSize int
	// Keys is the key set in insertion order.
	Keys []int
	// Slots is the final open-addressing table; EmptySlot marks vacancy.
	// Nil for chaining.
	Slots []int
	// Buckets is the final chained table, insertion order preserved per
	// bucket. Nil for open addressing.
	Buckets [][]int
	// Steps holds one Step per key, in insertion order.
	Steps []Step
}
