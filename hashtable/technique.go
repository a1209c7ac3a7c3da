package hashtable

// Technique selects one of the four collision-resolution strategies.
// The set is closed and exhaustive; builders dispatch over it once.
type Technique int

const (
	// LinearProbing probes consecutive slots: h(k,i) = (h(k) + i) mod m.
	LinearProbing Technique = iota
	// QuadraticProbing probes with square offsets: h(k,i) = (h(k) + i²) mod m.
	QuadraticProbing
	// DoubleHashing steps by a second hash: h(k,i) = (h(k) + i·h2(k)) mod m.
	DoubleHashing
	// Chaining appends colliding keys to a per-slot list.
	Chaining
)

// techniqueIDs maps wire identifiers to Technique values; see ParseTechnique.
var techniqueIDs = map[string]Technique{
	"linear_probing":    LinearProbing,
	"quadratic_probing": QuadraticProbing,
	"double_hashing":    DoubleHashing,
	"chaining":          Chaining,
}

// ParseTechnique maps a wire identifier to its Technique.
// Unrecognized input falls back to LinearProbing — silently, by
// contract: the default-parameter path of callers relies on it, so the
// fallback is not an error.
func ParseTechnique(s string) Technique {
	if t, ok := techniqueIDs[s]; ok {
		return t
	}

	return LinearProbing
}

// ID returns the stable wire identifier, e.g. "linear_probing".
func (t Technique) ID() string {
	switch t {
	case QuadraticProbing:
		return "quadratic_probing"
	case DoubleHashing:
		return "double_hashing"
	case Chaining:
		return "chaining"
	default:
		return "linear_probing"
	}
}

// String implements fmt.Stringer; identical to ID.
func (t Technique) String() string { return t.ID() }

// Label returns the human-readable display name.
func (t Technique) Label() string {
	switch t {
	case QuadraticProbing:
		return "Quadratic Probing"
	case DoubleHashing:
		return "Double Hashing"
	case Chaining:
		return "Separate Chaining"
	default:
		return "Linear Probing"
	}
}

// Description returns the one-sentence strategy summary shown to learners.
func (t Technique) Description() string {
	switch t {
	case QuadraticProbing:
		return "On collision, probe with quadratic increments: h(k, i) = (h(k) + i²) mod m"
	case DoubleHashing:
		return "On collision, use second hash function: h(k,i) = (h1(k) + i·h2(k)) mod m"
	case Chaining:
		return "Each slot holds a linked list. Colliding keys are chained together."
	default:
		return "On collision, probe next slot: h(k, i) = (h(k) + i) mod m"
	}
}

// FormulaLabel returns the generic probe formula displayed alongside a puzzle.
func (t Technique) FormulaLabel() string {
	switch t {
	case QuadraticProbing:
		return "h(k, i) = (k mod m + i²) mod m"
	case DoubleHashing:
		return "h(k,i) = (k mod m + i·(1 + k mod (m-1))) mod m"
	case Chaining:
		return "h(k) = k mod m → append to chain at index"
	default:
		return "h(k, i) = (k mod m + i) mod m"
	}
}
