package keygen

import "errors"

var (
	// ErrUnknownDifficulty indicates a difficulty outside easy/medium/hard.
	// There is deliberately no default tier: an unrecognized difficulty
	// is a caller configuration mistake, not a preference to guess at.
	ErrUnknownDifficulty = errors.New("keygen: unknown difficulty")
	// ErrTableSize indicates a table size too small for cluster synthesis.
	ErrTableSize = errors.New("keygen: table size too small for key synthesis")
	// ErrKeyRange indicates a non-positive maximum key value.
	ErrKeyRange = errors.New("keygen: max key value must be at least 1")
)

// Difficulty names a forced-collision intensity tier.
type Difficulty string

const (
	// Easy plants a single small collision cluster.
	Easy Difficulty = "easy"
	// Medium plants two clusters.
	Medium Difficulty = "medium"
	// Hard plants three larger clusters.
	Hard Difficulty = "hard"
)

// ParseDifficulty validates a wire identifier. Unlike technique parsing,
// an unknown difficulty is a hard error (ErrUnknownDifficulty) — the
// tier drives table geometry, so there is nothing sensible to fall
// back to.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", ErrUnknownDifficulty
	}
}

// collisionClusters gives the (count × size) cluster geometry used by
// CollisionKeys per tier.
var collisionClusters = map[Difficulty]struct{ count, size int }{
	Easy:   {count: 1, size: 2},
	Medium: {count: 2, size: 2},
	Hard:   {count: 3, size: 3},
}

// quadraticClusters gives the per-cluster sizes used by QuadraticKeys.
// Deeper clusters force probes out to i=2..3, where the quadratic
// offsets stop looking linear.
var quadraticClusters = map[Difficulty][]int{
	Easy:   {3},
	Medium: {4, 2},
	Hard:   {4, 3},
}
