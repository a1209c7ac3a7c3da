package puzzle

import (
	"math/rand"

	"github.com/katalvlaran/hashviz/hashtable"
	"github.com/katalvlaran/hashviz/keygen"
)

// Generate is the canonical entry point: it parses the wire identifiers
// and assembles one puzzle.
//
// Contracts:
//   - technique: one of linear_probing / quadratic_probing /
//     double_hashing / chaining; anything else falls back to linear
//     probing (documented default, not an error);
//   - difficulty: easy / medium / hard; anything else fails with
//     keygen.ErrUnknownDifficulty;
//   - rng: nil selects the deterministic default stream. Same rng state
//     and inputs ⇒ identical result.
//
// Complexity: O(NumKeys·TableSize) time.
func Generate(technique, difficulty string, rng *rand.Rand) (*hashtable.Result, error) {
	d, err := keygen.ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}

	return GenerateFor(hashtable.ParseTechnique(technique), d, rng)
}

// GenerateFor assembles a puzzle from already-validated parameters:
// look up the tier profile, pick the synthesizer variant (the
// quadratic-biased one iff t == QuadraticProbing), and replay the
// insertions under t.
func GenerateFor(t hashtable.Technique, d keygen.Difficulty, rng *rand.Rand) (*hashtable.Result, error) {
	prof, err := ProfileFor(d)
	if err != nil {
		return nil, err
	}

	var keys []int
	if t == hashtable.QuadraticProbing {
		keys, err = keygen.QuadraticKeys(prof.TableSize, prof.NumKeys, prof.MaxKeyValue, d, rng)
	} else {
		keys, err = keygen.CollisionKeys(prof.TableSize, prof.NumKeys, prof.MaxKeyValue, d, rng)
	}
	if err != nil {
		return nil, err
	}

	return hashtable.Build(t, keys, prof.TableSize)
}
