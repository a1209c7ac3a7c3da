package puzzle

import "github.com/katalvlaran/hashviz/keygen"

// Profile bundles the table geometry for one difficulty tier.
// NumKeys ≤ TableSize is expected by the builders but not enforced
// here; the shipped profiles all satisfy it.
type Profile struct {
	// TableSize is the slot/bucket count m. All shipped values are prime.
	TableSize int
	// NumKeys is how many keys the synthesizer aims for.
	NumKeys int
	// MaxKeyValue bounds every synthesized key: keys lie in [1, MaxKeyValue].
	MaxKeyValue int
}

// profiles is the fixed difficulty → geometry mapping.
var profiles = map[keygen.Difficulty]Profile{
	keygen.Easy:   {TableSize: 7, NumKeys: 4, MaxKeyValue: 99},
	keygen.Medium: {TableSize: 11, NumKeys: 7, MaxKeyValue: 199},
	keygen.Hard:   {TableSize: 13, NumKeys: 9, MaxKeyValue: 299},
}

// ProfileFor returns the geometry for d, or keygen.ErrUnknownDifficulty
// for a tier outside the fixed mapping.
func ProfileFor(d keygen.Difficulty) (Profile, error) {
	p, ok := profiles[d]
	if !ok {
		return Profile{}, keygen.ErrUnknownDifficulty
	}

	return p, nil
}
