package puzzle_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashviz/hashtable"
	"github.com/katalvlaran/hashviz/keygen"
	"github.com/katalvlaran/hashviz/puzzle"
)

// TestGenerate_Profiles: each tier yields its fixed table size and a
// key set within the tier's bounds.
func TestGenerate_Profiles(t *testing.T) {
	cases := []struct {
		difficulty          string
		tableSize, num, max int
	}{
		{"easy", 7, 4, 99},
		{"medium", 11, 7, 199},
		{"hard", 13, 9, 299},
	}
	for _, tc := range cases {
		res, err := puzzle.Generate("linear_probing", tc.difficulty, keygen.NewRand(7))
		require.NoError(t, err)
		assert.Equal(t, tc.tableSize, res.TableSize)
		assert.LessOrEqual(t, len(res.Keys), tc.num)
		for _, k := range res.Keys {
			assert.GreaterOrEqual(t, k, 1)
			assert.LessOrEqual(t, k, tc.max)
		}
		assert.Len(t, res.Steps, len(res.Keys), "one step per key")
	}
}

// TestGenerate_UnknownDifficulty is the only hard failure of the core:
// no default tier, a clear configuration error instead.
func TestGenerate_UnknownDifficulty(t *testing.T) {
	_, err := puzzle.Generate("linear_probing", "impossible", nil)
	assert.ErrorIs(t, err, keygen.ErrUnknownDifficulty)
}

// TestGenerate_UnknownTechniqueFallsBack: unrecognized techniques are
// not an error — they select linear probing, as the default-parameter
// path of HTTP callers expects.
func TestGenerate_UnknownTechniqueFallsBack(t *testing.T) {
	res, err := puzzle.Generate("robin_hood", "easy", keygen.NewRand(3))
	require.NoError(t, err)
	assert.Equal(t, hashtable.LinearProbing, res.Technique)
}

// TestGenerate_Determinism: identical inputs and seed produce an
// identical serialized puzzle, for every technique.
func TestGenerate_Determinism(t *testing.T) {
	for _, technique := range []string{
		"linear_probing", "quadratic_probing", "double_hashing", "chaining",
	} {
		a, err := puzzle.Generate(technique, "medium", keygen.NewRand(99))
		require.NoError(t, err)
		b, err := puzzle.Generate(technique, "medium", keygen.NewRand(99))
		require.NoError(t, err)

		rawA, err := json.Marshal(a)
		require.NoError(t, err)
		rawB, err := json.Marshal(b)
		require.NoError(t, err)
		assert.JSONEq(t, string(rawA), string(rawB), technique)
	}
}

// TestGenerate_ReplayAllTechniques re-simulates every open-addressing
// trace across tiers and seeds: probed slots were occupied at probe
// time, final slots hold their keys, failed keys never appear.
func TestGenerate_ReplayAllTechniques(t *testing.T) {
	techniques := []string{"linear_probing", "quadratic_probing", "double_hashing"}
	for _, technique := range techniques {
		for _, difficulty := range []string{"easy", "medium", "hard"} {
			for seed := int64(1); seed <= 10; seed++ {
				res, err := puzzle.Generate(technique, difficulty, keygen.NewRand(seed))
				require.NoError(t, err)
				replayTrace(t, res)
			}
		}
	}
}

// replayTrace verifies the open-addressing trace invariants against a
// fresh simulated table.
func replayTrace(t *testing.T, res *hashtable.Result) {
	t.Helper()
	sim := make([]int, res.TableSize)
	for i := range sim {
		sim[i] = hashtable.EmptySlot
	}
	for _, s := range res.Steps {
		if s.Failed {
			assert.NotContains(t, res.Slots, s.Key)

			continue
		}
		require.NotEmpty(t, s.Probes)
		assert.Equal(t, s.Key%res.TableSize, s.Hash)
		assert.Equal(t, s.FinalIndex, s.Probes[len(s.Probes)-1])
		assert.Equal(t, len(s.Probes)-1, s.Collisions)
		for _, idx := range s.Probes[:len(s.Probes)-1] {
			assert.NotEqual(t, hashtable.EmptySlot, sim[idx])
		}
		require.Equal(t, hashtable.EmptySlot, sim[s.FinalIndex])
		sim[s.FinalIndex] = s.Key
	}
	assert.Equal(t, res.Slots, sim)
}

// TestGenerate_ChainingConservation: bucket lengths sum to the number
// of generated keys and every bucket preserves insertion order.
func TestGenerate_ChainingConservation(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		res, err := puzzle.Generate("chaining", "hard", keygen.NewRand(seed))
		require.NoError(t, err)

		total := 0
		for _, b := range res.Buckets {
			total += len(b)
		}
		assert.Equal(t, len(res.Keys), total)

		// Steps visit buckets in key order; replaying the appends must
		// reproduce the published buckets exactly.
		sim := make([][]int, res.TableSize)
		for i := range sim {
			sim[i] = []int{}
		}
		for _, s := range res.Steps {
			sim[s.FinalIndex] = append(sim[s.FinalIndex], s.Key)
		}
		assert.Equal(t, res.Buckets, sim)
	}
}

// TestGenerate_QuadraticUsesBiasedSynthesizer: the easy quadratic tier
// always plants a 3-deep cluster (base + 0·7, +1·7, +2·7 all fit under
// the 99 cap), so the generated keys must contain one.
func TestGenerate_QuadraticUsesBiasedSynthesizer(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		res, err := puzzle.Generate("quadratic_probing", "easy", keygen.NewRand(seed))
		require.NoError(t, err)

		byHash := make(map[int]int)
		deepest := 0
		for _, k := range res.Keys {
			byHash[k%7]++
			if byHash[k%7] > deepest {
				deepest = byHash[k%7]
			}
		}
		assert.GreaterOrEqual(t, deepest, 3, "seed %d: keys %v", seed, res.Keys)
	}
}

// TestProfileFor_UnknownTier keeps the profile lookup strict even when
// bypassing ParseDifficulty.
func TestProfileFor_UnknownTier(t *testing.T) {
	_, err := puzzle.ProfileFor(keygen.Difficulty("brutal"))
	assert.ErrorIs(t, err, keygen.ErrUnknownDifficulty)

	p, err := puzzle.ProfileFor(keygen.Medium)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Profile{TableSize: 11, NumKeys: 7, MaxKeyValue: 199}, p)
}
