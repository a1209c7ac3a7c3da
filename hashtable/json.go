// Wire shaping for Result and Step.
//
// The JSON layout is the puzzle's external contract: a flat key-or-null
// array (or array of arrays for chaining) under "solution", and step
// documents whose field set depends on the step's shape. Renderers key
// off field presence — an "error" field means the key was never placed —
// so the marshalers emit each shape explicitly instead of leaning on
// omitempty for everything.

package hashtable

import "encoding/json"

// MarshalJSON emits the step in one of its three wire shapes:
// failed (key + error only), chaining (chain_length, no probes), or
// open addressing (probe_sequence + collisions, h2_value when present).
func (s Step) MarshalJSON() ([]byte, error) {
	if s.Failed {
		return json.Marshal(struct {
			Key int    `json:"key"`
			Err string `json:"error"`
		}{s.Key, s.FailReason})
	}

	if s.Probes == nil {
		return json.Marshal(struct {
			Key        int    `json:"key"`
			Hash       int    `json:"initial_hash"`
			FinalIndex int    `json:"final_index"`
			ChainLen   int    `json:"chain_length"`
			Formula    string `json:"formula"`
		}{s.Key, s.Hash, s.FinalIndex, s.ChainLen, s.Formula})
	}

	return json.Marshal(struct {
		Key        int    `json:"key"`
		Hash       int    `json:"initial_hash"`
		H2         int    `json:"h2_value,omitempty"`
		Probes     []int  `json:"probe_sequence"`
		FinalIndex int    `json:"final_index"`
		Collisions int    `json:"collisions"`
		Formula    string `json:"formula"`
	}{s.Key, s.Hash, s.H2, s.Probes, s.FinalIndex, s.Collisions, s.Formula})
}

// MarshalJSON emits the full puzzle document described in the package
// doc: technique metadata, the key set, the solved table and the trace.
// Open-addressing slots serialize as key-or-null; chaining buckets as
// arrays of keys.
func (r *Result) MarshalJSON() ([]byte, error) {
	var solution any
	if r.Technique == Chaining {
		solution = r.Buckets
	} else {
		slots := make([]*int, len(r.Slots))
		for i := range r.Slots {
			if r.Slots[i] != EmptySlot {
				k := r.Slots[i]
				slots[i] = &k
			}
		}
		solution = slots
	}

	keys := r.Keys
	if keys == nil {
		keys = []int{}
	}

	return json.Marshal(struct {
		Technique    string `json:"technique"`
		Label        string `json:"technique_label"`
		TableSize    int    `json:"table_size"`
		Keys         []int  `json:"keys"`
		Solution     any    `json:"solution"`
		Steps        []Step `json:"steps"`
		Description  string `json:"description"`
		FormulaLabel string `json:"formula_label"`
	}{
		Technique:    r.Technique.ID(),
		Label:        r.Technique.Label(),
		TableSize:    r.TableSize,
		Keys:         keys,
		Solution:     solution,
		Steps:        r.Steps,
		Description:  r.Technique.Description(),
		FormulaLabel: r.Technique.FormulaLabel(),
	})
}
