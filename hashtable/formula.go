// Formula builders: pure functions of already-computed Step fields.
//
// They are deliberately decoupled from table mutation so the redaction
// rules can be tested on their own. The convention across all four
// techniques: arithmetic the learner is expected to solve ends in "= ?";
// values the puzzle hands out for free are printed solved.

package hashtable

import (
	"fmt"
	"strings"
)

// linearFormula redacts the initial hash when the key landed first try,
// and otherwise reveals h0 but leaves the probe walk to the learner.
func linearFormula(key, m, h0, collisions int) string {
	if collisions == 0 {
		return fmt.Sprintf("h(%d) = %d mod %d = ?", key, key, m)
	}

	return fmt.Sprintf("h(%d) = %d mod %d = %d → collision(s), probe i=1..%d", key, key, m, h0, collisions)
}

// quadraticFormula enumerates every probe step p = 0..collisions as its
// own unsolved expression, joined by " | ". A clean first-try placement
// collapses to the single redacted hash expression.
func quadraticFormula(key, m, h0, collisions int) string {
	if collisions == 0 {
		return fmt.Sprintf("h(%d) = %d mod %d = ?", key, key, m)
	}

	exprs := make([]string, 0, collisions+1)
	for p := 0; p <= collisions; p++ {
		exprs = append(exprs, fmt.Sprintf("i=%d: (%d + %d²) mod %d = ?", p, h0, p, m))
	}

	return strings.Join(exprs, " | ")
}

// doubleFormula shows both hash expressions unsolved on a first-try
// placement; once collisions occurred, h1 and h2 are revealed and only
// the final probe expression stays redacted.
func doubleFormula(key, m, h0, h2, collisions int) string {
	if collisions == 0 {
		return fmt.Sprintf("h1(%d) = %d mod %d = ? | h2(%d) = 1 + (%d mod %d) = ?",
			key, key, m, key, key, m-1)
	}

	return fmt.Sprintf("h1(%d) = %d mod %d = %d | h2(%d) = 1 + (%d mod %d) = %d | collision(s) → i=%d: (%d + %d×%d) mod %d = ?",
		key, key, m, h0, key, key, m-1, h2, collisions, h0, collisions, h2, m)
}

// chainFormula is fully solved: chaining has no empty-slot hunt to
// visualize, so withholding the hash would add nothing.
func chainFormula(key, m, h int) string {
	return fmt.Sprintf("%d %% %d = %d", key, m, h)
}
