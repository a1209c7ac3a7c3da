// Package hashviz generates instructional hash-table puzzles: it
// synthesizes small sets of integer keys engineered to collide, then
// replays their insertion step by step under a chosen collision-
// resolution strategy, recording every probe and a partially redacted
// formula so a learner can fill in the blanks.
//
// 🚀 What is hashviz?
//
//	A small, deterministic puzzle engine plus thin delivery glue:
//		• Key synthesis: collision clusters planted by difficulty tier,
//		  padded with random keys and shuffled
//		• Four resolvers: linear probing, quadratic probing,
//		  double hashing, separate chaining
//		• Step traces: initial hash, full probe sequence, final slot,
//		  collision count, redacted arithmetic hint
//		• Delivery: JSON over HTTP (gin) or a one-shot CLI
//
// ✨ Why hashviz?
//
//   - Beginner-friendly – puzzles mirror exactly how textbooks teach
//     collision resolution, blank by blank
//   - Deterministic – every random draw flows through an injected
//     generator; same seed ⇒ same puzzle
//   - Honest algorithms – quadratic probing is allowed to fail with
//     empty slots remaining, because that is what quadratic probing does
//
// The packages compose top-down:
//
//	puzzle/    — assembler: difficulty profiles, technique dispatch
//	keygen/    — collision-biased and quadratic-biased key synthesizers
//	hashtable/ — the four resolvers, step records, formula redaction
//	server/    — gin HTTP layer (GET /api/puzzle)
//	cmd/       — hashvizd: serve & generate subcommands
//
// Quick taste, easy/chaining with table size 7:
//
//	keys [10, 17, 24, 5] → hashes [3, 3, 3, 5]
//	bucket 3: [10, 17, 24]   bucket 5: [5]
//
//	go get github.com/katalvlaran/hashviz
package hashviz
