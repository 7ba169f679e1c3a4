// Package builder generates deterministic road networks for tests,
// benchmarks and the `roadmap generate` command.
//
// Design contract:
//   - One entry point: RandomRoads(n, m, opts...).
//   - Functional options resolve into an immutable builderConfig (no globals).
//   - Determinism: same n, m and options (including seed) ⇒ identical roads.
//   - Safety: never panics at runtime; invalid parameters return sentinel
//     errors wrapped with context via %w.
//
// Topology:
//
//	A chain L0-L1-…-L(n-1) guarantees connectivity, then m-(n-1) extra roads
//	join random distinct location pairs. Road IDs are 1..m in emission order.
package builder
