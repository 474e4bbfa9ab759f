// Package randgraph generates deterministic Erdős–Rényi-style random
// graphs for fuzz-testing the search engine's two reference problems and
// for feeding the CLI demo commands.
//
// # What & Why
//
//   - Undirected only: each unordered pair {i, j} with i < j is included
//     independently with probability p.
//   - Deterministic: identical (n, p, seed) always produces the identical
//     edge set, on any platform, via a fixed order of Float64-based
//     Bernoulli trials (i ascending, then j ascending).
//
// # Determinism
//
// Seed 0 is remapped to a fixed non-zero default so that callers who never
// think about seeding still get reproducible graphs rather than an
// accidentally weak RNG state.
package randgraph
