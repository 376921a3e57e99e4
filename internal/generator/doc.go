// Package generator synthesizes fixture datasets.
//
// Generation is a single linear pass:
//   - asset definitions, with codes drawn from consecutive 3-letter
//     permutations of the alphabet (collision-free up to 15,600 assets)
//   - per-account balances, one per asset for every account (dense matrix)
//
// All randomness flows through an injected *rand.Rand, so a fixed seed
// reproduces the same dataset. No generated value is validated against real
// ledger invariants; balances may be negative.
package generator
