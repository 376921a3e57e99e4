// Package model defines the fixture dataset types and their JSON encoding.
//
// Conventions:
//   - Prices and balances: plain integers, units unspecified (fixture data)
//   - Timestamps: int64 milliseconds since Unix epoch
//   - Account IDs: 64-char lowercase hex SHA-256 strings
//
// All types are value-like and immutable once constructed; a dataset is
// built once per run and never mutated afterwards.
package model
