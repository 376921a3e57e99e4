// Package identity derives stable pseudonymous account identifiers.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// AccountID maps a 1-based account index to its pseudonymous identifier:
// the lowercase hex SHA-256 digest of the index's decimal string form
// (index 1 hashes the bytes "1").
//
// This is an obfuscation, not authentication: there is no key, and the
// mapping is trivially reversible by hashing candidate indices. Downstream
// consumers must not treat it as a security boundary.
func AccountID(index uint64) string {
	sum := sha256.Sum256([]byte(strconv.FormatUint(index, 10)))
	return hex.EncodeToString(sum[:])
}
