package generator

import "errors"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MaxCodes is the number of distinct 3-letter asset codes available:
// permutations of 3 distinct letters from a 26-letter alphabet.
const MaxCodes = 26 * 25 * 24

// ErrCodesExhausted is returned when more codes are requested than the
// permutation space can provide.
var ErrCodesExhausted = errors.New("asset code space exhausted")

// codeSequence hands out 3-letter codes in permutation enumeration order
// (ABC, ABD, ..., ABZ, ACB, ...). Codes never repeat, so any two codes from
// the same sequence are distinct.
type codeSequence struct {
	next int
}

// Next returns the next unused code, or ErrCodesExhausted once all
// MaxCodes permutations have been handed out.
func (s *codeSequence) Next() (string, error) {
	if s.next >= MaxCodes {
		return "", ErrCodesExhausted
	}
	i := s.next
	s.next++

	// Unrank permutation i: pick each letter by index among those remaining.
	first := i / (25 * 24)
	rem := i % (25 * 24)
	second := rem / 24
	third := rem % 24

	letters := []byte(alphabet)
	code := make([]byte, 0, 3)

	code = append(code, letters[first])
	letters = append(letters[:first], letters[first+1:]...)
	code = append(code, letters[second])
	letters = append(letters[:second], letters[second+1:]...)
	code = append(code, letters[third])

	return string(code), nil
}
