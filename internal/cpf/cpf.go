// Package cpf normalizes and validates Brazilian individual taxpayer numbers (CPF).
//
// A CPF has eleven digits; the last two are check digits computed from the
// preceding ones with a descending weighted sum modulo 11. Every function in
// this package is pure and safe for concurrent use.
package cpf

import (
	"errors"
	"strings"
)

// Length is the number of digits of a normalized CPF.
const Length = 11

// ErrInvalid is returned for any CPF that fails validation. Wrong length,
// repeated digits and checksum mismatches are not distinguished.
var ErrInvalid = errors.New("invalid CPF")

// Normalize keeps only the ASCII digits of raw, in their original order.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// IsValid reports whether s, once normalized, is a valid CPF.
func IsValid(s string) bool {
	digits, ok := toDigits(Normalize(s))
	if !ok {
		return false
	}

	if repeated(digits) {
		return false
	}

	return digits[9] == checkDigit(digits[:9]) && digits[10] == checkDigit(digits[:10])
}

// Validate normalizes raw and returns the digit-only CPF when it is valid.
func Validate(raw string) (string, error) {
	normalized := Normalize(raw)
	if !IsValid(normalized) {
		return "", ErrInvalid
	}
	return normalized, nil
}

// Format renders an 11-digit CPF as 000.000.000-00. Other inputs are returned unchanged.
func Format(s string) string {
	if _, ok := toDigits(s); !ok {
		return s
	}
	return s[0:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:11]
}

// toDigits converts an 11-character digit string to its numeric digits.
func toDigits(s string) ([]int, bool) {
	if len(s) != Length {
		return nil, false
	}

	digits := make([]int, Length)
	for i := 0; i < Length; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		digits[i] = int(c - '0')
	}
	return digits, true
}

// repeated reports whether every digit equals the first one.
func repeated(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// checkDigit computes the check digit that follows the given digits.
// Weights descend from len(digits)+1 down to 2.
func checkDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, d := range digits {
		sum += d * weight
		weight--
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}
