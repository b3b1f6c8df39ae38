// Package strength scores passwords with a five-point heuristic.
package strength

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/passtui/internal/model"
)

// Score computes the 0-5 heuristic score: one point for length >= 12 and
// one point per character class present.
func Score(password string) int {
	score := 0
	if utf8.RuneCountInString(password) >= 12 {
		score++
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(model.SymbolSet, r):
			hasSymbol = true
		}
	}
	for _, present := range []bool{hasLower, hasUpper, hasDigit, hasSymbol} {
		if present {
			score++
		}
	}
	return score
}

// Classify maps a password to its strength label. Total over any input;
// the empty string scores 0 and classifies as Weak.
func Classify(password string) model.Strength {
	switch score := Score(password); {
	case score <= 2:
		return model.Weak
	case score <= 4:
		return model.Medium
	default:
		return model.Strong
	}
}
