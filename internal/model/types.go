// Package model defines shared data structures.
package model

// SymbolSet is the fixed symbol class used for generation and scoring.
const SymbolSet = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// TimestampLayout is the timestamp format stored in history entries.
const TimestampLayout = "2006-01-02 15:04:05"

// Strength labels a password's heuristic strength.
type Strength string

// Strength labels, ordered weakest to strongest.
const (
	Weak   Strength = "Weak"
	Medium Strength = "Medium"
	Strong Strength = "Strong"
)

// Options selects the character classes and length for generation.
type Options struct {
	Length  int
	Upper   bool
	Lower   bool
	Digits  bool
	Symbols bool
}

// Entry is one generated password in the history. Immutable once created.
type Entry struct {
	Password  string   `json:"password"`
	Timestamp string   `json:"timestamp"`
	Strength  Strength `json:"strength"`
}
