// Package generator assembles character sets and samples passwords.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/verte-zerg/passtui/internal/model"
)

const (
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars = "0123456789"
)

// Generation errors reported for invalid options.
var (
	ErrNoCharClasses = errors.New("no character classes selected")
	ErrInvalidLength = errors.New("length must be at least 1")
)

// Charset concatenates the selected character classes in a fixed order:
// uppercase, lowercase, digits, symbols.
func Charset(opts model.Options) (string, error) {
	charset := ""
	if opts.Upper {
		charset += upperChars
	}
	if opts.Lower {
		charset += lowerChars
	}
	if opts.Digits {
		charset += digitChars
	}
	if opts.Symbols {
		charset += model.SymbolSet
	}
	if charset == "" {
		return "", ErrNoCharClasses
	}
	return charset, nil
}

// Generator samples passwords from a randomness source.
type Generator struct {
	rnd io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{rnd: rand.Reader}
}

// NewWithSource returns a Generator reading randomness from r.
func NewWithSource(r io.Reader) *Generator {
	return &Generator{rnd: r}
}

// Generate draws opts.Length characters uniformly with replacement from
// the character set implied by opts.
func (g *Generator) Generate(opts model.Options) (string, error) {
	if opts.Length < 1 {
		return "", ErrInvalidLength
	}
	charset, err := Charset(opts)
	if err != nil {
		return "", err
	}
	size := big.NewInt(int64(len(charset)))
	password := make([]byte, opts.Length)
	for i := range password {
		idx, err := rand.Int(g.rnd, size)
		if err != nil {
			return "", fmt.Errorf("failed to read randomness source: %w", err)
		}
		password[i] = charset[idx.Int64()]
	}
	return string(password), nil
}
