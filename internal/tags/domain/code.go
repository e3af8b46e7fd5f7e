package domain

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

// Alphabet leaves out 0, O, 1 and I so printed codes survive being read
// aloud or typed from a sticker.
const Alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const (
	CodeLength = 8
	groupSize  = 4
	separator  = '-'
)

// Code is the canonical XXXX-XXXX form of a printed tag code.
type Code string

func (c Code) String() string {
	return string(c)
}

// GenerateCode draws a random code. The alphabet has 32 symbols so masking a
// byte keeps the distribution uniform.
func GenerateCode(random io.Reader) (Code, error) {
	if random == nil {
		random = rand.Reader
	}

	buf := make([]byte, CodeLength)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}

	raw := make([]byte, CodeLength)
	for i, b := range buf {
		raw[i] = Alphabet[int(b)&(len(Alphabet)-1)]
	}

	return format(string(raw)), nil
}

// ParseCode accepts a code in any case, with or without separators and
// surrounding spaces, and returns its canonical form.
func ParseCode(value string) (Code, error) {
	var b strings.Builder
	for _, r := range strings.ToUpper(value) {
		switch r {
		case separator, ' ', '\t':
			continue
		}
		if !strings.ContainsRune(Alphabet, r) {
			return "", fmt.Errorf("%w: unexpected character %q", ErrInvalidCode, r)
		}
		b.WriteRune(r)
	}

	raw := b.String()
	if len(raw) != CodeLength {
		return "", fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidCode, CodeLength, len(raw))
	}

	return format(raw), nil
}

func format(raw string) Code {
	return Code(raw[:groupSize] + "-" + raw[groupSize:])
}
