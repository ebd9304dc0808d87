package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Prefixes for different entity types (Stripe-style)
const (
	PrefixProject       = "prj"
	PrefixIssue         = "iss"
	PrefixChecklistItem = "itm"
	PrefixUser          = "usr"
)

// Generate creates a random short ID with the specified length using Base62
// encoding. The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
func MustGenerate(length int) string {
	s, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return s
}

// GenerateWithPrefix creates a prefixed short ID, e.g. "itm_4xKz09TbQm1a".
func GenerateWithPrefix(prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("prefix cannot be empty")
	}
	s, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}

// MustGenerateWithPrefix creates a prefixed short ID and panics on error.
func MustGenerateWithPrefix(prefix string) string {
	s, err := GenerateWithPrefix(prefix)
	if err != nil {
		panic(err)
	}
	return s
}

// ValidatePrefix checks that sid has the expected prefix and a well-formed
// Base62 suffix. It distinguishes a malformed identifier from a missing one.
func ValidatePrefix(sid, prefix string) error {
	if sid == "" {
		return fmt.Errorf("id is empty")
	}

	want := prefix + "_"
	if !strings.HasPrefix(sid, want) {
		return fmt.Errorf("id %q does not have prefix %q", sid, prefix)
	}

	suffix := sid[len(want):]
	if len(suffix) == 0 {
		return fmt.Errorf("id %q has empty suffix", sid)
	}

	for _, c := range suffix {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("id %q contains invalid character %q", sid, c)
		}
	}

	return nil
}
