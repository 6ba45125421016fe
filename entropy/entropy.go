package entropy

import (
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go"
)

const (
	lowerPool  = 26
	upperPool  = 26
	digitPool  = 10
	symbolPool = 33
)

// Estimate returns a rough entropy estimate for a candidate password: its
// length in runes times log2 of the effective alphabet size. The alphabet
// is presence-based rather than per-character, so a single lowercase letter
// buys the whole 26-letter pool. Letters outside ASCII and underscores
// contribute nothing.
func Estimate(candidate string) float64 {
	if candidate == "" {
		return 0.0
	}

	var sawLower, sawUpper, sawDigit, sawSymbol bool

	for _, r := range candidate {
		switch {
		case r >= 'a' && r <= 'z':
			sawLower = true
		case r >= 'A' && r <= 'Z':
			sawUpper = true
		case unicode.IsDigit(r):
			sawDigit = true
		case !unicode.IsLetter(r) && r != '_':
			sawSymbol = true
		}
	}

	pool := 0
	if sawLower {
		pool += lowerPool
	}
	if sawUpper {
		pool += upperPool
	}
	if sawDigit {
		pool += digitPool
	}
	if sawSymbol {
		pool += symbolPool
	}
	if pool < 1 {
		pool = 1
	}

	return float64(utf8.RuneCountInString(candidate)) * math.Log2(float64(pool))
}

// CrackTimeDisplay returns a human-friendly estimate of how long the
// candidate would take to crack, as judged by zxcvbn.
func CrackTimeDisplay(candidate string) string {
	if candidate == "" {
		return "instant"
	}

	return zxcvbn.PasswordStrength(candidate, []string{}).CrackTimeDisplay
}
