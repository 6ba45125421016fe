package strength

import "github.com/passvet/passvet/strength/matchers"

var commonWords = []string{
	"password", "welcome", "qwerty", "admin", "letmein", "dragon", "monkey", "login",
	"abc123", "iloveyou", "sunshine", "football", "baseball", "princess", "123456",
	"1234567", "12345678", "123456789", "1234567890", "111111", "000000", "1q2w3e",
	"passw0rd", "p@ssw0rd", "p4ssw0rd",
}

var commonSequences = []string{
	"12345", "23456", "34567", "45678", "56789", "67890",
	"qwerty", "asdf", "zxcv", "qwert", "abcde",
}

// DefaultWordMatcher matches candidates containing any of the builtin
// common words. Candidates are expected to be lowercased first.
func DefaultWordMatcher() matchers.Matcher {
	submatchers := make([]matchers.Matcher, 0, len(commonWords))
	for _, word := range commonWords {
		submatchers = append(submatchers, matchers.Substring(word))
	}

	return matchers.Multi(submatchers...)
}

// DefaultSequenceMatcher matches candidates containing a short keyboard
// walk or numeric run. Candidates are expected to be lowercased first.
func DefaultSequenceMatcher() matchers.Matcher {
	submatchers := make([]matchers.Matcher, 0, len(commonSequences))
	for _, seq := range commonSequences {
		submatchers = append(submatchers, matchers.Substring(seq))
	}

	return matchers.Multi(submatchers...)
}
