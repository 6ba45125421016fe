package matchers

import (
	"bufio"
	"io"
	"strings"
)

// Matcher reports whether a candidate password contains something it knows
// about, along with the byte span of the first thing found.
type Matcher interface {
	Match(candidate []byte) (bool, int, int)
}

// Multi tries each submatcher in order and returns the first match.
func Multi(submatchers ...Matcher) Matcher {
	return &multi{
		submatchers: submatchers,
	}
}

type multi struct {
	submatchers []Matcher
}

func (m *multi) Match(candidate []byte) (bool, int, int) {
	for _, submatcher := range m.submatchers {
		if matched, start, end := submatcher.Match(candidate); matched {
			return matched, start, end
		}
	}

	return false, 0, 0
}

// DowncasedMultiMatcherFromReader builds a Multi of Substring matchers from
// a reader holding one word per line. Words are lowercased and blank lines
// are skipped. Callers are expected to match against a lowercased
// candidate.
func DowncasedMultiMatcherFromReader(r io.Reader) Matcher {
	var submatchers []Matcher

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}

		submatchers = append(submatchers, Substring(strings.ToLower(word)))
	}

	return Multi(submatchers...)
}
