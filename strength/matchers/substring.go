package matchers

import "bytes"

type substringMatcher struct {
	substring []byte
}

// Substring matches candidates containing s anywhere, not just as a whole
// word: "1password123" contains "password".
func Substring(s string) Matcher {
	return &substringMatcher{
		substring: []byte(s),
	}
}

func (m *substringMatcher) Match(candidate []byte) (bool, int, int) {
	start := bytes.Index(candidate, m.substring)
	if start == -1 {
		return false, 0, 0
	}

	end := start + len(m.substring)

	return true, start, end
}
