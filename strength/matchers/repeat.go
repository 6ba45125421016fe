package matchers

import "unicode/utf8"

type repeatMatcher struct {
	maxRun int
}

// Repeat matches any run of a single repeated rune longer than maxRun,
// which must be at least 1. Matching is case sensitive: "aAaA" is not a
// run, "aaaa" is.
func Repeat(maxRun int) Matcher {
	return &repeatMatcher{
		maxRun: maxRun,
	}
}

func (m *repeatMatcher) Match(candidate []byte) (bool, int, int) {
	var (
		prev     rune
		runLen   int
		runStart int
	)

	for i := 0; i < len(candidate); {
		r, size := utf8.DecodeRune(candidate[i:])
		if runLen == 0 || r != prev {
			prev = r
			runLen = 1
			runStart = i
		} else {
			runLen++
		}
		i += size

		if runLen > m.maxRun {
			end := i
			for end < len(candidate) {
				next, nextSize := utf8.DecodeRune(candidate[end:])
				if next != r {
					break
				}
				end += nextSize
			}

			return true, runStart, end
		}
	}

	return false, 0, 0
}
