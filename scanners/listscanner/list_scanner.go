package listscanner

import (
	"bufio"
	"io"

	"code.cloudfoundry.org/lager"

	"github.com/passvet/passvet/scanners"
)

type listScanner struct {
	source       string
	bufioScanner *bufio.Scanner
	lineNumber   int
	err          error
}

// New returns a scanner that yields one candidate password per line of r.
// Empty lines are skipped, but lines of whitespace are kept: they are
// legal passwords.
func New(r io.Reader, source string) *listScanner {
	return &listScanner{
		source:       source,
		bufioScanner: bufio.NewScanner(r),
	}
}

func (s *listScanner) Scan(logger lager.Logger) bool {
	logger = logger.Session("list-scanner")

	for s.bufioScanner.Scan() {
		s.lineNumber++

		if s.bufioScanner.Text() == "" {
			continue
		}

		return true
	}

	if err := s.bufioScanner.Err(); err != nil {
		logger.Error("bufio-error", err)
		s.err = err
	}

	return false
}

func (s *listScanner) Candidate(lager.Logger) *scanners.Candidate {
	return &scanners.Candidate{
		Source:     s.source,
		LineNumber: s.lineNumber,
		Value:      s.bufioScanner.Text(),
	}
}

func (s *listScanner) Err() error {
	return s.err
}
