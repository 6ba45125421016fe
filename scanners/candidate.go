package scanners

import "fmt"

// Candidate is a single password candidate pulled from an input source.
type Candidate struct {
	Source     string
	LineNumber int
	Value      string
}

// Ref returns the "source:line" reference used when reporting on a
// candidate without revealing its value.
func (c Candidate) Ref() string {
	return fmt.Sprintf("%s:%d", c.Source, c.LineNumber)
}
