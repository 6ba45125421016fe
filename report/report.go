package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/passvet/passvet/strength"
)

const ruleWidth = 48

// Options controls what a rendered report reveals about the candidate.
type Options struct {
	ShowPassword bool
	ShowMatches  bool
}

var checkLabels = map[string]string{
	strength.CheckLength:     "Length ≥ 12",
	strength.CheckLower:      "Has lowercase",
	strength.CheckUpper:      "Has uppercase",
	strength.CheckDigit:      "Has digit",
	strength.CheckSymbol:     "Has symbol",
	strength.CheckNoWord:     "No common words",
	strength.CheckNoSequence: "No sequences",
	strength.CheckNoRepeats:  "No repeats",
}

// Render writes the text report for one assessed candidate.
func Render(w io.Writer, candidate string, assessment strength.Assessment, opts Options) {
	doubleRule := strings.Repeat("=", ruleWidth)
	singleRule := strings.Repeat("-", ruleWidth)

	display := Mask(candidate)
	if opts.ShowPassword {
		display = candidate
	}

	fmt.Fprintln(w, doubleRule)
	fmt.Fprintln(w, "Password Strength Report")
	fmt.Fprintln(w, doubleRule)
	fmt.Fprintf(w, "Password: %s\n", display)
	fmt.Fprintf(w, "Rating:   %s  |  Score: %d/100  |  Entropy: %.1f bits\n",
		assessment.Rating, assessment.Score, assessment.EntropyBits)
	fmt.Fprintf(w, "Est. crack time: %s\n", assessment.CrackTime)

	fmt.Fprintln(w, singleRule)
	fmt.Fprintln(w, "Checks:")
	for _, name := range strength.CheckNames() {
		state := "!!"
		if assessment.Checks[name] {
			state = "OK"
		}
		fmt.Fprintf(w, "  [%s] %s\n", state, checkLabels[name])
	}

	if opts.ShowMatches && len(assessment.Findings) > 0 {
		fmt.Fprintln(w, singleRule)
		fmt.Fprintln(w, "Matches:")
		for _, finding := range assessment.Findings {
			fmt.Fprintf(w, "  - %s: %q\n", finding.Check, finding.Fragment)
		}
	}

	fmt.Fprintln(w, singleRule)
	fmt.Fprintln(w, "Recommendations:")
	for _, tip := range assessment.Advice {
		fmt.Fprintf(w, "  - %s\n", tip)
	}
	fmt.Fprintln(w, doubleRule)
}

// Mask hides a candidate for display: one asterisk per rune for short
// ones, and nothing at all for long ones.
func Mask(candidate string) string {
	length := utf8.RuneCountInString(candidate)
	if length <= 24 {
		return strings.Repeat("*", length)
	}

	return "(hidden)"
}
