package strength

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/passvet/passvet/entropy"
	"github.com/passvet/passvet/scanners"
	"github.com/passvet/passvet/strength/matchers"
)

//go:generate counterfeiter . Scanner

type Scanner interface {
	Scan(lager.Logger) bool
	Candidate(lager.Logger) *scanners.Candidate
	Err() error
}

//go:generate counterfeiter . Scorer

type Scorer interface {
	Score(lager.Logger, string) Assessment
	ScoreEach(lager.Logger, Scanner, AssessmentHandlerFunc) error
}

type AssessmentHandlerFunc func(lager.Logger, scanners.Candidate, Assessment) error

type scorer struct {
	wordMatcher     matchers.Matcher
	sequenceMatcher matchers.Matcher
	repeatMatcher   matchers.Matcher
}

func NewScorer(wordMatcher, sequenceMatcher matchers.Matcher) Scorer {
	return &scorer{
		wordMatcher:     wordMatcher,
		sequenceMatcher: sequenceMatcher,
		repeatMatcher:   matchers.Repeat(maxRepeatRun),
	}
}

func NewDefaultScorer() Scorer {
	return NewScorer(DefaultWordMatcher(), DefaultSequenceMatcher())
}

// Score evaluates one candidate password. Any input, including the empty
// string, yields a complete Assessment. The candidate value itself is
// never logged.
func (s *scorer) Score(logger lager.Logger, candidate string) Assessment {
	logger = logger.Session("score")
	logger.Debug("starting")

	checks := make(map[string]bool, len(checkOrder))
	var findings []Finding

	if candidate == "" {
		for _, name := range checkOrder {
			checks[name] = false
		}
	} else {
		folded := strings.ToLower(candidate)

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

		checks[CheckLength] = utf8.RuneCountInString(candidate) >= minLength
		checks[CheckLower] = sawLower
		checks[CheckUpper] = sawUpper
		checks[CheckDigit] = sawDigit
		checks[CheckSymbol] = sawSymbol

		checks[CheckNoWord] = true
		if matched, start, end := s.wordMatcher.Match([]byte(folded)); matched {
			checks[CheckNoWord] = false
			findings = append(findings, Finding{
				Check:    CheckNoWord,
				Fragment: folded[start:end],
				Start:    start,
				End:      end,
			})
		}

		checks[CheckNoSequence] = true
		if matched, start, end := s.sequenceMatcher.Match([]byte(folded)); matched {
			checks[CheckNoSequence] = false
			findings = append(findings, Finding{
				Check:    CheckNoSequence,
				Fragment: folded[start:end],
				Start:    start,
				End:      end,
			})
		}

		checks[CheckNoRepeats] = true
		if matched, start, end := s.repeatMatcher.Match([]byte(candidate)); matched {
			checks[CheckNoRepeats] = false
			findings = append(findings, Finding{
				Check:    CheckNoRepeats,
				Fragment: candidate[start:end],
				Start:    start,
				End:      end,
			})
		}
	}

	score := 0
	for _, name := range checkOrder {
		if checks[name] {
			score += checkWeights[name]
		}
	}

	bits := entropy.Estimate(candidate)
	score += entropyBonus(bits)

	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}

	rating := RatingFromScore(score)

	advice := make([]string, 0, len(checkOrder)+1)
	for _, name := range checkOrder {
		if !checks[name] {
			advice = append(advice, checkAdvice[name])
		}
	}
	advice = append(advice, passphraseTip)

	logger.Debug("done", lager.Data{
		"score":  score,
		"rating": string(rating),
	})

	return Assessment{
		Rating:      rating,
		Score:       score,
		EntropyBits: math.Round(bits*10) / 10,
		CrackTime:   entropy.CrackTimeDisplay(candidate),
		Checks:      checks,
		Advice:      advice,
		Findings:    findings,
	}
}

// ScoreEach scores every candidate produced by the scanner, passing each
// assessment to handle. Handler and scanner errors are collected rather
// than aborting the run.
func (s *scorer) ScoreEach(
	logger lager.Logger,
	scanner Scanner,
	handle AssessmentHandlerFunc,
) error {
	logger = logger.Session("score-each")
	logger.Debug("starting")

	var result error

	for scanner.Scan(logger) {
		candidate := scanner.Candidate(logger)

		assessment := s.Score(logger, candidate.Value)

		if err := handle(logger, *candidate, assessment); err != nil {
			logger.Error("handler-failed", err)
			result = multierror.Append(result, err)
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error("scanning-failed", err)
		result = multierror.Append(result, err)
	}

	logger.Debug("done")
	return result
}

func entropyBonus(bits float64) int {
	switch {
	case bits >= 60:
		return 10
	case bits >= 50:
		return 7
	case bits >= 40:
		return 5
	case bits >= 30:
		return 3
	default:
		return 0
	}
}
