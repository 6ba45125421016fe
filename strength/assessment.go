package strength

import (
	"fmt"
	"strings"
)

// Rating buckets a score into the coarse strength categories shown to
// users.
type Rating string

const (
	RatingWeak       Rating = "Weak"
	RatingModerate   Rating = "Moderate"
	RatingStrong     Rating = "Strong"
	RatingVeryStrong Rating = "Very Strong"
)

var ratingRanks = map[Rating]int{
	RatingWeak:       0,
	RatingModerate:   1,
	RatingStrong:     2,
	RatingVeryStrong: 3,
}

// RatingFromScore maps a clamped score to a rating via fixed breakpoints.
func RatingFromScore(score int) Rating {
	switch {
	case score < 40:
		return RatingWeak
	case score < 65:
		return RatingModerate
	case score < 85:
		return RatingStrong
	default:
		return RatingVeryStrong
	}
}

// ParseRating parses a rating name as given on the command line.
func ParseRating(name string) (Rating, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "weak":
		return RatingWeak, nil
	case "moderate":
		return RatingModerate, nil
	case "strong":
		return RatingStrong, nil
	case "very strong", "very-strong", "verystrong":
		return RatingVeryStrong, nil
	}

	return "", fmt.Errorf("unknown rating: %q", name)
}

// Meets reports whether the rating is at least min.
func (r Rating) Meets(min Rating) bool {
	return ratingRanks[r] >= ratingRanks[min]
}

// A Finding records where a pattern check failed. Start and End are byte
// offsets into the text the check ran against, which is a lowercased copy
// of the candidate for the word and sequence checks.
type Finding struct {
	Check    string `json:"check" yaml:"check"`
	Fragment string `json:"fragment" yaml:"fragment"`
	Start    int    `json:"start" yaml:"start"`
	End      int    `json:"end" yaml:"end"`
}

// An Assessment is the full result of scoring one candidate password.
type Assessment struct {
	Rating      Rating          `json:"rating" yaml:"rating"`
	Score       int             `json:"score" yaml:"score"`
	EntropyBits float64         `json:"entropy_bits" yaml:"entropy_bits"`
	CrackTime   string          `json:"crack_time" yaml:"crack_time"`
	Checks      map[string]bool `json:"checks" yaml:"checks"`
	Advice      []string        `json:"advice" yaml:"advice"`
	Findings    []Finding       `json:"findings,omitempty" yaml:"findings,omitempty"`
}
