package strength

const (
	minLength    = 12
	maxRepeatRun = 3
	maxScore     = 100
)

const (
	CheckLength     = "length_ge_12"
	CheckLower      = "has_lower"
	CheckUpper      = "has_upper"
	CheckDigit      = "has_digit"
	CheckSymbol     = "has_symbol"
	CheckNoWord     = "no_dict_word"
	CheckNoSequence = "no_sequence"
	CheckNoRepeats  = "no_repeats"
)

var checkOrder = []string{
	CheckLength,
	CheckLower,
	CheckUpper,
	CheckDigit,
	CheckSymbol,
	CheckNoWord,
	CheckNoSequence,
	CheckNoRepeats,
}

var checkWeights = map[string]int{
	CheckLength:     25,
	CheckLower:      10,
	CheckUpper:      10,
	CheckDigit:      10,
	CheckSymbol:     10,
	CheckNoWord:     15,
	CheckNoSequence: 10,
	CheckNoRepeats:  10,
}

var checkAdvice = map[string]string{
	CheckLength:     "Use at least 12 characters (16+ is better).",
	CheckLower:      "Add lowercase letters.",
	CheckUpper:      "Add uppercase letters.",
	CheckDigit:      "Add numbers.",
	CheckSymbol:     "Add symbols (e.g., !@#?$%).",
	CheckNoWord:     "Avoid common words/phrases (e.g., 'password', 'qwerty').",
	CheckNoSequence: "Avoid sequences like '12345' or 'qwerty'.",
	CheckNoRepeats:  "Avoid repeated characters (e.g., 'aaaa' or '1111').",
}

const passphraseTip = "Consider a passphrase of 4–5 random words (easy to remember, high entropy)."

// CheckNames returns the check names in the order they are scored and
// reported.
func CheckNames() []string {
	names := make([]string, len(checkOrder))
	copy(names, checkOrder)
	return names
}
