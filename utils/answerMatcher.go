package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// MatchOptions carries the fuzzy-matching tolerances. They are product
// calibration values, loaded from config by the caller.
type MatchOptions struct {
	MaxEditDistance int     // max levenshtein distance accepted as a match
	MinTokenOverlap float64 // min ratio of answer tokens present in the user text
}

// minFuzzyLen guards containment and edit-distance matching on very short
// answers, where a distance of 1 already flips "7" into "9". Measured in
// runes so short non-ASCII answers stay guarded too.
const minFuzzyLen = 4

// NormalizeAnswer lowercases, strips punctuation, collapses whitespace and
// drops a leading article so spoken transcriptions compare cleanly.
func NormalizeAnswer(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-', r == '/':
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	if len(fields) > 1 {
		switch fields[0] {
		case "a", "an", "the":
			fields = fields[1:]
		}
	}
	return strings.Join(fields, " ")
}

// MatchAnswer reports whether a transcribed answer matches the canonical
// answer or any accepted alternate. Pure function of its inputs.
func MatchAnswer(userText, canonical string, alternates []string, opts MatchOptions) bool {
	user := NormalizeAnswer(userText)
	if user == "" {
		return false
	}

	accepted := make([]string, 0, len(alternates)+1)
	accepted = append(accepted, NormalizeAnswer(canonical))
	for _, alt := range alternates {
		accepted = append(accepted, NormalizeAnswer(alt))
	}

	for _, want := range accepted {
		if want == "" {
			continue
		}
		if user == want {
			return true
		}
		if fuzzyMatch(user, want, opts) {
			return true
		}
	}
	return false
}

// fuzzyMatch tolerates transcription noise: substring containment in either
// direction ("everest" against "mount everest"), small edit distances for
// typos and mishearings, token overlap for filler words around the answer
// ("about 150 million km" against "150 million km").
func fuzzyMatch(user, want string, opts MatchOptions) bool {
	userLen := utf8.RuneCountInString(user)
	wantLen := utf8.RuneCountInString(want)

	shorter := userLen
	if wantLen < shorter {
		shorter = wantLen
	}
	if shorter >= minFuzzyLen && (strings.Contains(user, want) || strings.Contains(want, user)) {
		return true
	}

	if opts.MaxEditDistance > 0 && wantLen >= minFuzzyLen {
		if levenshtein.Distance(user, want, nil) <= opts.MaxEditDistance {
			return true
		}
	}
	if opts.MinTokenOverlap > 0 {
		if tokenOverlap(user, want) >= opts.MinTokenOverlap {
			return true
		}
	}
	return false
}

// tokenOverlap returns the ratio of the expected answer's tokens that appear
// in the user's text.
func tokenOverlap(user, want string) float64 {
	wantTokens := strings.Fields(want)
	if len(wantTokens) == 0 {
		return 0
	}

	userTokens := make(map[string]bool)
	for _, t := range strings.Fields(user) {
		userTokens[t] = true
	}

	matched := 0
	for _, t := range wantTokens {
		if userTokens[t] {
			matched++
		}
	}
	return float64(matched) / float64(len(wantTokens))
}
