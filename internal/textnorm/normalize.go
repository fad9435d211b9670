// Package textnorm canonicalizes answer text for comparison against target
// words. Speech transcripts get a loose, whitespace-free canonical form;
// typed answers are compared strictly so spelling and case must match.
package textnorm

import "strings"

// numberWords maps standalone numeral tokens to their spoken word form.
// Speech engines often emit digits ("3") where the target word is "three".
// The lexicon covers 0-10 and the tens up to 100.
var numberWords = map[string]string{
	"0":   "zero",
	"1":   "one",
	"2":   "two",
	"3":   "three",
	"4":   "four",
	"5":   "five",
	"6":   "six",
	"7":   "seven",
	"8":   "eight",
	"9":   "nine",
	"10":  "ten",
	"20":  "twenty",
	"30":  "thirty",
	"40":  "forty",
	"50":  "fifty",
	"60":  "sixty",
	"70":  "seventy",
	"80":  "eighty",
	"90":  "ninety",
	"100": "hundred",
}

const punctuation = ".,/#!$%^&*;:{}=-_`~()'\"?"

// NormalizeLoose canonicalizes text for loose comparison of speech input:
// lowercase, punctuation stripped, numeral tokens replaced by number words,
// and all whitespace removed so spelled-out answers like "t h r e e"
// collapse to "three". Idempotent.
func NormalizeLoose(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, tok := range strings.Fields(lowered) {
		tok = stripPunctuation(tok)
		if word, ok := numberWords[tok]; ok {
			tok = word
		}
		b.WriteString(tok)
	}
	return b.String()
}

func stripPunctuation(tok string) string {
	var b strings.Builder
	b.Grow(len(tok))
	for _, r := range tok {
		if strings.ContainsRune(punctuation, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CompareStrict compares typed input against the target word exactly,
// trimming only leading and trailing whitespace. Case and punctuation must
// match; typing "Apple" for "apple" counts as incorrect.
func CompareStrict(input, target string) bool {
	return strings.TrimSpace(input) == strings.TrimSpace(target)
}
