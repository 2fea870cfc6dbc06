package generator

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// candidateSet holds the dictionary words usable under one mode, already
// transformed (punctuation stripped if needed, first letter capitalised) and
// sorted by length so that the words fitting a budget form a prefix.
type candidateSet struct {
	words   []string
	lengths []int
}

func newCandidateSet(words []string, m mode) *candidateSet {
	set := &candidateSet{
		words:   make([]string, 0, len(words)),
		lengths: make([]int, 0, len(words)),
	}

	for _, w := range words {
		word, ok := transformWord(w, m)
		if !ok {
			continue
		}
		set.words = append(set.words, word)
	}

	sort.SliceStable(set.words, func(i, j int) bool {
		return utf8.RuneCountInString(set.words[i]) < utf8.RuneCountInString(set.words[j])
	})
	for _, w := range set.words {
		set.lengths = append(set.lengths, utf8.RuneCountInString(w))
	}

	return set
}

// fitting returns how many candidates are at most maxLength runes long.
func (s *candidateSet) fitting(maxLength int) int {
	if maxLength == unbounded {
		return len(s.words)
	}
	return sort.SearchInts(s.lengths, maxLength+1)
}

// transformWord prepares a dictionary word for mode m. ok is false when the
// word can never be used under m.
func transformWord(word string, m mode) (string, bool) {
	if m.punctuation {
		word = strings.ReplaceAll(word, "_", " ")
	} else {
		word = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, word)
	}

	if word == "" {
		return "", false
	}
	if !m.numbers && strings.IndexFunc(word, unicode.IsDigit) >= 0 {
		return "", false
	}

	first, size := utf8.DecodeRuneInString(word)
	if unicode.IsLetter(first) {
		word = string(unicode.ToUpper(first)) + word[size:]
	}
	return word, true
}
