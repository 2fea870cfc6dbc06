// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"unicode/utf8"
)

const unbounded = math.MaxInt

var (
	digits = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

	middlePunctuation = []string{" ", ",", "-", "/", "'", "\"", "$", "%", "@", "(", ")", "&", "*", ":", ";"}

	endPunctuation = []string{",", ".", "!", "?", "$", "*", ":", ";"}
)

var (
	// ErrRandomSource is returned when the random source fails.
	ErrRandomSource = errors.New("random source failure")

	// ErrInvalidBatchSize is returned by GenerateBatch for n < 1.
	ErrInvalidBatchSize = errors.New("batch size must be positive")

	// ErrNoEligibleWords is returned when the corpus has no word that fits
	// the remaining length budget before the minimum length is reached.
	ErrNoEligibleWords = errors.New("no dictionary word fits the passphrase length limits")

	// ErrCorpusTooSmall is returned when the word source holds fewer words
	// than the generator was configured to require.
	ErrCorpusTooSmall = errors.New("word dictionary is too small")
)

// GeneratorOption configures a generator built by [NewPassphraseGenerator].
type GeneratorOption func(*passphraseGenerator)

// WithMinimumWords makes Generate fail with [ErrCorpusTooSmall] while the
// source holds fewer than n words.
func WithMinimumWords(n int) GeneratorOption {
	return func(g *passphraseGenerator) {
		g.minWords = n
	}
}

// passphraseGenerator is the private implementation of [PassphraseGenerator].
type passphraseGenerator struct {
	source   WordSource
	random   io.Reader
	minWords int

	mu         sync.Mutex
	snapshot   []string
	candidates map[mode]*candidateSet
}

// NewPassphraseGenerator constructs a generator over source using
// crypto/rand for every random choice.
func NewPassphraseGenerator(source WordSource, opts ...GeneratorOption) PassphraseGenerator {
	g := newPassphraseGenerator(source, rand.Reader)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func newPassphraseGenerator(source WordSource, random io.Reader) *passphraseGenerator {
	return &passphraseGenerator{
		source:     source,
		random:     random,
		candidates: make(map[mode]*candidateSet),
	}
}

// Generate implements [PassphraseGenerator].
//
// The passphrase starts with a digit and a punctuation mark (when allowed),
// then alternates separators and capitalised dictionary words until the
// minimum length is reached, and ends with a punctuation mark when
// punctuation is allowed. Words are drawn only from candidates that fit the
// remaining length budget, so the maximum is never exceeded. If no word fits
// the budget before the minimum is reached, Generate fails with
// [ErrNoEligibleWords].
func (g *passphraseGenerator) Generate(opts Options) (string, error) {
	words := g.source.Words()
	if len(words) < g.minWords {
		return "", fmt.Errorf("%w: %d words loaded, %d required", ErrCorpusTooSmall, len(words), g.minWords)
	}

	var (
		b      strings.Builder
		length int
	)
	add := func(s string) {
		b.WriteString(s)
		length += utf8.RuneCountInString(s)
	}

	if opts.AllowNumbers {
		d, err := g.pick(digits)
		if err != nil {
			return "", err
		}
		add(d)

		if opts.AllowPunctuation {
			p, err := g.pick(middlePunctuation)
			if err != nil {
				return "", err
			}
			add(p)
		}
	}

	minLength, maxLength := opts.bounds()
	candidates := g.candidateSet(words, opts.mode())

	for wordsAdded := 0; ; wordsAdded++ {
		if wordsAdded > 0 {
			sep, err := g.separator(opts, wordsAdded)
			if err != nil {
				return "", err
			}
			add(sep)
		}

		if length >= maxLength {
			break
		}

		word, ok, err := g.pickWord(candidates, maxLength-length)
		if err != nil {
			return "", err
		}
		if !ok {
			break
		}
		add(word)

		if length >= maxLength || length >= minLength {
			break
		}
	}

	if length < minLength {
		return "", fmt.Errorf("%w: reached %d of %d characters", ErrNoEligibleWords, length, minLength)
	}

	if opts.AllowPunctuation && length < maxLength+1 {
		p, err := g.pick(endPunctuation)
		if err != nil {
			return "", err
		}
		add(p)
	}

	return b.String(), nil
}

// GenerateBatch implements [PassphraseGenerator].
func (g *passphraseGenerator) GenerateBatch(opts Options, n int) ([]string, error) {
	if n < 1 {
		return nil, ErrInvalidBatchSize
	}

	out := make([]string, 0, n)
	for range n {
		p, err := g.Generate(opts)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// separator returns the text placed before the next word. With punctuation
// allowed it alternates a random middle mark and a space; with only numbers
// allowed a digit goes before every other word.
func (g *passphraseGenerator) separator(opts Options, wordsAdded int) (string, error) {
	switch {
	case opts.AllowPunctuation:
		if wordsAdded%2 == 0 {
			return g.pick(middlePunctuation)
		}
		return " ", nil
	case opts.AllowNumbers && wordsAdded%2 == 0:
		return g.pick(digits)
	default:
		return "", nil
	}
}

// pickWord draws a random candidate no longer than budget runes.
func (g *passphraseGenerator) pickWord(set *candidateSet, budget int) (string, bool, error) {
	n := set.fitting(budget)
	if n == 0 {
		return "", false, nil
	}

	i, err := g.nextIndex(n)
	if err != nil {
		return "", false, err
	}
	return set.words[i], true, nil
}

func (g *passphraseGenerator) pick(set []string) (string, error) {
	i, err := g.nextIndex(len(set))
	if err != nil {
		return "", err
	}
	return set[i], nil
}

// nextIndex returns a random index in [0, n). Four random bytes are masked
// to a non-negative int32 and reduced modulo n; the resulting modulo bias is
// negligible for the set sizes involved and accepted.
func (g *passphraseGenerator) nextIndex(n int) (int, error) {
	var buf [4]byte
	if _, err := io.ReadFull(g.random, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	v := binary.LittleEndian.Uint32(buf[:]) & 0x7fffffff
	return int(v) % n, nil
}

// candidateSet returns the cached candidates for m, rebuilding every cache
// entry when the source has been reloaded since the last call.
func (g *passphraseGenerator) candidateSet(words []string, m mode) *candidateSet {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !sameSlice(words, g.snapshot) {
		g.snapshot = words
		clear(g.candidates)
	}

	set, ok := g.candidates[m]
	if !ok {
		set = newCandidateSet(words, m)
		g.candidates[m] = set
	}
	return set
}

// sameSlice reports whether a and b share the same backing array and length.
func sameSlice(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
