// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-small-safe/internal/dictionary"
	"github.com/MKhiriev/go-small-safe/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticWords []string

func (s staticWords) Words() []string { return s }

// zeroReader always yields zero bytes, so every random index is 0.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

// fixtureDictionary loads the small WordNet-format corpus kept for tests.
func fixtureDictionary(t *testing.T) *dictionary.WordDictionary {
	t.Helper()

	d := dictionary.NewFromDir("../dictionary/testdata", logger.Nop())
	_, err := d.Load(context.Background())
	require.NoError(t, err)
	return d
}

func TestGenerate_RespectsBounds(t *testing.T) {
	g := NewPassphraseGenerator(fixtureDictionary(t))

	opts := Options{MinimumLength: 20, MaximumLength: 30, AllowNumbers: true, AllowPunctuation: true}
	for range 100 {
		p, err := g.Generate(opts)
		require.NoError(t, err)

		n := utf8.RuneCountInString(p)
		assert.GreaterOrEqual(t, n, 20, p)
		assert.LessOrEqual(t, n, 30, p)
	}
}

func TestGenerate_ReachesMinimumWithoutMaximum(t *testing.T) {
	g := NewPassphraseGenerator(fixtureDictionary(t))

	opts := Options{MinimumLength: 24, AllowNumbers: true, AllowPunctuation: true}
	for range 100 {
		p, err := g.Generate(opts)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, utf8.RuneCountInString(p), 24, p)
	}
}

func TestGenerate_MinimumFloor(t *testing.T) {
	g := NewPassphraseGenerator(fixtureDictionary(t))

	for range 50 {
		p, err := g.Generate(Options{MinimumLength: 1})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, utf8.RuneCountInString(p), 5, p)
	}
}

func TestGenerate_NoNumbers(t *testing.T) {
	g := NewPassphraseGenerator(fixtureDictionary(t))

	opts := Options{MinimumLength: 16, AllowPunctuation: true}
	for range 100 {
		p, err := g.Generate(opts)
		require.NoError(t, err)
		assert.False(t, strings.ContainsFunc(p, unicode.IsDigit), p)
	}
}

func TestGenerate_NoPunctuation(t *testing.T) {
	g := NewPassphraseGenerator(fixtureDictionary(t))

	for _, numbers := range []bool{true, false} {
		opts := Options{MinimumLength: 16, AllowNumbers: numbers}
		for range 100 {
			p, err := g.Generate(opts)
			require.NoError(t, err)

			for _, r := range p {
				assert.True(t, unicode.IsLetter(r) || unicode.IsDigit(r), "unexpected %q in %q", r, p)
			}
			if !numbers {
				assert.False(t, strings.ContainsFunc(p, unicode.IsDigit), p)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	words := staticWords{"horse", "cat", "dog"}

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "letters only",
			opts: Options{MinimumLength: 5},
			want: "CatCat",
		},
		{
			name: "numbers",
			opts: Options{MinimumLength: 5, AllowNumbers: true},
			want: "0CatCat",
		},
		{
			name: "numbers and punctuation",
			opts: Options{MinimumLength: 5, AllowNumbers: true, AllowPunctuation: true},
			want: "0 Cat,",
		},
		{
			name: "punctuation only",
			opts: Options{MinimumLength: 5, AllowPunctuation: true},
			want: "Cat Cat,",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newPassphraseGenerator(words, zeroReader{})

			got, err := g.Generate(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_FailsWhenNothingFits(t *testing.T) {
	g := newPassphraseGenerator(staticWords{"elephant"}, zeroReader{})

	got, err := g.Generate(Options{MinimumLength: 5, MaximumLength: 6})
	require.ErrorIs(t, err, ErrNoEligibleWords)
	assert.Empty(t, got)
}

func TestGenerate_EmptyDictionary(t *testing.T) {
	g := NewPassphraseGenerator(staticWords{})

	got, err := g.Generate(Options{MinimumLength: 20, MaximumLength: 30, AllowNumbers: true, AllowPunctuation: true})
	require.ErrorIs(t, err, ErrNoEligibleWords)
	assert.Empty(t, got)

	_, err = g.GenerateBatch(DefaultOptions(), 3)
	require.ErrorIs(t, err, ErrNoEligibleWords)
}

func TestGenerate_MinimumWords(t *testing.T) {
	words := staticWords{"horse", "cat", "dog"}

	_, err := NewPassphraseGenerator(words, WithMinimumWords(4)).Generate(DefaultOptions())
	require.ErrorIs(t, err, ErrCorpusTooSmall)
	assert.Contains(t, err.Error(), "3 words loaded, 4 required")

	p, err := NewPassphraseGenerator(words, WithMinimumWords(3)).Generate(DefaultOptions())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, utf8.RuneCountInString(p), DefaultMinimumLength)
}

func TestGenerate_RandomSourceFailure(t *testing.T) {
	g := newPassphraseGenerator(staticWords{"cat"}, iotest.ErrReader(errors.New("boom")))

	_, err := g.Generate(DefaultOptions())
	require.ErrorIs(t, err, ErrRandomSource)
}

func TestGenerate_ShortRandomSource(t *testing.T) {
	g := newPassphraseGenerator(staticWords{"cat"}, bytes.NewReader([]byte{1, 2}))

	_, err := g.Generate(Options{MinimumLength: 5})
	require.ErrorIs(t, err, ErrRandomSource)
}

func TestGenerate_ReloadedSourceRebuildsCandidates(t *testing.T) {
	src := &swappable{words: []string{"cat"}}
	g := newPassphraseGenerator(src, zeroReader{})

	got, err := g.Generate(Options{MinimumLength: 5})
	require.NoError(t, err)
	assert.Equal(t, "CatCat", got)

	src.words = []string{"dog"}
	got, err = g.Generate(Options{MinimumLength: 5})
	require.NoError(t, err)
	assert.Equal(t, "DogDog", got)
}

type swappable struct{ words []string }

func (s *swappable) Words() []string { return s.words }

func TestGenerateBatch(t *testing.T) {
	g := NewPassphraseGenerator(fixtureDictionary(t))

	out, err := g.GenerateBatch(DefaultOptions(), 5)
	require.NoError(t, err)
	require.Len(t, out, 5)
	for _, p := range out {
		assert.GreaterOrEqual(t, utf8.RuneCountInString(p), DefaultMinimumLength)
	}

	_, err = g.GenerateBatch(DefaultOptions(), 0)
	require.ErrorIs(t, err, ErrInvalidBatchSize)
}

func TestTransformWord(t *testing.T) {
	tests := []struct {
		word   string
		mode   mode
		want   string
		wantOK bool
	}{
		{"able", mode{}, "Able", true},
		{"ice_cream", mode{punctuation: true}, "Ice cream", true},
		{"ice_cream", mode{}, "Icecream", true},
		{"o'clock", mode{}, "Oclock", true},
		{"o'clock", mode{punctuation: true}, "O'clock", true},
		{"3d", mode{}, "", false},
		{"3d", mode{numbers: true}, "3d", true},
		{"--", mode{}, "", false},
		{"élan", mode{}, "Élan", true},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := transformWord(tt.word, tt.mode)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionsBounds(t *testing.T) {
	minLength, maxLength := Options{MinimumLength: 40, MaximumLength: 10}.bounds()
	assert.Equal(t, 10, minLength)
	assert.Equal(t, 10, maxLength)

	minLength, maxLength = Options{MinimumLength: 2, MaximumLength: 3, AllowPunctuation: true}.bounds()
	assert.Equal(t, 3, minLength)
	assert.Equal(t, 2, maxLength)

	minLength, maxLength = Options{}.bounds()
	assert.Equal(t, 5, minLength)
	assert.Equal(t, unbounded, maxLength)
}
