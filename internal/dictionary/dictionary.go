// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dictionary

import (
	"bufio"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/MKhiriev/go-small-safe/internal/logger"
)

//go:embed data/data.*
var embedded embed.FS

const (
	// preambleLength is the width of the fixed preamble before the word.
	preambleLength = 16
	// minLineLength is the shortest line that can carry a one-letter word.
	minLineLength = preambleLength + 2

	// expectedWords sizes the word slice for a full WordNet corpus.
	expectedWords = 150_000

	// MinimumWords is the smallest corpus accepted for passphrase
	// generation. A full WordNet 3.0 database yields well over 100,000.
	MinimumWords = 50_000

	maxLineLength = 1024 * 1024
)

// DefaultFiles lists the word-category resources read by Load.
var DefaultFiles = []string{"data.adj", "data.adv", "data.noun", "data.verb"}

// WordDictionary holds the loaded word corpus. Load may be called again to
// reload; readers always see either the previous or the new complete list.
type WordDictionary struct {
	fsys   fs.FS
	files  []string
	logger *logger.Logger

	mu    sync.RWMutex
	words []string
}

// New builds a dictionary reading files from fsys.
func New(fsys fs.FS, files []string, log *logger.Logger) *WordDictionary {
	return &WordDictionary{
		fsys:   fsys,
		files:  files,
		logger: log,
	}
}

// NewEmbedded builds a dictionary over the corpus compiled into the binary.
func NewEmbedded(log *logger.Logger) *WordDictionary {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return New(sub, DefaultFiles, log)
}

// NewFromDir builds a dictionary reading the WordNet data files from dir.
func NewFromDir(dir string, log *logger.Logger) *WordDictionary {
	return New(os.DirFS(dir), DefaultFiles, log)
}

// Load reads every resource and replaces the word list. It returns the number
// of words loaded. A missing resource fails the whole load with
// [ErrResourceMissing] and leaves the previous word list untouched.
func (d *WordDictionary) Load(ctx context.Context) (int, error) {
	words := make([]string, 0, expectedWords)

	for _, name := range d.files {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		loaded, err := d.loadFile(name, words)
		if err != nil {
			d.logger.Err(err).Str("func", "WordDictionary.Load").Str("resource", name).Msg("cannot load word dictionary resource")
			return 0, err
		}
		words = loaded
	}

	d.mu.Lock()
	d.words = words
	d.mu.Unlock()

	d.logger.Debug().Str("func", "WordDictionary.Load").Int("words", len(words)).Msg("word dictionary loaded")
	return len(words), nil
}

func (d *WordDictionary) loadFile(name string, words []string) ([]string, error) {
	f, err := d.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceMissing, name)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceMissing, name, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		if word, ok := parseLine(scanner.Text()); ok {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceMissing, name, err)
	}

	return words, nil
}

// parseLine extracts the word of a data line. ok is false for header and
// malformed lines.
func parseLine(line string) (word string, ok bool) {
	if len(line) < minLineLength || line[0] == ' ' || line[preambleLength] != ' ' {
		return "", false
	}

	word = line[preambleLength+1:]
	if i := strings.IndexByte(word, ' '); i >= 0 {
		word = word[:i]
	}
	if word == "" {
		return "", false
	}

	return strings.ReplaceAll(word, "_", " "), true
}

// Words returns the loaded words. The slice is shared and must not be
// modified. Empty before the first successful Load.
func (d *WordDictionary) Words() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.words
}

// Len returns the number of loaded words.
func (d *WordDictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}
