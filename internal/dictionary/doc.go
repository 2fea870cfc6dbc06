// Package dictionary loads the word corpus that feeds the passphrase
// generator.
//
// The corpus is a set of WordNet "data.*" files. Every data line starts with
// a 16 character preamble (synset offset, lexicographer file number, part of
// speech and word count) followed by a space and the first word of the
// synset. Only that first word is kept; underscores in multi-word phrases
// become spaces. License header lines begin with a space and are skipped.
//
// The WordNet 3.0 data files are embedded in the binary from data/. Run
//
//	go generate ./internal/dictionary
//
// to download them into data/ before building; until then data/ holds only
// the license header and loads no words. An installed WordNet can be used
// instead by pointing [NewFromDir] at its dict directory.
package dictionary

//go:generate go run ../../cmd/wordnet-fetch -out data
