package generator

// WordSource supplies the word corpus. *dictionary.WordDictionary satisfies it.
type WordSource interface {
	Words() []string
}

// PassphraseGenerator builds random, human-typeable passphrases from a word
// corpus. Implementations are safe for concurrent use; all configuration is
// passed per call.
type PassphraseGenerator interface {
	// Generate returns one passphrase honouring opts.
	Generate(opts Options) (string, error)

	// GenerateBatch returns n passphrases generated with the same opts.
	GenerateBatch(opts Options, n int) ([]string, error)
}
