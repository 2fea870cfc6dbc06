package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
)

// optionalBool is a tri-state boolean flag: unset, true or false. It
// implements flag.Value and is accepted as "-flag", "-flag=true" and
// "-flag=false".
type optionalBool struct {
	value *bool
}

func (b *optionalBool) String() string {
	if b == nil || b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("need a boolean value: %w", err)
	}
	b.value = &v
	return nil
}

func (b *optionalBool) IsBoolFlag() bool { return true }

// ParseFlags parses the global flags in args. Parsing stops at the first
// non-flag argument; it and everything after it end up in Args.
//
// Flags:
//
//	-c/-config json file path with configs
//	-s/-safe safe name
//	-d/-db-dsn database DSN
//	-db-driver database driver (sqlite3, pgx)
//	-f/-safe-dir directory of safe files
//	-dict-dir word dictionary directory
//	-iterations PBKDF2 iteration count
//	-min-length minimum passphrase length
//	-max-length maximum passphrase length (0 = unbounded)
//	-numbers allow digits in passphrases
//	-punctuation allow punctuation in passphrases
//	-clear-after clear the clipboard after a copy (e.g. "45s")
//	-log-file log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		jsonConfigPath   string
		safeName         string
		databaseDSN      string
		databaseDriver   string
		safeDir          string
		dictionaryDir    string
		iterations       int
		minLength        int
		maxLength        int
		allowNumbers     optionalBool
		allowPunctuation optionalBool
		clearAfter       time.Duration
		logFile          string
	)

	fs := flag.NewFlagSet("smallsafe", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&safeName, "s", "", "Safe name")
	fs.StringVar(&safeName, "safe", "", "Safe name (alias)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDSN, "db-dsn", "", "Database DSN (alias)")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver: sqlite3 or pgx")
	fs.StringVar(&safeDir, "f", "", "Directory of safe files")
	fs.StringVar(&safeDir, "safe-dir", "", "Directory of safe files (alias)")
	fs.StringVar(&dictionaryDir, "dict-dir", "", "Word dictionary directory")
	fs.IntVar(&iterations, "iterations", 0, "PBKDF2 iteration count")
	fs.IntVar(&minLength, "min-length", 0, "Minimum passphrase length")
	fs.IntVar(&maxLength, "max-length", 0, "Maximum passphrase length, 0 for unbounded")
	fs.Var(&allowNumbers, "numbers", "Allow digits in passphrases")
	fs.Var(&allowPunctuation, "punctuation", "Allow punctuation in passphrases")
	fs.DurationVar(&clearAfter, "clear-after", 0, "Clear the clipboard after a copy (e.g., 45s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Crypto: Crypto{Iterations: iterations},
		Generator: Generator{
			MinimumLength:    minLength,
			MaximumLength:    maxLength,
			AllowNumbers:     allowNumbers.value,
			AllowPunctuation: allowPunctuation.value,
		},
		Dictionary: Dictionary{Dir: dictionaryDir},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Files: Files{
				SafeDir: safeDir,
			},
		},
		Safe:         Safe{Name: safeName},
		Clipboard:    Clipboard{ClearAfter: clearAfter},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}
