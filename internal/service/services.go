package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-small-safe/internal/config"
	"github.com/MKhiriev/go-small-safe/internal/crypto"
	"github.com/MKhiriev/go-small-safe/internal/dictionary"
	"github.com/MKhiriev/go-small-safe/internal/generator"
	"github.com/MKhiriev/go-small-safe/internal/logger"
	"github.com/MKhiriev/go-small-safe/internal/safe"
	"github.com/MKhiriev/go-small-safe/internal/store"
)

type Services struct {
	SafeService  SafeReadWriteService
	GroupService GroupService
	Generator    generator.PassphraseGenerator

	// GeneratorOptions are the configured defaults for Generator calls.
	GeneratorOptions generator.Options
}

// NewServices wires the cipher, codec and word corpus on top of storages.
// The dictionary is loaded eagerly, so a missing corpus fails here; a corpus
// below [dictionary.MinimumWords] only fails passphrase generation.
func NewServices(ctx context.Context, storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	cipher := crypto.NewPasswordCipher(crypto.WithIterations(cfg.Crypto.Iterations))
	codec := safe.NewCodec(cipher, logger)

	dict := dictionary.NewEmbedded(logger)
	if cfg.Dictionary.Dir != "" {
		dict = dictionary.NewFromDir(cfg.Dictionary.Dir, logger)
	}
	if _, err := dict.Load(ctx); err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}

	safeSvc := NewSafeReadWriteService(storages.SafeRepository, codec, logger)

	return &Services{
		SafeService:      safeSvc,
		GroupService:     NewGroupService(safeSvc, logger),
		Generator:        generator.NewPassphraseGenerator(dict, generator.WithMinimumWords(dictionary.MinimumWords)),
		GeneratorOptions: GeneratorOptions(cfg.Generator),
	}, nil
}

// GeneratorOptions converts generator configuration into call options,
// falling back to [generator.DefaultOptions] for unset values.
func GeneratorOptions(cfg config.Generator) generator.Options {
	opts := generator.DefaultOptions()
	if cfg.MinimumLength > 0 {
		opts.MinimumLength = cfg.MinimumLength
	}
	opts.MaximumLength = cfg.MaximumLength
	if cfg.AllowNumbers != nil {
		opts.AllowNumbers = *cfg.AllowNumbers
	}
	if cfg.AllowPunctuation != nil {
		opts.AllowPunctuation = *cfg.AllowPunctuation
	}
	return opts
}
