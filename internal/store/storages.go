package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-small-safe/internal/config"
	"github.com/MKhiriev/go-small-safe/internal/logger"
)

// Storages groups the storage repositories handed to the service layer.
type Storages struct {
	// SafeRepository persists encrypted safe envelopes.
	SafeRepository SafeRepository

	closeFn func() error
}

// NewStorages initialises the storage layer from cfg:
//  1. If cfg.DB.DSN is set, opens the configured SQL database and runs the
//     embedded migrations.
//  2. Otherwise uses the directory cfg.Files.SafeDir.
//
// Returns [ErrNoStorageConfigured] when neither is set.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN != "" {
		db, err := NewConnect(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("database connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &Storages{
			SafeRepository: NewSafeRepository(db, logger),
			closeFn:        db.Close,
		}, nil
	}

	if cfg.Files.SafeDir != "" {
		repo, err := NewFileSafeRepository(cfg.Files.SafeDir, logger)
		if err != nil {
			return nil, err
		}
		return &Storages{SafeRepository: repo}, nil
	}

	return nil, ErrNoStorageConfigured
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}
