// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-small-safe/internal/logger"
	"github.com/MKhiriev/go-small-safe/models"
)

// safeRepository is the SQL implementation of [SafeRepository] over the
// "safes" table. The same code serves SQLite and PostgreSQL; the dialect only
// changes placeholders and error classification.
type safeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSafeRepository constructs a [SafeRepository] backed by db.
func NewSafeRepository(db *DB, logger *logger.Logger) SafeRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating safe repository")
	return &safeRepository{db: db, logger: logger}
}

// CreateSafe implements [SafeRepository].
//
// Error handling:
//   - unique violation (PostgreSQL 23505, SQLite UNIQUE) → [ErrSafeAlreadyExists];
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *safeRepository) CreateSafe(ctx context.Context, name string, envelope []byte) error {
	log := logger.FromContext(ctx)

	if err := validateSafeName(name); err != nil {
		return err
	}
	if len(envelope) == 0 {
		return ErrEmptySafe
	}

	query, args, err := buildInsertSafeQuery(r.db.builder, name, envelope, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*safeRepository.CreateSafe").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrSafeAlreadyExists
		}
		log.Err(err).Str("func", "*safeRepository.CreateSafe").Msg("error inserting safe")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetSafe implements [SafeRepository].
func (r *safeRepository) GetSafe(ctx context.Context, name string) (models.SafeAccount, error) {
	log := logger.FromContext(ctx)

	if err := validateSafeName(name); err != nil {
		return models.SafeAccount{}, err
	}

	query, args, err := buildSelectSafeQuery(r.db.builder, name)
	if err != nil {
		log.Err(err).Str("func", "*safeRepository.GetSafe").Msg("error building query")
		return models.SafeAccount{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		account   models.SafeAccount
		updatedAt sql.NullTime
		deletedAt sql.NullTime
	)
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&account.Name, &account.EncryptedSafeDb, &account.CreatedAt, &updatedAt, &deletedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.SafeAccount{}, ErrSafeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*safeRepository.GetSafe").Msg("error scanning safe")
		return models.SafeAccount{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if updatedAt.Valid {
		account.UpdatedAt = &updatedAt.Time
	}
	if deletedAt.Valid {
		account.DeletedAt = &deletedAt.Time
	}
	return account, nil
}

// UpdateSafe implements [SafeRepository].
func (r *safeRepository) UpdateSafe(ctx context.Context, name string, envelope []byte) error {
	if len(envelope) == 0 {
		return ErrEmptySafe
	}
	return r.execOnActiveSafe(ctx, "*safeRepository.UpdateSafe", name, func() (string, []any, error) {
		return buildUpdateSafeQuery(r.db.builder, name, envelope, time.Now().UTC())
	})
}

// DeleteSafe implements [SafeRepository]. The row is kept with deleted_at set.
func (r *safeRepository) DeleteSafe(ctx context.Context, name string) error {
	return r.execOnActiveSafe(ctx, "*safeRepository.DeleteSafe", name, func() (string, []any, error) {
		return buildSoftDeleteSafeQuery(r.db.builder, name, time.Now().UTC())
	})
}

// ListSafes implements [SafeRepository].
func (r *safeRepository) ListSafes(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSafesQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*safeRepository.ListSafes").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*safeRepository.ListSafes").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			log.Err(err).Str("func", "*safeRepository.ListSafes").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*safeRepository.ListSafes").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return names, nil
}

// execOnActiveSafe runs a single-row UPDATE and maps zero affected rows to
// [ErrSafeNotFound].
func (r *safeRepository) execOnActiveSafe(ctx context.Context, funcName, name string, build func() (string, []any, error)) error {
	log := logger.FromContext(ctx)

	if err := validateSafeName(name); err != nil {
		return err
	}

	query, args, err := build()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSafeNotFound
	}

	return nil
}
