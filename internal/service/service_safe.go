package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-small-safe/internal/logger"
	"github.com/MKhiriev/go-small-safe/internal/safe"
	"github.com/MKhiriev/go-small-safe/internal/store"
	"github.com/MKhiriev/go-small-safe/internal/validators"
	"github.com/MKhiriev/go-small-safe/models"
)

type safeReadWriteService struct {
	safeRepository store.SafeRepository
	codec          safe.Codec
	validator      validators.Validator

	logger *logger.Logger
}

func NewSafeReadWriteService(safeRepository store.SafeRepository, codec safe.Codec, logger *logger.Logger) SafeReadWriteService {
	return &safeReadWriteService{
		safeRepository: safeRepository,
		codec:          codec,
		validator:      validators.NewSafeValidator(),
		logger:         logger,
	}
}

func (s *safeReadWriteService) CreateSafe(ctx context.Context, creds models.SafeCredentials) error {
	if err := s.validator.Validate(ctx, creds); err != nil {
		return err
	}

	envelope, err := s.seal(ctx, creds.Password, []models.Group{})
	if err != nil {
		return err
	}

	if err = s.safeRepository.CreateSafe(ctx, creds.Name, envelope); err != nil {
		s.logger.Err(err).Str("safe", creds.Name).Msg("safe creation ended with error")
		return fmt.Errorf("create safe %q: %w", creds.Name, err)
	}

	s.logger.Info().Str("safe", creds.Name).Msg("safe created")
	return nil
}

// ReadGroups returns [ErrNoSafe] (joined with the store error) when the
// safe does not exist. Codec errors are returned as is.
func (s *safeReadWriteService) ReadGroups(ctx context.Context, creds models.SafeCredentials) ([]models.Group, error) {
	if err := s.validator.Validate(ctx, creds); err != nil {
		return nil, err
	}

	account, err := s.safeRepository.GetSafe(ctx, creds.Name)
	if err != nil {
		if errors.Is(err, store.ErrSafeNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrNoSafe, err)
		}
		return nil, fmt.Errorf("load safe %q: %w", creds.Name, err)
	}

	groups, err := s.codec.Read(ctx, creds.Password, bytes.NewReader(account.EncryptedSafeDb))
	if err != nil {
		return nil, err
	}

	return groups, nil
}

func (s *safeReadWriteService) TryReadGroups(ctx context.Context, creds models.SafeCredentials) ([]models.Group, bool) {
	groups, err := s.ReadGroups(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Str("safe", creds.Name).Msg("unable to read safe groups")
		return nil, false
	}

	return groups, true
}

func (s *safeReadWriteService) WriteGroups(ctx context.Context, creds models.SafeCredentials, groups []models.Group) error {
	if err := s.validator.Validate(ctx, creds); err != nil {
		return err
	}

	envelope, err := s.seal(ctx, creds.Password, groups)
	if err != nil {
		return err
	}

	if err = s.safeRepository.UpdateSafe(ctx, creds.Name, envelope); err != nil {
		if errors.Is(err, store.ErrSafeNotFound) {
			return fmt.Errorf("%w: %w", ErrNoSafe, err)
		}
		s.logger.Err(err).Str("safe", creds.Name).Msg("safe update ended with error")
		return fmt.Errorf("update safe %q: %w", creds.Name, err)
	}

	return nil
}

func (s *safeReadWriteService) ChangeMasterPassword(ctx context.Context, creds models.SafeCredentials, newPassword string) error {
	next := creds.WithPassword(newPassword)
	if err := s.validator.Validate(ctx, next, validators.FieldPassword); err != nil {
		return err
	}

	groups, err := s.ReadGroups(ctx, creds)
	if err != nil {
		return err
	}

	if err = s.WriteGroups(ctx, next, groups); err != nil {
		return err
	}

	s.logger.Info().Str("safe", creds.Name).Msg("master password changed")
	return nil
}

func (s *safeReadWriteService) DeleteSafe(ctx context.Context, creds models.SafeCredentials) error {
	if _, err := s.ReadGroups(ctx, creds); err != nil {
		return err
	}

	if err := s.safeRepository.DeleteSafe(ctx, creds.Name); err != nil {
		return fmt.Errorf("delete safe %q: %w", creds.Name, err)
	}

	s.logger.Info().Str("safe", creds.Name).Msg("safe deleted")
	return nil
}

func (s *safeReadWriteService) ListSafes(ctx context.Context) ([]string, error) {
	return s.safeRepository.ListSafes(ctx)
}

func (s *safeReadWriteService) seal(ctx context.Context, password string, groups []models.Group) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.codec.Write(ctx, password, groups, &buf); err != nil {
		return nil, fmt.Errorf("encrypt safe: %w", err)
	}
	return buf.Bytes(), nil
}
