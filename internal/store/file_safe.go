package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-small-safe/internal/logger"
	"github.com/MKhiriev/go-small-safe/models"
)

const (
	safeFileExt    = ".safe"
	deletedFileExt = ".deleted"
)

// fileSafeRepository is the directory-backed implementation of
// [SafeRepository]. Each safe lives in "<dir>/<name>.safe"; replacing a safe
// writes a temporary file and renames it over the old one. Deleting renames
// the file to "<name>.<unix-nanos>.deleted".
type fileSafeRepository struct {
	dir    string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileSafeRepository constructs a [SafeRepository] storing envelopes in
// dir, which is created with mode 0700 if missing.
func NewFileSafeRepository(dir string, logger *logger.Logger) (SafeRepository, error) {
	if dir == "" {
		return nil, ErrNoStorageConfigured
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		logger.Err(err).Str("func", "NewFileSafeRepository").Msg("error creating safe directory")
		return nil, fmt.Errorf("create safe directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating file safe repository")
	return &fileSafeRepository{dir: dir, logger: logger}, nil
}

func (f *fileSafeRepository) path(name string) string {
	return filepath.Join(f.dir, name+safeFileExt)
}

// CreateSafe implements [SafeRepository]. The envelope is linked into place,
// so a concurrent writer can never be silently overwritten.
func (f *fileSafeRepository) CreateSafe(ctx context.Context, name string, envelope []byte) error {
	if err := f.precheck(ctx, name); err != nil {
		return err
	}
	if len(envelope) == 0 {
		return ErrEmptySafe
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := f.writeTemp(name, envelope)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	if err = os.Link(tmp, f.path(name)); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrSafeAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*fileSafeRepository.CreateSafe").Msg("error linking safe file")
		return fmt.Errorf("create safe file: %w", err)
	}

	return nil
}

// GetSafe implements [SafeRepository]. CreatedAt is the file modification
// time; files carry no separate creation stamp.
func (f *fileSafeRepository) GetSafe(ctx context.Context, name string) (models.SafeAccount, error) {
	if err := f.precheck(ctx, name); err != nil {
		return models.SafeAccount{}, err
	}

	path := f.path(name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.SafeAccount{}, ErrSafeNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileSafeRepository.GetSafe").Msg("error reading safe file")
		return models.SafeAccount{}, fmt.Errorf("read safe file: %w", err)
	}

	account := models.SafeAccount{Name: name, EncryptedSafeDb: data}
	if info, statErr := os.Stat(path); statErr == nil {
		account.CreatedAt = info.ModTime().UTC()
	}
	return account, nil
}

// UpdateSafe implements [SafeRepository].
func (f *fileSafeRepository) UpdateSafe(ctx context.Context, name string, envelope []byte) error {
	if err := f.precheck(ctx, name); err != nil {
		return err
	}
	if len(envelope) == 0 {
		return ErrEmptySafe
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := os.Stat(f.path(name)); errors.Is(err, fs.ErrNotExist) {
		return ErrSafeNotFound
	}

	tmp, err := f.writeTemp(name, envelope)
	if err != nil {
		return err
	}

	if err = os.Rename(tmp, f.path(name)); err != nil {
		os.Remove(tmp)
		logger.FromContext(ctx).Err(err).Str("func", "*fileSafeRepository.UpdateSafe").Msg("error replacing safe file")
		return fmt.Errorf("replace safe file: %w", err)
	}

	return nil
}

// DeleteSafe implements [SafeRepository].
func (f *fileSafeRepository) DeleteSafe(ctx context.Context, name string) error {
	if err := f.precheck(ctx, name); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tombstone := filepath.Join(f.dir, name+"."+strconv.FormatInt(time.Now().UnixNano(), 10)+deletedFileExt)
	err := os.Rename(f.path(name), tombstone)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrSafeNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileSafeRepository.DeleteSafe").Msg("error renaming safe file")
		return fmt.Errorf("delete safe file: %w", err)
	}

	return nil
}

// ListSafes implements [SafeRepository].
func (f *fileSafeRepository) ListSafes(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileSafeRepository.ListSafes").Msg("error reading safe directory")
		return nil, fmt.Errorf("read safe directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), safeFileExt)
		if !ok || !e.Type().IsRegular() || validateSafeName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	return names, nil
}

func (f *fileSafeRepository) precheck(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return validateSafeName(name)
}

// writeTemp writes envelope to a synced temporary file in the safe directory
// and returns its path.
func (f *fileSafeRepository) writeTemp(name string, envelope []byte) (string, error) {
	tmp, err := os.CreateTemp(f.dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	_, err = tmp.Write(envelope)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}

	return tmp.Name(), nil
}
