// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dictionary

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-small-safe/internal/logger"
)

// WordNetURL points at the Princeton WordNet 3.0 database archive.
const WordNetURL = "https://wordnetcode.princeton.edu/3.0/WNdb-3.0.tar.gz"

const (
	fetchTimeout = 5 * time.Minute

	// maxResourceSize bounds a single extracted data file; data.noun is
	// about 15 MiB.
	maxResourceSize = 64 << 20
)

// Fetch downloads the WordNet database archive from url and writes the
// resources named in [DefaultFiles] into dir, replacing existing files.
func Fetch(ctx context.Context, url, dir string, log *logger.Logger) error {
	resp, err := resty.New().
		SetTimeout(fetchTimeout).
		R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: http %d", ErrFetchFailed, resp.StatusCode())
	}

	written, err := ExtractDataFiles(body, dir)
	if err != nil {
		log.Err(err).Str("func", "dictionary.Fetch").Str("url", url).Msg("cannot extract word dictionary archive")
		return err
	}

	log.Info().Str("func", "dictionary.Fetch").Strs("files", written).Str("dir", dir).Msg("word dictionary downloaded")
	return nil
}

// ExtractDataFiles reads a gzip-compressed tar archive from r and writes
// every entry whose base name is one of [DefaultFiles] into dir. It fails
// with [ErrResourceMissing] when the archive lacks any of them.
func ExtractDataFiles(r io.Reader, dir string) ([]string, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer gz.Close()

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var written []string
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return written, fmt.Errorf("%w: %w", ErrFetchFailed, err)
		}

		name := path.Base(hdr.Name)
		if hdr.Typeflag != tar.TypeReg || !slices.Contains(DefaultFiles, name) || slices.Contains(written, name) {
			continue
		}
		if err = writeResource(filepath.Join(dir, name), tr); err != nil {
			return written, err
		}
		written = append(written, name)
	}

	for _, name := range DefaultFiles {
		if !slices.Contains(written, name) {
			return written, fmt.Errorf("%w: %s not in archive", ErrResourceMissing, name)
		}
	}
	return written, nil
}

func writeResource(dst string, r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, io.LimitReader(r, maxResourceSize+1))
	if err == nil && n > maxResourceSize {
		err = fmt.Errorf("%w: %s exceeds %d bytes", ErrFetchFailed, filepath.Base(dst), maxResourceSize)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
