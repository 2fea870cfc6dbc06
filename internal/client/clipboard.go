package client

import (
	"context"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-small-safe/internal/logger"
)

type systemClipboard struct{}

// NewSystemClipboard returns the OS clipboard.
func NewSystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

func (systemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	return clipboard.ReadAll()
}

// clipboardClearer empties the clipboard after a delay unless something
// else was copied in the meantime. Cancelling ctx clears immediately.
type clipboardClearer struct {
	clipboard Clipboard
	secret    string
	after     time.Duration
}

func (c *clipboardClearer) Run(ctx context.Context) error {
	timer := time.NewTimer(c.after)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	current, err := c.clipboard.ReadAll()
	if err != nil {
		return err
	}
	if current != c.secret {
		logger.FromContext(ctx).Debug().Msg("clipboard changed since copy, left as is")
		return nil
	}

	return c.clipboard.WriteAll("")
}
