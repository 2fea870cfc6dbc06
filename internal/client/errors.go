package client

import "errors"

var (
	ErrNoCommand            = errors.New("no command given")
	ErrUnknownCommand       = errors.New("unknown command")
	ErrUsage                = errors.New("wrong arguments")
	ErrAmbiguousEntry       = errors.New("several entries match this name, use the entry id")
	ErrClipboardUnsupported = errors.New("no clipboard available on this system")
)
