package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/MKhiriev/go-small-safe/internal/config"
	"github.com/MKhiriev/go-small-safe/internal/tui"
)

const (
	EnvMasterPassword    = config.EnvPrefix + "MASTER_PASSWORD"
	EnvNewMasterPassword = config.EnvPrefix + "NEW_MASTER_PASSWORD"
)

// terminalPasswords reads passwords from the environment first, then from
// a hidden prompt when in is a terminal, and otherwise one line per
// password from in.
type terminalPasswords struct {
	in     *os.File
	out    io.Writer
	getenv func(string) string

	once   sync.Once
	reader *bufio.Reader
}

// NewTerminalPasswords returns the default [PasswordSource] over stdin,
// drawing prompts on stderr.
func NewTerminalPasswords() PasswordSource {
	return &terminalPasswords{in: os.Stdin, out: os.Stderr, getenv: os.Getenv}
}

func (p *terminalPasswords) MasterPassword(ctx context.Context, confirm bool) (string, error) {
	return p.read(ctx, EnvMasterPassword, "Master password", confirm)
}

func (p *terminalPasswords) NewMasterPassword(ctx context.Context) (string, error) {
	return p.read(ctx, EnvNewMasterPassword, "New master password", true)
}

func (p *terminalPasswords) read(ctx context.Context, env, title string, confirm bool) (string, error) {
	if v := p.getenv(env); v != "" {
		return v, nil
	}

	if term.IsTerminal(int(p.in.Fd())) {
		return tui.PromptPassword(ctx, p.in, p.out, title, confirm)
	}

	return p.readLine()
}

func (p *terminalPasswords) readLine() (string, error) {
	p.once.Do(func() { p.reader = bufio.NewReader(p.in) })

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
