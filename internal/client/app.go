package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/MKhiriev/go-small-safe/internal/config"
	"github.com/MKhiriev/go-small-safe/internal/logger"
	"github.com/MKhiriev/go-small-safe/internal/service"
	"github.com/MKhiriev/go-small-safe/models"
)

// BuildInfo is printed by the "version" command.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

type App struct {
	services  *service.Services
	cfg       *config.StructuredConfig
	passwords PasswordSource
	clipboard Clipboard
	out       io.Writer
	build     BuildInfo

	logger *logger.Logger
}

type Option func(*App)

func WithOutput(w io.Writer) Option { return func(a *App) { a.out = w } }

func WithPasswordSource(p PasswordSource) Option { return func(a *App) { a.passwords = p } }

func WithClipboard(c Clipboard) Option { return func(a *App) { a.clipboard = c } }

func WithBuildInfo(b BuildInfo) Option { return func(a *App) { a.build = b } }

func NewApp(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		services:  services,
		cfg:       cfg,
		passwords: NewTerminalPasswords(),
		clipboard: NewSystemClipboard(),
		out:       os.Stdout,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes the command named by the first positional argument.
func (a *App) Run(ctx context.Context) error {
	if len(a.cfg.Args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	name, args := a.cfg.Args[0], a.cfg.Args[1:]
	cmd, ok := a.commands()[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	log := &logger.Logger{Logger: a.logger.With().Str("command", name).Str("safe", a.cfg.Safe.Name).Logger()}
	ctx = log.WithContext(ctx)
	log.Debug().Msg("running command")

	if err := cmd.run(ctx, args); err != nil {
		log.Err(err).Msg("command failed")
		return err
	}

	return nil
}

// credentials asks for the master password of the configured safe.
func (a *App) credentials(ctx context.Context, confirm bool) (models.SafeCredentials, error) {
	password, err := a.passwords.MasterPassword(ctx, confirm)
	if err != nil {
		return models.SafeCredentials{}, err
	}
	return models.SafeCredentials{Name: a.cfg.Safe.Name, Password: password}, nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) printUsage() {
	cmds := a.commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: smallsafe [global flags] <command> [flags] [args]\n\ncommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-14s %s\n", name, cmds[name].usage)
	}
	fmt.Fprint(a.out, b.String())
}
