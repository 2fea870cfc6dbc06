package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-small-safe/internal/tui"
	"github.com/MKhiriev/go-small-safe/internal/workers"
	"github.com/MKhiriev/go-small-safe/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"version":       {usage: "print build information", run: a.cmdVersion},
		"safes":         {usage: "list safes", run: a.cmdSafes},
		"init":          {usage: "create the safe", run: a.cmdInit},
		"passwd":        {usage: "change the master password", run: a.cmdPasswd},
		"delete-safe":   {usage: "delete the safe", run: a.cmdDeleteSafe},
		"groups":        {usage: "list groups", run: a.cmdGroups},
		"add-group":     {usage: "<name>", run: a.cmdAddGroup},
		"delete-group":  {usage: "<group>", run: a.cmdDeleteGroup},
		"move-group":    {usage: "[-after <group>] <group>", run: a.cmdMoveGroup},
		"entries":       {usage: "<group>", run: a.cmdEntries},
		"add-entry":     {usage: "[-generate] [-copy] <group> <name> [value]", run: a.cmdAddEntry},
		"update-entry":  {usage: "[-generate] [-copy] <group> <entry> [value]", run: a.cmdUpdateEntry},
		"delete-entry":  {usage: "<group> <entry>", run: a.cmdDeleteEntry},
		"move-entry":    {usage: "[-after <entry>] <group> <entry>", run: a.cmdMoveEntry},
		"show":          {usage: "[-copy] <group> <entry>", run: a.cmdShow},
		"history":       {usage: "<group> <entry>", run: a.cmdHistory},
		"purge-history": {usage: "<group> <entry>", run: a.cmdPurgeHistory},
		"find":          {usage: "<text>", run: a.cmdFind},
		"generate":      {usage: "[-n count] [-copy]", run: a.cmdGenerate},
		"sort":          {usage: "<group>", run: a.cmdSort},
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseArgs parses fs and checks that between min and max positional
// arguments remain; max < 0 means no upper bound.
func parseArgs(fs *flag.FlagSet, args []string, min, max int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUsage, fs.Name(), err)
	}

	rest := fs.Args()
	if len(rest) < min || (max >= 0 && len(rest) > max) {
		return nil, fmt.Errorf("%w: %s takes %s", ErrUsage, fs.Name(), argCount(min, max))
	}

	return rest, nil
}

func argCount(min, max int) string {
	switch {
	case max < 0:
		return fmt.Sprintf("at least %d arguments", min)
	case min == max:
		return fmt.Sprintf("%d arguments", min)
	default:
		return fmt.Sprintf("%d to %d arguments", min, max)
	}
}

// openGroup unlocks the safe and resolves groupRef.
func (a *App) openGroup(ctx context.Context, groupRef string) (models.SafeCredentials, models.Group, error) {
	creds, err := a.credentials(ctx, false)
	if err != nil {
		return creds, models.Group{}, err
	}

	groups, err := a.services.GroupService.ListGroups(ctx, creds)
	if err != nil {
		return creds, models.Group{}, err
	}

	group, err := findGroup(groups, groupRef)
	if err != nil {
		return creds, models.Group{}, fmt.Errorf("%q: %w", groupRef, err)
	}

	return creds, group, nil
}

func (a *App) openEntry(ctx context.Context, groupRef, entryRef string) (models.SafeCredentials, models.Group, models.Entry, error) {
	creds, group, err := a.openGroup(ctx, groupRef)
	if err != nil {
		return creds, group, models.Entry{}, err
	}

	entry, err := findEntry(group, entryRef)
	if err != nil {
		return creds, group, models.Entry{}, fmt.Errorf("%q: %w", entryRef, err)
	}

	return creds, group, entry, nil
}

func (a *App) cmdVersion(_ context.Context, _ []string) error {
	a.printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orNA(a.build.Version), orNA(a.build.Date), orNA(a.build.Commit))
	return nil
}

func (a *App) cmdSafes(ctx context.Context, args []string) error {
	if _, err := parseArgs(newFlagSet("safes"), args, 0, 0); err != nil {
		return err
	}

	names, err := a.services.SafeService.ListSafes(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, tui.RenderLines(names))
	return nil
}

func (a *App) cmdInit(ctx context.Context, args []string) error {
	if _, err := parseArgs(newFlagSet("init"), args, 0, 0); err != nil {
		return err
	}

	creds, err := a.credentials(ctx, true)
	if err != nil {
		return err
	}

	if err = a.services.SafeService.CreateSafe(ctx, creds); err != nil {
		return err
	}

	a.printf("created safe %q\n", creds.Name)
	return nil
}

func (a *App) cmdPasswd(ctx context.Context, args []string) error {
	if _, err := parseArgs(newFlagSet("passwd"), args, 0, 0); err != nil {
		return err
	}

	creds, err := a.credentials(ctx, false)
	if err != nil {
		return err
	}

	next, err := a.passwords.NewMasterPassword(ctx)
	if err != nil {
		return err
	}

	if err = a.services.SafeService.ChangeMasterPassword(ctx, creds, next); err != nil {
		return err
	}

	a.printf("master password of %q changed\n", creds.Name)
	return nil
}

func (a *App) cmdDeleteSafe(ctx context.Context, args []string) error {
	if _, err := parseArgs(newFlagSet("delete-safe"), args, 0, 0); err != nil {
		return err
	}

	creds, err := a.credentials(ctx, false)
	if err != nil {
		return err
	}

	if err = a.services.SafeService.DeleteSafe(ctx, creds); err != nil {
		return err
	}

	a.printf("deleted safe %q\n", creds.Name)
	return nil
}

func (a *App) cmdGroups(ctx context.Context, args []string) error {
	if _, err := parseArgs(newFlagSet("groups"), args, 0, 0); err != nil {
		return err
	}

	creds, err := a.credentials(ctx, false)
	if err != nil {
		return err
	}

	groups, err := a.services.GroupService.ListGroups(ctx, creds)
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, tui.RenderGroups(groups))
	return nil
}

func (a *App) cmdAddGroup(ctx context.Context, args []string) error {
	rest, err := parseArgs(newFlagSet("add-group"), args, 1, 1)
	if err != nil {
		return err
	}

	creds, err := a.credentials(ctx, false)
	if err != nil {
		return err
	}

	group, err := a.services.GroupService.AddGroup(ctx, creds, rest[0])
	if err != nil {
		return err
	}

	a.printf("added group %q (%s)\n", group.Name, group.ID)
	return nil
}

func (a *App) cmdDeleteGroup(ctx context.Context, args []string) error {
	rest, err := parseArgs(newFlagSet("delete-group"), args, 1, 1)
	if err != nil {
		return err
	}

	creds, group, err := a.openGroup(ctx, rest[0])
	if err != nil {
		return err
	}

	if err = a.services.GroupService.DeleteGroup(ctx, creds, group.ID); err != nil {
		return err
	}

	a.printf("deleted group %q\n", group.Name)
	return nil
}

func (a *App) cmdMoveGroup(ctx context.Context, args []string) error {
	fs := newFlagSet("move-group")
	after := fs.String("after", "", "group to place it after; empty moves it first")
	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}

	creds, err := a.credentials(ctx, false)
	if err != nil {
		return err
	}

	groups, err := a.services.GroupService.ListGroups(ctx, creds)
	if err != nil {
		return err
	}

	group, err := findGroup(groups, rest[0])
	if err != nil {
		return fmt.Errorf("%q: %w", rest[0], err)
	}

	var prevID *uuid.UUID
	if *after != "" {
		prev, err := findGroup(groups, *after)
		if err != nil {
			return fmt.Errorf("%q: %w", *after, err)
		}
		prevID = &prev.ID
	}

	return a.services.GroupService.MoveGroup(ctx, creds, group.ID, prevID)
}

func (a *App) cmdEntries(ctx context.Context, args []string) error {
	rest, err := parseArgs(newFlagSet("entries"), args, 1, 1)
	if err != nil {
		return err
	}

	creds, group, err := a.openGroup(ctx, rest[0])
	if err != nil {
		return err
	}

	entries, err := a.services.GroupService.ListEntries(ctx, creds, group.ID)
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, tui.RenderEntries(entries))
	return nil
}

// entryValue picks the value of add-entry and update-entry: a generated
// passphrase or the explicit argument, never both.
func (a *App) entryValue(generate bool, explicit []string) (string, error) {
	switch {
	case generate && len(explicit) > 0:
		return "", fmt.Errorf("%w: -generate and a value are mutually exclusive", ErrUsage)
	case generate:
		return a.services.Generator.Generate(a.services.GeneratorOptions)
	case len(explicit) == 0:
		return "", fmt.Errorf("%w: a value or -generate is required", ErrUsage)
	default:
		return explicit[0], nil
	}
}

// reveal prints or copies a value the user asked to see.
func (a *App) reveal(ctx context.Context, value string, copyValue bool) error {
	if copyValue {
		return a.copy(ctx, value)
	}
	a.printf("%s\n", value)
	return nil
}

func (a *App) cmdAddEntry(ctx context.Context, args []string) error {
	fs := newFlagSet("add-entry")
	generate := fs.Bool("generate", false, "use a generated passphrase as the value")
	copyValue := fs.Bool("copy", false, "copy a generated value instead of printing it")
	rest, err := parseArgs(fs, args, 2, 3)
	if err != nil {
		return err
	}

	value, err := a.entryValue(*generate, rest[2:])
	if err != nil {
		return err
	}

	creds, group, err := a.openGroup(ctx, rest[0])
	if err != nil {
		return err
	}

	entry, err := a.services.GroupService.AddEntry(ctx, creds, group.ID, rest[1], value)
	if err != nil {
		return err
	}

	a.printf("added entry %q to %q (%s)\n", entry.Name, group.Name, entry.ID)
	if *generate {
		return a.reveal(ctx, value, *copyValue)
	}
	return nil
}

func (a *App) cmdUpdateEntry(ctx context.Context, args []string) error {
	fs := newFlagSet("update-entry")
	generate := fs.Bool("generate", false, "use a generated passphrase as the value")
	copyValue := fs.Bool("copy", false, "copy a generated value instead of printing it")
	rest, err := parseArgs(fs, args, 2, 3)
	if err != nil {
		return err
	}

	value, err := a.entryValue(*generate, rest[2:])
	if err != nil {
		return err
	}

	creds, group, entry, err := a.openEntry(ctx, rest[0], rest[1])
	if err != nil {
		return err
	}

	if _, err = a.services.GroupService.UpdateEntry(ctx, creds, group.ID, entry.ID, value); err != nil {
		return err
	}

	a.printf("updated entry %q in %q\n", entry.Name, group.Name)
	if *generate {
		return a.reveal(ctx, value, *copyValue)
	}
	return nil
}

func (a *App) cmdDeleteEntry(ctx context.Context, args []string) error {
	rest, err := parseArgs(newFlagSet("delete-entry"), args, 2, 2)
	if err != nil {
		return err
	}

	creds, group, entry, err := a.openEntry(ctx, rest[0], rest[1])
	if err != nil {
		return err
	}

	if err = a.services.GroupService.DeleteEntry(ctx, creds, group.ID, entry.ID); err != nil {
		return err
	}

	a.printf("deleted entry %q from %q\n", entry.Name, group.Name)
	return nil
}

func (a *App) cmdMoveEntry(ctx context.Context, args []string) error {
	fs := newFlagSet("move-entry")
	after := fs.String("after", "", "entry to place it after; empty moves it first")
	rest, err := parseArgs(fs, args, 2, 2)
	if err != nil {
		return err
	}

	creds, group, entry, err := a.openEntry(ctx, rest[0], rest[1])
	if err != nil {
		return err
	}

	var prevID *uuid.UUID
	if *after != "" {
		prev, err := findEntry(group, *after)
		if err != nil {
			return fmt.Errorf("%q: %w", *after, err)
		}
		prevID = &prev.ID
	}

	return a.services.GroupService.MoveEntry(ctx, creds, group.ID, entry.ID, prevID)
}

func (a *App) cmdShow(ctx context.Context, args []string) error {
	fs := newFlagSet("show")
	copyValue := fs.Bool("copy", false, "copy the value to the clipboard instead of printing it")
	rest, err := parseArgs(fs, args, 2, 2)
	if err != nil {
		return err
	}

	creds, group, entry, err := a.openEntry(ctx, rest[0], rest[1])
	if err != nil {
		return err
	}

	value, err := a.services.GroupService.GetEntryValue(ctx, creds, group.ID, entry.ID)
	if err != nil {
		return err
	}

	return a.reveal(ctx, value, *copyValue)
}

func (a *App) cmdHistory(ctx context.Context, args []string) error {
	rest, err := parseArgs(newFlagSet("history"), args, 2, 2)
	if err != nil {
		return err
	}

	creds, group, entry, err := a.openEntry(ctx, rest[0], rest[1])
	if err != nil {
		return err
	}

	history, err := a.services.GroupService.EntryHistory(ctx, creds, group.ID, entry.ID)
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, tui.RenderHistory(history))
	return nil
}

func (a *App) cmdPurgeHistory(ctx context.Context, args []string) error {
	rest, err := parseArgs(newFlagSet("purge-history"), args, 2, 2)
	if err != nil {
		return err
	}

	creds, group, entry, err := a.openEntry(ctx, rest[0], rest[1])
	if err != nil {
		return err
	}

	if err = a.services.GroupService.PurgeEntryHistory(ctx, creds, group.ID, entry.ID); err != nil {
		return err
	}

	a.printf("purged history of %q\n", entry.Name)
	return nil
}

func (a *App) cmdFind(ctx context.Context, args []string) error {
	rest, err := parseArgs(newFlagSet("find"), args, 1, -1)
	if err != nil {
		return err
	}

	creds, err := a.credentials(ctx, false)
	if err != nil {
		return err
	}

	result, err := a.services.GroupService.Find(ctx, creds, models.FindRequest{Query: strings.Join(rest, " ")})
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, tui.RenderFindResult(result))
	return nil
}

func (a *App) cmdGenerate(ctx context.Context, args []string) error {
	fs := newFlagSet("generate")
	count := fs.Int("n", 1, "number of passphrases")
	copyValue := fs.Bool("copy", false, "copy the passphrase to the clipboard instead of printing it")
	if _, err := parseArgs(fs, args, 0, 0); err != nil {
		return err
	}
	if *copyValue && *count != 1 {
		return fmt.Errorf("%w: -copy works with a single passphrase", ErrUsage)
	}

	phrases, err := a.services.Generator.GenerateBatch(a.services.GeneratorOptions, *count)
	if err != nil {
		return err
	}

	if *copyValue {
		return a.copy(ctx, phrases[0])
	}

	fmt.Fprint(a.out, tui.RenderLines(phrases))
	return nil
}

func (a *App) cmdSort(ctx context.Context, args []string) error {
	rest, err := parseArgs(newFlagSet("sort"), args, 1, 1)
	if err != nil {
		return err
	}

	creds, group, err := a.openGroup(ctx, rest[0])
	if err != nil {
		return err
	}

	return a.services.GroupService.SortEntries(ctx, creds, group.ID)
}

// copy puts value on the clipboard and, when configured, blocks until the
// clipboard has been cleared again.
func (a *App) copy(ctx context.Context, value string) error {
	if err := a.clipboard.WriteAll(value); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	a.printf("copied to clipboard\n")

	after := a.cfg.Clipboard.ClearAfter
	if after <= 0 {
		return nil
	}

	a.printf("clearing clipboard in %s\n", after)
	return workers.New(&clipboardClearer{clipboard: a.clipboard, secret: value, after: after}).Run(ctx)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
