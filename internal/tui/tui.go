// Package tui renders command output and runs the master password prompt.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("prompt cancelled")

// PromptPassword asks for a master password on a terminal. With confirm set
// the password has to be typed twice. The prompt draws on out, so stdout
// stays free for command output.
func PromptPassword(ctx context.Context, in io.Reader, out io.Writer, title string, confirm bool) (string, error) {
	model := newPasswordModel(title, confirm)
	finalModel, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(*passwordModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quit || !result.done {
		return "", ErrUserQuit
	}

	return result.password, nil
}
