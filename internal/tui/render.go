package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-small-safe/models"
)

const maxNameWidth = 40

// renderTable draws rows under headers. Column 1 holds ids and is dimmed.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return idStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String() + "\n"
}

// RenderGroups lists groups with their number of active entries.
func RenderGroups(groups []models.Group) string {
	if len(groups) == 0 {
		return "no groups\n"
	}

	rows := make([][]string, 0, len(groups))
	for i, g := range groups {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			g.ID.String(),
			fitText(g.Name, maxNameWidth),
			strconv.Itoa(len(g.ActiveEntries())),
			formatTime(g.UpdatedAt),
		})
	}

	return renderTable([]string{"#", "ID", "NAME", "ENTRIES", "UPDATED"}, rows)
}

// RenderEntries lists entries without their values.
func RenderEntries(entries []models.Entry) string {
	if len(entries) == 0 {
		return "no entries\n"
	}

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.ID.String(),
			fitText(orDash(e.Name), maxNameWidth),
			formatTime(e.UpdatedAt),
		})
	}

	return renderTable([]string{"#", "ID", "NAME", "UPDATED"}, rows)
}

// RenderHistory lists earlier values of one entry, oldest first.
func RenderHistory(history []models.Entry) string {
	if len(history) == 0 {
		return "no history\n"
	}

	rows := make([][]string, 0, len(history))
	for i, e := range history {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			formatTime(e.UpdatedAt),
			e.Value,
		})
	}

	return renderTable([]string{"#", "CHANGED", "VALUE"}, rows)
}

// RenderFindResult prints matching groups followed by matching entries.
func RenderFindResult(result models.FindResult) string {
	if len(result.Groups) == 0 && len(result.Entries) == 0 {
		return "nothing matches " + strconv.Quote(result.Query) + "\n"
	}

	var b strings.Builder
	if len(result.Groups) > 0 {
		b.WriteString(titleStyle.Render("Groups"))
		b.WriteString("\n")
		b.WriteString(RenderGroups(result.Groups))
	}

	if len(result.Entries) > 0 {
		rows := make([][]string, 0, len(result.Entries))
		for i, m := range result.Entries {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				m.Entry.ID.String(),
				fitText(m.Group.Name, maxNameWidth),
				fitText(orDash(m.Entry.Name), maxNameWidth),
			})
		}
		b.WriteString(titleStyle.Render("Entries"))
		b.WriteString("\n")
		b.WriteString(renderTable([]string{"#", "ID", "GROUP", "NAME"}, rows))
	}

	return b.String()
}

// RenderLines prints one item per line, for output meant to be piped.
func RenderLines(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return strings.Join(items, "\n") + "\n"
}
