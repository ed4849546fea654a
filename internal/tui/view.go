package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docdraft/internal/navigation"
	"docdraft/internal/picker"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (a *App) View() string {
	var body string
	if a.stack.Current() == navigation.RouteComposer {
		body = a.renderComposer()
	} else {
		body = a.renderPicker()
	}
	if a.status != "" {
		body += "\n\n" + statusStyle.Render(a.status)
	}
	return body + "\n"
}

func (a *App) renderComposer() string {
	d := a.view
	var b strings.Builder
	b.WriteString(titleStyle.Render("New upload") + "\n\n")

	file := emptyStyle.Render("none")
	if d.DocumentFile != nil {
		file = d.DocumentFile.Name
		if d.DocumentFile.MimeType != "" {
			file += " (" + d.DocumentFile.MimeType + ")"
		}
	}
	cover := emptyStyle.Render("none")
	if d.CoverImage != nil {
		cover = *d.CoverImage
	}

	rows := [][2]string{
		{"[f] File", file},
		{"[t] Title", a.fieldText(editTitle, d.Title)},
		{"[d] Summary", a.fieldText(editDescription, d.Description)},
		{"[a] Faculties", listText(d.SelectedFaculties)},
		{"[s] Subjects", listText(d.SelectedSubjects)},
		{"[l] Lists", listText(d.SelectedLists)},
		{"[i] Images", listText(d.SelectedImages)},
		{"[c] Cover", cover},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r[0]) + " " + r[1] + "\n")
	}

	help := "u upload • x discard • q quit"
	if a.editing != editNone {
		help = "enter save • esc cancel"
	}
	b.WriteString("\n" + helpStyle.Render(help))
	return boxStyle.Render(b.String())
}

func (a *App) fieldText(f editField, value string) string {
	if a.editing == f {
		return cursorStyle.Render(a.inputBuffer + "_")
	}
	if value == "" {
		return emptyStyle.Render("empty")
	}
	return value
}

func (a *App) renderPicker() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(pickerTitle(a.category)) + "\n\n")

	if a.category == picker.CategoryFile || a.manualImages() {
		prompt := "Path"
		if a.category != picker.CategoryFile {
			prompt = "URIs (comma separated)"
		}
		b.WriteString(labelStyle.Render(prompt) + " " + cursorStyle.Render(a.inputBuffer+"_") + "\n")
		b.WriteString("\n" + helpStyle.Render("enter pick • esc cancel"))
		return boxStyle.Render(b.String())
	}

	if a.category.IsCatalog() {
		b.WriteString(labelStyle.Render("Filter") + " " + a.query + "\n\n")
	}
	if len(a.filtered) == 0 {
		b.WriteString(emptyStyle.Render("no options") + "\n")
	}
	for i, it := range a.filtered {
		mark := "[ ]"
		if a.isSelected(it.ID) {
			mark = checkedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", mark, it.Name)
		if i == a.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ move • space toggle • enter confirm • esc cancel"))
	return boxStyle.Render(b.String())
}

func pickerTitle(cat picker.Category) string {
	switch cat {
	case picker.CategoryFile:
		return "Choose a document"
	case picker.CategoryCover:
		return "Choose a cover image"
	case picker.CategoryImages:
		return "Choose images"
	default:
		return "Choose " + string(cat)
	}
}

func listText(items []string) string {
	if len(items) == 0 {
		return emptyStyle.Render("none")
	}
	return strings.Join(items, ", ")
}
