// Package tui is the terminal front end of the composer and its pickers.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"docdraft/internal/composer"
	"docdraft/internal/draft"
	"docdraft/internal/model"
	"docdraft/internal/navigation"
	"docdraft/internal/picker"
	"docdraft/internal/remote"
	"docdraft/internal/storage"
)

// App is the bubbletea model. The screen shown is whatever route is on top of the stack.
type App struct {
	ctx       context.Context
	store     *draft.Store
	stack     *navigation.Stack
	collector *picker.Collector
	composer  *composer.Composer
	catalog   remote.CatalogSource
	library   storage.MediaLibrary
	prefix    string
	expiry    time.Duration
	root      string

	view   model.Draft
	status string
	busy   bool

	// composer text editing
	editing     editField
	inputBuffer string

	// picker state
	category picker.Category
	options  []model.CatalogItem
	filtered []model.CatalogItem
	query    string
	cursor   int
	selected []string
}

type editField string

const (
	editNone        editField = ""
	editTitle       editField = "title"
	editDescription editField = "description"
)

// Deps carries the collaborators of the App. Catalog and Library may be nil.
type Deps struct {
	Store     *draft.Store
	Stack     *navigation.Stack
	Collector *picker.Collector
	Composer  *composer.Composer
	Catalog   remote.CatalogSource
	Library   storage.MediaLibrary
	Prefix    string
	Expiry    time.Duration

	// UploadRoot bounds the paths the file picker may read.
	UploadRoot string
}

func New(ctx context.Context, d Deps) *App {
	a := &App{
		ctx:       ctx,
		store:     d.Store,
		stack:     d.Stack,
		collector: d.Collector,
		composer:  d.Composer,
		catalog:   d.Catalog,
		library:   d.Library,
		prefix:    d.Prefix,
		expiry:    d.Expiry,
		root:      d.UploadRoot,
	}
	a.view = a.composer.Focus()
	d.Stack.OnFocus(navigation.RouteComposer, func(map[string]string) {
		a.view = a.composer.Focus()
	})
	return a
}

type catalogMsg struct {
	category picker.Category
	items    []model.CatalogItem
}

type libraryMsg []storage.ObjectInfo

type submitDoneMsg struct {
	receipt *model.Receipt
	err     error
}

type errMsg struct{ error }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.stack.Current() == navigation.RouteComposer {
			return a.handleComposerKey(m)
		}
		return a.handlePickerKey(m)
	case catalogMsg:
		if m.category == a.category {
			a.options = m.items
			a.applyQuery()
		}
	case libraryMsg:
		a.options = make([]model.CatalogItem, 0, len(m))
		for _, o := range m {
			a.options = append(a.options, model.CatalogItem{ID: o.Key, Name: o.Key})
		}
		a.applyQuery()
	case submitDoneMsg:
		a.busy = false
		if m.err != nil {
			a.status = composer.UserMessage(m.err)
		} else {
			a.status = fmt.Sprintf("uploaded %s", m.receipt.ID)
		}
		a.view = a.composer.View()
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleComposerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing != editNone {
		return a.handleEditKey(m)
	}
	if a.busy {
		return a, nil
	}
	switch m.String() {
	case "q":
		return a, tea.Quit
	case "f":
		return a.openPicker(picker.CategoryFile)
	case "a":
		return a.openPicker(picker.CategoryFaculties)
	case "s":
		return a.openPicker(picker.CategorySubjects)
	case "l":
		return a.openPicker(picker.CategoryLists)
	case "i":
		return a.openPicker(picker.CategoryImages)
	case "c":
		return a.openPicker(picker.CategoryCover)
	case "t":
		a.editing = editTitle
		a.inputBuffer = a.view.Title
	case "d":
		a.editing = editDescription
		a.inputBuffer = a.view.Description
	case "x":
		a.view = a.composer.Discard()
		a.status = "draft discarded"
	case "u":
		if a.view.DocumentFile == nil {
			a.status = composer.UserMessage(composer.ErrDocumentFileRequired)
			return a, nil
		}
		a.busy = true
		a.status = "uploading..."
		return a, a.submitCmd()
	}
	return a, nil
}

func (a *App) handleEditKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.editing = editNone
	case tea.KeyEnter:
		if a.editing == editTitle {
			a.view = a.composer.SetTitle(a.inputBuffer)
		} else {
			a.view = a.composer.SetDescription(a.inputBuffer)
		}
		a.editing = editNone
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		a.inputBuffer = dropLastRune(a.inputBuffer)
	case tea.KeySpace:
		a.inputBuffer += " "
	case tea.KeyRunes:
		a.inputBuffer += string(m.Runes)
	}
	return a, nil
}

func (a *App) openPicker(cat picker.Category) (tea.Model, tea.Cmd) {
	sel, err := a.collector.Enter(cat)
	if err != nil {
		a.status = "error: " + err.Error()
		return a, nil
	}
	a.category = cat
	a.options, a.filtered = nil, nil
	a.query, a.inputBuffer, a.cursor = "", "", 0
	a.status = ""

	switch cat {
	case picker.CategoryFile:
		if sel.File != nil {
			if p, ok := picker.LocalPath(sel.File.URI); ok {
				a.inputBuffer = p
			}
		}
		return a, nil
	case picker.CategoryCover:
		a.selected = nil
		if sel.URI != nil {
			a.selected = []string{*sel.URI}
		}
	default:
		a.selected = append([]string{}, sel.Items...)
	}

	if cat.IsCatalog() {
		return a, a.loadCatalogCmd(cat)
	}
	if a.library != nil {
		// Presigned URLs in the draft do not map back to keys, so image pickers start empty.
		a.selected = nil
		return a, a.loadLibraryCmd()
	}
	return a, nil
}

func (a *App) handlePickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.busy {
		return a, nil
	}
	if m.Type == tea.KeyEsc {
		a.collector.Cancel(a.category)
		a.status = ""
		return a, nil
	}
	if a.category == picker.CategoryFile || a.manualImages() {
		return a.handleTextPickerKey(m)
	}

	switch m.Type {
	case tea.KeyUp:
		if a.cursor > 0 {
			a.cursor--
		}
	case tea.KeyDown:
		if a.cursor < len(a.filtered)-1 {
			a.cursor++
		}
	case tea.KeySpace:
		a.toggleCurrent()
	case tea.KeyEnter:
		return a.confirmList()
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if a.category.IsCatalog() {
			a.query = dropLastRune(a.query)
			a.applyQuery()
		}
	case tea.KeyRunes:
		if a.category.IsCatalog() {
			a.query += string(m.Runes)
			a.applyQuery()
		}
	}
	return a, nil
}

// handleTextPickerKey reads a path for the file picker, or comma separated
// URIs for the image pickers when no media library is configured.
func (a *App) handleTextPickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEnter:
		return a.runTextPicker()
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		a.inputBuffer = dropLastRune(a.inputBuffer)
	case tea.KeySpace:
		a.inputBuffer += " "
	case tea.KeyRunes:
		a.inputBuffer += string(m.Runes)
	}
	return a, nil
}

func (a *App) runTextPicker() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(a.inputBuffer)
	var out picker.Outcome
	switch a.category {
	case picker.CategoryFile:
		out = a.collector.PickFile(a.ctx, picker.FilesystemDocumentPicker{Path: input, Root: a.root})
	default:
		uris := splitList(input)
		p := picker.ImagePickerFunc(func(context.Context) (picker.ImageResult, error) {
			return picker.ImageResult{Canceled: input == "", URIs: uris}, nil
		})
		if a.category == picker.CategoryImages {
			out = a.collector.PickImages(a.ctx, p)
		} else {
			out = a.collector.PickCover(a.ctx, p)
		}
	}
	a.status = outcomeStatus(a.category, out)
	return a, nil
}

func (a *App) confirmList() (tea.Model, tea.Cmd) {
	switch a.category {
	case picker.CategoryImages, picker.CategoryCover:
		p := picker.LibraryImagePicker{Library: a.library, Keys: a.selected, Expiry: a.expiry}
		var out picker.Outcome
		if a.category == picker.CategoryImages {
			out = a.collector.PickImages(a.ctx, p)
		} else {
			out = a.collector.PickCover(a.ctx, p)
		}
		a.status = outcomeStatus(a.category, out)
		return a, nil
	}

	sel := picker.Selection{Category: a.category, Items: append([]string{}, a.selected...)}
	if err := a.collector.Confirm(sel); err != nil {
		a.status = "error: " + err.Error()
		return a, nil
	}
	a.status = outcomeStatus(a.category, picker.OutcomeConfirmed)
	return a, nil
}

func (a *App) toggleCurrent() {
	if a.cursor >= len(a.filtered) {
		return
	}
	id := a.filtered[a.cursor].ID
	if a.category == picker.CategoryCover {
		if len(a.selected) == 1 && a.selected[0] == id {
			a.selected = nil
		} else {
			a.selected = []string{id}
		}
		return
	}
	for i, s := range a.selected {
		if s == id {
			a.selected = append(a.selected[:i], a.selected[i+1:]...)
			return
		}
	}
	a.selected = append(a.selected, id)
}

func (a *App) isSelected(id string) bool {
	for _, s := range a.selected {
		if s == id {
			return true
		}
	}
	return false
}

func (a *App) applyQuery() {
	a.filtered = picker.Filter(a.options, a.query)
	if a.cursor >= len(a.filtered) {
		a.cursor = 0
	}
}

func (a *App) manualImages() bool {
	return (a.category == picker.CategoryImages || a.category == picker.CategoryCover) && a.library == nil
}

func (a *App) loadCatalogCmd(cat picker.Category) tea.Cmd {
	return func() tea.Msg {
		if a.catalog == nil {
			return catalogMsg{category: cat}
		}
		items, err := a.catalog.Catalog(a.ctx, string(cat))
		if err != nil {
			return errMsg{err}
		}
		return catalogMsg{category: cat, items: items}
	}
}

func (a *App) loadLibraryCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := a.library.List(a.ctx, a.prefix)
		if err != nil {
			return errMsg{err}
		}
		return libraryMsg(items)
	}
}

func (a *App) submitCmd() tea.Cmd {
	return func() tea.Msg {
		rec, err := a.composer.Submit(a.ctx)
		return submitDoneMsg{receipt: rec, err: err}
	}
}

func outcomeStatus(cat picker.Category, out picker.Outcome) string {
	switch out {
	case picker.OutcomeConfirmed:
		return fmt.Sprintf("%s updated", cat)
	case picker.OutcomeCanceled:
		return ""
	case picker.OutcomeFailed:
		return fmt.Sprintf("%s picker failed, nothing changed", cat)
	default:
		return fmt.Sprintf("%s picker returned an unusable selection, nothing changed", cat)
	}
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
