package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docdraft/internal/composer"
	"docdraft/internal/draft"
	"docdraft/internal/model"
	"docdraft/internal/navigation"
	"docdraft/internal/picker"
	remoteMocks "docdraft/internal/remote/mocks"
	"docdraft/internal/storage"
	storageMocks "docdraft/internal/storage/mocks"
)

type harness struct {
	root      string
	app       *App
	store     *draft.Store
	stack     *navigation.Stack
	submitter *remoteMocks.MockSubmitter
	catalog   *remoteMocks.MockCatalogSource
}

func newHarness(t *testing.T, lib storage.MediaLibrary) *harness {
	t.Helper()
	store := draft.NewStore()
	stack := navigation.NewStack(navigation.RouteComposer)
	sub := new(remoteMocks.MockSubmitter)
	cat := new(remoteMocks.MockCatalogSource)
	comp := composer.New(store, sub)
	comp.Attach(stack)
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	deps := Deps{
		Store:      store,
		Stack:      stack,
		Collector:  picker.NewCollector(store, stack, picker.WithUploadRoot(root)),
		Composer:   comp,
		Catalog:    cat,
		Prefix:     "images/",
		UploadRoot: root,
	}
	if lib != nil {
		deps.Library = lib
	}
	app := New(context.Background(), deps)
	return &harness{root: root, app: app, store: store, stack: stack, submitter: sub, catalog: cat}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send applies msg and runs any returned command synchronously, feeding its message back.
func (h *harness) send(t *testing.T, msg tea.Msg) {
	t.Helper()
	_, cmd := h.app.Update(msg)
	for cmd != nil {
		next := cmd()
		if _, ok := next.(tea.QuitMsg); ok || next == nil {
			return
		}
		_, cmd = h.app.Update(next)
	}
}

func TestCatalogPickerFlow(t *testing.T) {
	h := newHarness(t, nil)
	h.store.SetSelectedFaculties([]string{"f9"})
	h.catalog.On("Catalog", mock.Anything, "faculties").Return([]model.CatalogItem{
		{ID: "f1", Name: "Engineering"},
		{ID: "f2", Name: "Medicine"},
	}, nil)

	h.send(t, keyRunes("a"))
	require.Equal(t, navigation.RoutePickerFaculties, h.stack.Current())
	assert.Len(t, h.app.filtered, 2)

	h.send(t, keyRunes("med"))
	require.Len(t, h.app.filtered, 1)
	assert.Equal(t, "f2", h.app.filtered[0].ID)

	h.send(t, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Contains(t, h.app.View(), "Medicine")

	h.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, navigation.RouteComposer, h.stack.Current())
	assert.Equal(t, []string{"f9", "f2"}, h.store.SelectedFaculties())
	assert.Equal(t, []string{"f9", "f2"}, h.app.view.SelectedFaculties)
	assert.Equal(t, "faculties updated", h.app.status)
}

func TestPickerEscapeLeavesDraft(t *testing.T) {
	h := newHarness(t, nil)
	h.catalog.On("Catalog", mock.Anything, "subjects").Return([]model.CatalogItem{{ID: "s1", Name: "Algebra"}}, nil)
	before := h.store.Snapshot()

	h.send(t, keyRunes("s"))
	h.send(t, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	h.send(t, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, navigation.RouteComposer, h.stack.Current())
	assert.Equal(t, before, h.store.Snapshot())
}

func TestCatalogError(t *testing.T) {
	h := newHarness(t, nil)
	h.catalog.On("Catalog", mock.Anything, "lists").Return(nil, errors.New("offline"))

	h.send(t, keyRunes("l"))
	assert.Equal(t, "error: offline", h.app.status)
	assert.Equal(t, navigation.RoutePickerLists, h.stack.Current())
}

func TestEditTitle(t *testing.T) {
	h := newHarness(t, nil)

	h.send(t, keyRunes("t"))
	h.send(t, keyRunes("Lab"))
	h.send(t, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	h.send(t, keyRunes("notez"))
	h.send(t, tea.KeyMsg{Type: tea.KeyBackspace})
	h.send(t, keyRunes("s"))
	h.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Lab notes", h.store.Title())
	assert.Equal(t, editNone, h.app.editing)
}

func TestFilePickerFromPath(t *testing.T) {
	h := newHarness(t, nil)
	path := filepath.Join(h.root, "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	h.send(t, keyRunes("f"))
	h.send(t, keyRunes(path))
	h.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, h.store.DocumentFile())
	assert.Equal(t, "report.pdf", h.store.DocumentFile().Name)
	assert.Equal(t, "application/pdf", h.store.DocumentFile().MimeType)
	assert.Equal(t, navigation.RouteComposer, h.stack.Current())
	assert.Contains(t, h.app.View(), "report.pdf")
}

func TestFilePickerOutsideUploadRoot(t *testing.T) {
	h := newHarness(t, nil)

	h.send(t, keyRunes("f"))
	h.send(t, keyRunes("/etc/passwd"))
	h.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, h.store.DocumentFile())
	assert.Equal(t, navigation.RouteComposer, h.stack.Current())
	assert.Contains(t, h.app.status, "failed")
}

func TestManualImageURIs(t *testing.T) {
	h := newHarness(t, nil)

	h.send(t, keyRunes("i"))
	h.send(t, keyRunes("content://1,content://2"))
	h.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"content://1", "content://2"}, h.store.SelectedImages())
}

func TestLibraryCoverPicker(t *testing.T) {
	lib := new(storageMocks.MockMediaLibrary)
	lib.On("List", mock.Anything, "images/").Return([]storage.ObjectInfo{{Key: "images/a.png"}, {Key: "images/b.png"}}, nil)
	lib.On("Stat", mock.Anything, "images/b.png").Return(storage.ObjectInfo{Key: "images/b.png"}, nil)
	lib.On("PresignGet", mock.Anything, "images/b.png", mock.Anything).Return("https://s3/b.png", nil)
	h := newHarness(t, lib)

	h.send(t, keyRunes("c"))
	require.Len(t, h.app.filtered, 2)
	h.send(t, tea.KeyMsg{Type: tea.KeyDown})
	h.send(t, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	h.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, h.store.CoverImage())
	assert.Equal(t, "https://s3/b.png", *h.store.CoverImage())
	lib.AssertExpectations(t)
}

func TestSubmit(t *testing.T) {
	t.Run("without a file", func(t *testing.T) {
		h := newHarness(t, nil)
		h.send(t, keyRunes("u"))
		assert.Equal(t, "Choose a document before uploading.", h.app.status)
		h.submitter.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("success clears the draft", func(t *testing.T) {
		h := newHarness(t, nil)
		h.store.SetDocumentFile(&model.DocumentFile{URI: "file:///a.pdf", Name: "a.pdf"})
		h.app.view = h.store.Snapshot()
		h.submitter.On("Submit", mock.Anything, mock.Anything).Return(&model.Receipt{ID: "doc-1"}, nil).Once()

		h.send(t, keyRunes("u"))
		assert.Equal(t, "uploaded doc-1", h.app.status)
		assert.Equal(t, draft.Initial(), h.app.view)
	})

	t.Run("failure keeps the draft", func(t *testing.T) {
		h := newHarness(t, nil)
		h.store.SetDocumentFile(&model.DocumentFile{URI: "file:///a.pdf", Name: "a.pdf"})
		h.app.view = h.store.Snapshot()
		h.submitter.On("Submit", mock.Anything, mock.Anything).Return(nil, errors.New("503")).Once()

		h.send(t, keyRunes("u"))
		assert.Contains(t, h.app.status, "try again")
		assert.NotNil(t, h.store.DocumentFile())
	})
}

func TestDiscardAndQuit(t *testing.T) {
	h := newHarness(t, nil)
	h.store.SetTitle("gone")
	h.app.view = h.store.Snapshot()

	h.send(t, keyRunes("x"))
	assert.Equal(t, draft.Initial(), h.store.Snapshot())

	_, cmd := h.app.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
