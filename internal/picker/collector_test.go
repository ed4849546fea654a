package picker

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docdraft/internal/draft"
	"docdraft/internal/metrics"
	"docdraft/internal/model"
	"docdraft/internal/navigation"
)

func newTestCollector(t *testing.T) (*Collector, *draft.Store, *navigation.Stack, *bytes.Buffer) {
	t.Helper()
	store := draft.NewStore()
	nav := navigation.NewStack(navigation.RouteComposer)
	var buf bytes.Buffer
	c := NewCollector(store, nav, WithLogger(zerolog.New(&buf)))
	return c, store, nav, &buf
}

func TestCollector_EnterSeedsFromStore(t *testing.T) {
	c, store, nav, _ := newTestCollector(t)
	store.SetSelectedSubjects([]string{"s1", "s2"})

	sel, err := c.Enter(CategorySubjects)
	require.NoError(t, err)

	assert.Equal(t, []string{"s1", "s2"}, sel.Items)
	assert.Equal(t, navigation.RoutePickerSubjects, nav.Current())
}

func TestCollector_EnterUnknownCategory(t *testing.T) {
	c, _, nav, _ := newTestCollector(t)

	_, err := c.Enter(Category("colors"))
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Equal(t, navigation.RouteComposer, nav.Current())
}

func TestCollector_ConfirmWritesAndGoesBack(t *testing.T) {
	c, store, nav, _ := newTestCollector(t)
	_, err := c.Enter(CategoryFaculties)
	require.NoError(t, err)

	err = c.Confirm(Selection{Category: CategoryFaculties, Items: []string{"f1", "f2"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"f1", "f2"}, store.SelectedFaculties())
	assert.Equal(t, []string{}, store.SelectedSubjects())
	assert.Equal(t, navigation.RouteComposer, nav.Current())
}

func TestCollector_ConfirmInvalidStaysOpen(t *testing.T) {
	c, store, nav, _ := newTestCollector(t)
	store.SetSelectedLists([]string{"keep"})
	_, err := c.Enter(CategoryLists)
	require.NoError(t, err)

	err = c.Confirm(Selection{Category: CategoryLists, Items: []string{"ok", "  "}})
	assert.ErrorIs(t, err, ErrInvalidSelection)

	assert.Equal(t, []string{"keep"}, store.SelectedLists())
	assert.Equal(t, navigation.RoutePickerLists, nav.Current())
}

func TestCollector_CancelDoesNotWrite(t *testing.T) {
	c, store, nav, _ := newTestCollector(t)
	store.SetSelectedImages([]string{"img"})
	_, _ = c.Enter(CategoryImages)

	c.Cancel(CategoryImages)

	assert.Equal(t, []string{"img"}, store.SelectedImages())
	assert.Equal(t, navigation.RouteComposer, nav.Current())
}

func TestCollector_PickFile(t *testing.T) {
	existing := &model.DocumentFile{URI: "file:///old.pdf", Name: "old.pdf", MimeType: "application/pdf"}
	picked := model.DocumentFile{URI: "content://docs/new.pdf", Name: "new.pdf", MimeType: "application/pdf"}

	tests := []struct {
		name     string
		result   DocumentResult
		err      error
		want     Outcome
		wantFile *model.DocumentFile
		wantWarn bool
	}{
		{
			name:     "single asset is stored",
			result:   DocumentResult{Assets: []model.DocumentFile{picked}},
			want:     OutcomeConfirmed,
			wantFile: &picked,
		},
		{
			name:     "canceled leaves store unchanged",
			result:   DocumentResult{Canceled: true},
			want:     OutcomeCanceled,
			wantFile: existing,
		},
		{
			name:     "device failure is logged and ignored",
			err:      errors.New("permission denied"),
			want:     OutcomeFailed,
			wantFile: existing,
			wantWarn: true,
		},
		{
			name:     "two assets are rejected",
			result:   DocumentResult{Assets: []model.DocumentFile{picked, picked}},
			want:     OutcomeInvalid,
			wantFile: existing,
			wantWarn: true,
		},
		{
			name:     "server file outside the upload root is rejected",
			result:   DocumentResult{Assets: []model.DocumentFile{{URI: "file:///etc/passwd", Name: "passwd"}}},
			want:     OutcomeInvalid,
			wantFile: existing,
			wantWarn: true,
		},
		{
			name:     "asset without uri is rejected",
			result:   DocumentResult{Assets: []model.DocumentFile{{Name: "x.pdf"}}},
			want:     OutcomeInvalid,
			wantFile: existing,
			wantWarn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, store, nav, logs := newTestCollector(t)
			store.SetDocumentFile(existing)
			_, err := c.Enter(CategoryFile)
			require.NoError(t, err)

			got := c.PickFile(context.Background(), DocumentPickerFunc(func(context.Context) (DocumentResult, error) {
				return tt.result, tt.err
			}))

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFile, store.DocumentFile())
			assert.Equal(t, navigation.RouteComposer, nav.Current())
			if tt.wantWarn {
				assert.Contains(t, logs.String(), `"level":"warn"`)
			}
		})
	}
}

func TestCollector_PickImagesAndCover(t *testing.T) {
	c, store, nav, _ := newTestCollector(t)

	_, _ = c.Enter(CategoryImages)
	out := c.PickImages(context.Background(), ImagePickerFunc(func(context.Context) (ImageResult, error) {
		return ImageResult{URIs: []string{"uri://1", "uri://2"}}, nil
	}))
	assert.Equal(t, OutcomeConfirmed, out)
	assert.Equal(t, []string{"uri://1", "uri://2"}, store.SelectedImages())

	_, _ = c.Enter(CategoryCover)
	out = c.PickCover(context.Background(), ImagePickerFunc(func(context.Context) (ImageResult, error) {
		return ImageResult{URIs: []string{"uri://1", "uri://2"}}, nil
	}))
	assert.Equal(t, OutcomeInvalid, out)
	assert.Nil(t, store.CoverImage())

	_, _ = c.Enter(CategoryCover)
	out = c.PickCover(context.Background(), ImagePickerFunc(func(context.Context) (ImageResult, error) {
		return ImageResult{URIs: []string{"uri://cover"}}, nil
	}))
	assert.Equal(t, OutcomeConfirmed, out)
	require.NotNil(t, store.CoverImage())
	assert.Equal(t, "uri://cover", *store.CoverImage())
	assert.Equal(t, navigation.RouteComposer, nav.Current())
}

func TestCollector_PickImagesCanceled(t *testing.T) {
	c, store, _, _ := newTestCollector(t)
	store.SetSelectedImages([]string{"keep"})

	out := c.PickImages(context.Background(), ImagePickerFunc(func(context.Context) (ImageResult, error) {
		return ImageResult{Canceled: true}, nil
	}))

	assert.Equal(t, OutcomeCanceled, out)
	assert.Equal(t, []string{"keep"}, store.SelectedImages())
}

func TestCollector_ConfirmFileUploadRoot(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	inside := filepath.Join(root, "thesis.pdf")
	require.NoError(t, os.WriteFile(inside, []byte("%PDF-1.4"), 0o600))

	store := draft.NewStore()
	nav := navigation.NewStack(navigation.RouteComposer)
	c := NewCollector(store, nav, WithUploadRoot(root))

	_, _ = c.Enter(CategoryFile)
	err = c.Confirm(Selection{Category: CategoryFile, File: &model.DocumentFile{URI: "/etc/passwd", Name: "passwd"}})
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.ErrorIs(t, err, ErrOutsideUploadRoot)
	assert.Nil(t, store.DocumentFile())
	assert.Equal(t, navigation.RoutePickerFile, nav.Current())

	f := &model.DocumentFile{URI: inside, Name: "thesis.pdf"}
	require.NoError(t, c.Confirm(Selection{Category: CategoryFile, File: f}))
	assert.Equal(t, f, store.DocumentFile())
	assert.Equal(t, navigation.RouteComposer, nav.Current())
}

func TestCollector_ComposerFocusSeesWrite(t *testing.T) {
	store := draft.NewStore()
	nav := navigation.NewStack(navigation.RouteComposer)
	c := NewCollector(store, nav)

	var seen []string
	nav.OnFocus(navigation.RouteComposer, func(map[string]string) {
		seen = store.SelectedLists()
	})

	_, _ = c.Enter(CategoryLists)
	require.NoError(t, c.Confirm(Selection{Category: CategoryLists, Items: []string{"l1"}}))

	assert.Equal(t, []string{"l1"}, seen)
}

func TestCollector_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewWorkflow(reg)
	require.NoError(t, err)

	c := NewCollector(draft.NewStore(), navigation.NewStack(navigation.RouteComposer), WithMetrics(m))
	c.Cancel(CategoryFaculties)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, mfs, 1)
	assert.Equal(t, "docdraft_picker_outcomes_total", mfs[0].GetName())
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "docdraft_picker_outcomes_total"))
}

func TestValidate(t *testing.T) {
	empty := ""
	assert.ErrorIs(t, Validate(Selection{Category: CategoryFile}), ErrInvalidSelection)
	assert.ErrorIs(t, Validate(Selection{Category: CategoryCover, URI: &empty}), ErrInvalidSelection)
	assert.NoError(t, Validate(Selection{Category: CategoryCover}))
	assert.NoError(t, Validate(Selection{Category: CategorySubjects}))
	assert.ErrorIs(t, Validate(Selection{Category: "nope"}), ErrUnknownCategory)
}
