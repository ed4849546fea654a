// Package picker implements the screens that collect one draft attribute each.
package picker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"docdraft/internal/draft"
	"docdraft/internal/logger"
	"docdraft/internal/metrics"
	"docdraft/internal/model"
	"docdraft/internal/navigation"
)

var ErrInvalidSelection = errors.New("invalid selection")

// Outcome is how a picker flow ended.
type Outcome string

const (
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeCanceled  Outcome = "canceled"
	OutcomeFailed    Outcome = "failed"
	OutcomeInvalid   Outcome = "invalid"
)

// Selection is the value a picker holds for its category.
// File is read for CategoryFile, URI for CategoryCover and Items for the rest.
type Selection struct {
	Category Category            `json:"category"`
	File     *model.DocumentFile `json:"file,omitempty"`
	Items    []string            `json:"items,omitempty"`
	URI      *string             `json:"uri,omitempty"`
}

// Collector runs picker screens against a draft store.
// A picker writes at most one store field, and only after its selection is complete.
type Collector struct {
	store   *draft.Store
	nav     navigation.Navigator
	log     zerolog.Logger
	metrics *metrics.Workflow
	root    string
}

type Option func(*Collector)

// WithUploadRoot sets the directory local document files must live under.
// Without it, file selections pointing at local paths are rejected.
func WithUploadRoot(root string) Option {
	return func(c *Collector) { c.root = root }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Collector) { c.log = l }
}

func WithMetrics(m *metrics.Workflow) Option {
	return func(c *Collector) { c.metrics = m }
}

func NewCollector(store *draft.Store, nav navigation.Navigator, opts ...Option) *Collector {
	c := &Collector{store: store, nav: nav, log: logger.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Seed returns the store's current value for cat.
func (c *Collector) Seed(cat Category) Selection {
	d := c.store.Snapshot()
	sel := Selection{Category: cat}
	switch cat {
	case CategoryFile:
		sel.File = d.DocumentFile
	case CategoryFaculties:
		sel.Items = d.SelectedFaculties
	case CategorySubjects:
		sel.Items = d.SelectedSubjects
	case CategoryLists:
		sel.Items = d.SelectedLists
	case CategoryImages:
		sel.Items = d.SelectedImages
	case CategoryCover:
		sel.URI = d.CoverImage
	}
	return sel
}

// Enter opens the picker for cat, seeded with the store's current value.
func (c *Collector) Enter(cat Category) (Selection, error) {
	if _, err := ParseCategory(string(cat)); err != nil {
		return Selection{}, err
	}
	sel := c.Seed(cat)
	c.nav.Navigate(cat.Route(), map[string]string{"category": string(cat)})
	return sel, nil
}

// Confirm validates sel, writes it and navigates back.
// An invalid selection is rejected without writing and the picker stays open.
func (c *Collector) Confirm(sel Selection) error {
	if err := c.validate(sel); err != nil {
		return err
	}
	c.write(sel)
	c.finish(sel.Category, OutcomeConfirmed)
	return nil
}

// Cancel navigates back without touching the store.
func (c *Collector) Cancel(cat Category) {
	c.finish(cat, OutcomeCanceled)
}

// PickFile runs the device document picker and stores its single result.
// Cancellation, failures and unusable results navigate back without writing.
func (c *Collector) PickFile(ctx context.Context, p DocumentPicker) Outcome {
	res, err := p.PickDocument(ctx)
	if err != nil {
		c.log.Warn().Err(err).Str("category", string(CategoryFile)).Msg("document picker failed")
		return c.finish(CategoryFile, OutcomeFailed)
	}
	if res.Canceled {
		return c.finish(CategoryFile, OutcomeCanceled)
	}
	if len(res.Assets) != 1 {
		c.log.Warn().Int("assets", len(res.Assets)).Str("category", string(CategoryFile)).Msg("document picker must return exactly one file")
		return c.finish(CategoryFile, OutcomeInvalid)
	}

	asset := res.Assets[0]
	return c.pickConfirm(Selection{Category: CategoryFile, File: &asset})
}

// PickImages runs the media library picker and stores every returned URI.
func (c *Collector) PickImages(ctx context.Context, p ImagePicker) Outcome {
	uris, out, ok := c.runImagePicker(ctx, CategoryImages, p)
	if !ok {
		return out
	}
	return c.pickConfirm(Selection{Category: CategoryImages, Items: uris})
}

// PickCover runs the media library picker and stores its single URI as the cover image.
func (c *Collector) PickCover(ctx context.Context, p ImagePicker) Outcome {
	uris, out, ok := c.runImagePicker(ctx, CategoryCover, p)
	if !ok {
		return out
	}
	if len(uris) != 1 {
		c.log.Warn().Int("images", len(uris)).Str("category", string(CategoryCover)).Msg("cover picker must return exactly one image")
		return c.finish(CategoryCover, OutcomeInvalid)
	}
	return c.pickConfirm(Selection{Category: CategoryCover, URI: &uris[0]})
}

func (c *Collector) runImagePicker(ctx context.Context, cat Category, p ImagePicker) ([]string, Outcome, bool) {
	res, err := p.PickImages(ctx)
	if err != nil {
		c.log.Warn().Err(err).Str("category", string(cat)).Msg("image picker failed")
		return nil, c.finish(cat, OutcomeFailed), false
	}
	if res.Canceled {
		return nil, c.finish(cat, OutcomeCanceled), false
	}
	return res.URIs, "", true
}

func (c *Collector) pickConfirm(sel Selection) Outcome {
	if err := c.validate(sel); err != nil {
		c.log.Warn().Err(err).Str("category", string(sel.Category)).Msg("picker returned an unusable selection")
		return c.finish(sel.Category, OutcomeInvalid)
	}
	c.write(sel)
	return c.finish(sel.Category, OutcomeConfirmed)
}

func (c *Collector) write(sel Selection) {
	switch sel.Category {
	case CategoryFile:
		c.store.SetDocumentFile(sel.File)
	case CategoryFaculties:
		c.store.SetSelectedFaculties(sel.Items)
	case CategorySubjects:
		c.store.SetSelectedSubjects(sel.Items)
	case CategoryLists:
		c.store.SetSelectedLists(sel.Items)
	case CategoryImages:
		c.store.SetSelectedImages(sel.Items)
	case CategoryCover:
		c.store.SetCoverImage(sel.URI)
	}
}

func (c *Collector) finish(cat Category, out Outcome) Outcome {
	c.metrics.PickerOutcome(string(cat), string(out))
	c.log.Debug().Str("category", string(cat)).Str("outcome", string(out)).Msg("picker finished")
	c.nav.Back()
	return out
}

// CheckFile rejects a document file whose local path lies outside the upload root.
func (c *Collector) CheckFile(f *model.DocumentFile) error {
	if f == nil {
		return nil
	}
	if _, _, err := ResolveLocal(c.root, f.URI); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}
	return nil
}

func (c *Collector) validate(sel Selection) error {
	if err := Validate(sel); err != nil {
		return err
	}
	if sel.Category == CategoryFile {
		return c.CheckFile(sel.File)
	}
	return nil
}

// Validate checks a selection before it is written.
func Validate(sel Selection) error {
	switch sel.Category {
	case CategoryFile:
		if sel.File == nil {
			return fmt.Errorf("%w: a file is required", ErrInvalidSelection)
		}
		if strings.TrimSpace(sel.File.URI) == "" || strings.TrimSpace(sel.File.Name) == "" {
			return fmt.Errorf("%w: file uri and name are required", ErrInvalidSelection)
		}
	case CategoryFaculties, CategorySubjects, CategoryLists, CategoryImages:
		for i, item := range sel.Items {
			if strings.TrimSpace(item) == "" {
				return fmt.Errorf("%w: item %d is empty", ErrInvalidSelection, i)
			}
		}
	case CategoryCover:
		if sel.URI != nil && strings.TrimSpace(*sel.URI) == "" {
			return fmt.Errorf("%w: cover uri is empty", ErrInvalidSelection)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCategory, sel.Category)
	}
	return nil
}
