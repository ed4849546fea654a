// Package composer implements the screen that reviews the draft and submits it.
package composer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"docdraft/internal/draft"
	"docdraft/internal/logger"
	"docdraft/internal/metrics"
	"docdraft/internal/model"
	"docdraft/internal/navigation"
	"docdraft/internal/remote"
)

var (
	ErrDocumentFileRequired = errors.New("a document file is required")
	ErrSubmissionFailed     = errors.New("submission failed")

	errEmptyReceipt = errors.New("document api returned no receipt")
)

// Composer shows the accumulated draft and submits it.
type Composer struct {
	store     *draft.Store
	submitter remote.Submitter
	log       zerolog.Logger
	metrics   *metrics.Workflow

	mu   sync.RWMutex
	view model.Draft
}

type Option func(*Composer)

func WithLogger(l zerolog.Logger) Option {
	return func(c *Composer) { c.log = l }
}

func WithMetrics(m *metrics.Workflow) Option {
	return func(c *Composer) { c.metrics = m }
}

func New(store *draft.Store, submitter remote.Submitter, opts ...Option) *Composer {
	c := &Composer{
		store:     store,
		submitter: submitter,
		log:       logger.Nop(),
		view:      store.Snapshot(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attach re-reads the draft whenever the composer route regains focus on stack.
func (c *Composer) Attach(stack *navigation.Stack) {
	stack.OnFocus(navigation.RouteComposer, func(map[string]string) {
		c.Focus()
	})
}

// Focus re-reads every draft field and returns the refreshed view.
func (c *Composer) Focus() model.Draft {
	d := c.store.Snapshot()
	c.mu.Lock()
	c.view = d
	c.mu.Unlock()
	return d.Clone()
}

// View returns the draft as of the last Focus.
func (c *Composer) View() model.Draft {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view.Clone()
}

func (c *Composer) SetTitle(title string) model.Draft {
	c.store.SetTitle(title)
	return c.Focus()
}

func (c *Composer) SetDescription(description string) model.Draft {
	c.store.SetDescription(description)
	return c.Focus()
}

// Submit sends the current draft. Without a document file nothing is sent.
// On success the draft is cleared unless it was edited meanwhile; on failure it
// is kept so the user can retry.
func (c *Composer) Submit(ctx context.Context) (*model.Receipt, error) {
	d := c.store.Snapshot()
	if d.DocumentFile == nil {
		c.metrics.Submission("rejected")
		return nil, ErrDocumentFileRequired
	}

	rec, err := c.submitter.Submit(ctx, d)
	if err == nil && rec == nil {
		err = errEmptyReceipt
	}
	if err != nil {
		c.metrics.Submission("failed")
		c.log.Error().Err(err).Str("file", d.DocumentFile.Name).Msg("draft submission failed")
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	c.metrics.Submission("success")
	c.log.Info().Str("document_id", rec.ID).Str("file", d.DocumentFile.Name).Msg("draft submitted")
	// Edits made while the upload was in flight are not part of rec, so they stay.
	if !c.store.ClearIf(d) {
		c.log.Warn().Str("document_id", rec.ID).Msg("draft changed during submission, keeping it")
	}
	c.Focus()
	return rec, nil
}

// Discard drops the draft.
func (c *Composer) Discard() model.Draft {
	c.store.Clear()
	return c.Focus()
}

// UserMessage is the notice shown to the user for err.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDocumentFileRequired):
		return "Choose a document before uploading."
	case errors.Is(err, ErrSubmissionFailed):
		return "The upload did not go through. Your draft was kept, try again."
	default:
		return "Something went wrong."
	}
}
