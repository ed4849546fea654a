// Package remote is the client of the document API that accepts finalized drafts.
package remote

import (
	"context"
	"fmt"

	"docdraft/internal/model"
)

// Submitter sends a finalized draft to the document API.
type Submitter interface {
	Submit(ctx context.Context, d model.Draft) (*model.Receipt, error)
}

// CatalogSource lists the options a catalog picker offers.
type CatalogSource interface {
	Catalog(ctx context.Context, kind string) ([]model.CatalogItem, error)
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote %s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}
