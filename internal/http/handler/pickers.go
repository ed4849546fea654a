package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"docdraft/internal/composer"
	"docdraft/internal/model"
	"docdraft/internal/navigation"
	"docdraft/internal/picker"
	"docdraft/internal/remote"
	"docdraft/internal/storage"
)

type pickerResponse struct {
	Selection  picker.Selection    `json:"selection"`
	Options    []model.CatalogItem `json:"options,omitempty"`
	Navigation navigation.Event    `json:"navigation"`
}

type outcomeResponse struct {
	Outcome    picker.Outcome   `json:"outcome"`
	Draft      model.Draft      `json:"draft"`
	Navigation navigation.Event `json:"navigation"`
}

// pickRequest is either a filesystem path / media library keys to resolve,
// or a result the client's own picker already produced.
type pickRequest struct {
	Path     string               `json:"path"`
	Keys     []string             `json:"keys"`
	Canceled bool                 `json:"canceled"`
	Assets   []model.DocumentFile `json:"assets"`
	URIs     []string             `json:"uris"`
}

func categoryParam(c *fiber.Ctx) (picker.Category, error) {
	cat, err := picker.ParseCategory(c.Params("category"))
	if err != nil {
		return "", writeError(c, fiber.StatusNotFound, "UNKNOWN_CATEGORY", "unknown picker category")
	}
	return cat, nil
}

// EnterPicker opens a picker seeded with the draft's current value.
// Catalog pickers also return their options, narrowed by ?q=.
//
// @Summary  Open a picker
// @Tags     pickers
// @Produce  json
// @Param    category path  string true  "file, faculties, subjects, lists, images or cover"
// @Param    q        query string false "option filter"
// @Success  200 {object} pickerResponse
// @Failure  404 {object} errorPayload
// @Failure  502 {object} errorPayload
// @Router   /pickers/{category} [get]
func EnterPicker(col *picker.Collector, catalog remote.CatalogSource, stack *navigation.Stack) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cat, err := categoryParam(c)
		if err != nil {
			return err
		}

		var options []model.CatalogItem
		if cat.IsCatalog() && catalog != nil {
			items, err := catalog.Catalog(c.UserContext(), string(cat))
			if err != nil {
				zerolog.Ctx(c.UserContext()).Warn().Err(err).Str("category", string(cat)).Msg("catalog unavailable")
				return writeError(c, fiber.StatusBadGateway, "CATALOG_UNAVAILABLE", "options could not be loaded, try again")
			}
			options = picker.Filter(items, c.Query("q"))
		}

		sel, err := col.Enter(cat)
		if err != nil {
			return writeError(c, fiber.StatusNotFound, "UNKNOWN_CATEGORY", "unknown picker category")
		}
		return c.JSON(pickerResponse{Selection: sel, Options: options, Navigation: stack.LastEvent()})
	}
}

// ConfirmPicker writes the selection and returns to the composer.
// An invalid selection is rejected and the picker stays open.
//
// @Summary  Confirm a picker selection
// @Tags     pickers
// @Accept   json
// @Produce  json
// @Param    category path string           true "picker category"
// @Param    body     body picker.Selection true "selection"
// @Success  200 {object} outcomeResponse
// @Failure  400 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Router   /pickers/{category}/confirm [post]
func ConfirmPicker(col *picker.Collector, comp *composer.Composer, stack *navigation.Stack) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cat, err := categoryParam(c)
		if err != nil {
			return err
		}
		var sel picker.Selection
		if err := c.BodyParser(&sel); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		sel.Category = cat

		if err := col.Confirm(sel); err != nil {
			if errors.Is(err, picker.ErrInvalidSelection) {
				return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_SELECTION", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(outcomeResponse{Outcome: picker.OutcomeConfirmed, Draft: comp.View(), Navigation: stack.LastEvent()})
	}
}

// CancelPicker returns to the composer without writing.
//
// @Summary  Cancel a picker
// @Tags     pickers
// @Produce  json
// @Param    category path string true "picker category"
// @Success  200 {object} outcomeResponse
// @Router   /pickers/{category}/cancel [post]
func CancelPicker(col *picker.Collector, comp *composer.Composer, stack *navigation.Stack) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cat, err := categoryParam(c)
		if err != nil {
			return err
		}
		col.Cancel(cat)
		return c.JSON(outcomeResponse{Outcome: picker.OutcomeCanceled, Draft: comp.View(), Navigation: stack.LastEvent()})
	}
}

// Pick runs a device picker: the file picker reads a path under the upload root, the image
// pickers resolve media library keys. A client that ran its own picker sends
// the result instead. Failures are reported as an outcome, never as an error.
//
// @Summary  Run a device picker
// @Tags     pickers
// @Accept   json
// @Produce  json
// @Param    category path string      true "file, images or cover"
// @Param    body     body pickRequest true "path, keys or a picker result"
// @Success  200 {object} outcomeResponse
// @Failure  400 {object} errorPayload
// @Failure  403 {object} errorPayload
// @Failure  503 {object} errorPayload
// @Router   /pickers/{category}/pick [post]
func Pick(col *picker.Collector, comp *composer.Composer, stack *navigation.Stack, lib storage.MediaLibrary, expiry time.Duration, uploadRoot string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cat, err := categoryParam(c)
		if err != nil {
			return err
		}
		var req pickRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		ctx := c.UserContext()
		var out picker.Outcome
		switch cat {
		case picker.CategoryFile:
			if req.Path != "" && uploadRoot == "" {
				return writeError(c, fiber.StatusForbidden, "LOCAL_FILES_DISABLED", "reading server files is disabled")
			}
			out = col.PickFile(ctx, documentPicker(req, uploadRoot))
		case picker.CategoryImages, picker.CategoryCover:
			if len(req.Keys) > 0 && lib == nil {
				return writeError(c, fiber.StatusServiceUnavailable, "LIBRARY_UNAVAILABLE", "media library is not configured")
			}
			p := imagePicker(req, lib, expiry)
			if cat == picker.CategoryImages {
				out = col.PickImages(ctx, p)
			} else {
				out = col.PickCover(ctx, p)
			}
		default:
			return writeError(c, fiber.StatusBadRequest, "PICK_UNSUPPORTED", "this picker has no device picker")
		}
		return c.JSON(outcomeResponse{Outcome: out, Draft: comp.View(), Navigation: stack.LastEvent()})
	}
}

func documentPicker(req pickRequest, root string) picker.DocumentPicker {
	if req.Path != "" {
		return picker.FilesystemDocumentPicker{Path: req.Path, Root: root}
	}
	return picker.DocumentPickerFunc(func(ctx context.Context) (picker.DocumentResult, error) {
		return picker.DocumentResult{Canceled: req.Canceled, Assets: req.Assets}, nil
	})
}

func imagePicker(req pickRequest, lib storage.MediaLibrary, expiry time.Duration) picker.ImagePicker {
	if len(req.Keys) > 0 {
		return picker.LibraryImagePicker{Library: lib, Keys: req.Keys, Expiry: expiry}
	}
	return picker.ImagePickerFunc(func(ctx context.Context) (picker.ImageResult, error) {
		return picker.ImageResult{Canceled: req.Canceled, URIs: req.URIs}, nil
	})
}
