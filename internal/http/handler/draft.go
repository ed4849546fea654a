package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"docdraft/internal/composer"
	"docdraft/internal/draft"
	"docdraft/internal/model"
	"docdraft/internal/navigation"
	"docdraft/internal/picker"
)

type draftResponse struct {
	Draft      model.Draft       `json:"draft"`
	CanSubmit  bool              `json:"can_submit"`
	Navigation *navigation.Event `json:"navigation,omitempty"`
}

type submitResponse struct {
	Receipt *model.Receipt `json:"receipt"`
	Draft   model.Draft    `json:"draft"`
}

type patchDraftRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func newDraftResponse(d model.Draft) draftResponse {
	return draftResponse{Draft: d, CanSubmit: d.DocumentFile != nil}
}

// GetDraft re-reads the draft the way the composer does when it regains focus.
//
// @Summary  Current draft
// @Tags     draft
// @Produce  json
// @Success  200 {object} draftResponse
// @Router   /draft [get]
func GetDraft(comp *composer.Composer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(newDraftResponse(comp.Focus()))
	}
}

// PatchDraft edits the title and description directly.
//
// @Summary  Edit title or description
// @Tags     draft
// @Accept   json
// @Produce  json
// @Param    body body patchDraftRequest true "fields to change"
// @Success  200 {object} draftResponse
// @Failure  400 {object} errorPayload
// @Router   /draft [patch]
func PatchDraft(comp *composer.Composer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req patchDraftRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		d := comp.View()
		if req.Title != nil {
			d = comp.SetTitle(*req.Title)
		}
		if req.Description != nil {
			d = comp.SetDescription(*req.Description)
		}
		return c.JSON(newDraftResponse(d))
	}
}

// DiscardDraft drops the draft.
//
// @Summary  Discard draft
// @Tags     draft
// @Produce  json
// @Success  200 {object} draftResponse
// @Router   /draft [delete]
func DiscardDraft(comp *composer.Composer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(newDraftResponse(comp.Discard()))
	}
}

// DispatchAction applies a raw reducer action, {"type": ..., "payload": ...}.
// A document file pointing at a local path outside the upload root is refused.
//
// @Summary  Dispatch a draft action
// @Tags     draft
// @Accept   json
// @Produce  json
// @Success  200 {object} draftResponse
// @Failure  400 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Router   /draft/actions [post]
func DispatchAction(store *draft.Store, comp *composer.Composer, col *picker.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := draft.DecodeAction(c.Body())
		if err != nil {
			if errors.Is(err, draft.ErrUnknownAction) {
				return writeError(c, fiber.StatusBadRequest, "UNKNOWN_ACTION", "unknown action type")
			}
			return writeError(c, fiber.StatusBadRequest, "INVALID_ACTION", "invalid action")
		}
		if a.Kind == draft.KindSetDocumentFile {
			if err := col.CheckFile(a.File); err != nil {
				zerolog.Ctx(c.UserContext()).Warn().Err(err).Msg("document file refused")
				return writeError(c, fiber.StatusUnprocessableEntity, "FILE_NOT_ALLOWED", "local files outside the upload directory cannot be attached")
			}
		}
		store.Dispatch(a)
		return c.JSON(newDraftResponse(comp.Focus()))
	}
}

// SubmitDraft sends the draft to the document API.
//
// @Summary  Submit draft
// @Tags     draft
// @Produce  json
// @Success  201 {object} submitResponse
// @Failure  422 {object} errorPayload
// @Failure  502 {object} errorPayload
// @Router   /draft/submit [post]
func SubmitDraft(comp *composer.Composer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := comp.Submit(c.UserContext())
		switch {
		case errors.Is(err, composer.ErrDocumentFileRequired):
			return writeError(c, fiber.StatusUnprocessableEntity, "DOCUMENT_FILE_REQUIRED", composer.UserMessage(err))
		case errors.Is(err, composer.ErrSubmissionFailed):
			zerolog.Ctx(c.UserContext()).Warn().Err(err).Msg("submission failed")
			return writeError(c, fiber.StatusBadGateway, "SUBMISSION_FAILED", composer.UserMessage(err))
		case err != nil:
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(submitResponse{Receipt: rec, Draft: comp.View()})
	}
}
