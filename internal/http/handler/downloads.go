package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docdraft/internal/model"
	"docdraft/internal/service"
)

func downloadsDisabled(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusServiceUnavailable, "DOWNLOADS_DISABLED", "downloads list is not configured")
}

// ListDownloads returns the downloaded documents, most recent first.
//
// @Summary  List downloaded documents
// @Tags     downloads
// @Produce  json
// @Success  200 {array}  model.DownloadedDocument
// @Failure  503 {object} errorPayload
// @Router   /downloads [get]
func ListDownloads(svc service.DownloadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if svc == nil {
			return downloadsDisabled(c)
		}
		list, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(list)
	}
}

// AddDownload records a downloaded document.
//
// @Summary  Record a downloaded document
// @Tags     downloads
// @Accept   json
// @Produce  json
// @Param    body body model.DownloadedDocument true "document"
// @Success  201 {object} model.DownloadedDocument
// @Failure  400 {object} errorPayload
// @Router   /downloads [post]
func AddDownload(svc service.DownloadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if svc == nil {
			return downloadsDisabled(c)
		}
		var doc model.DownloadedDocument
		if err := c.BodyParser(&doc); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		saved, err := svc.Add(c.UserContext(), doc)
		if err != nil {
			if errors.Is(err, service.ErrIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", "id is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(saved)
	}
}

// RemoveDownload deletes one entry.
//
// @Summary  Remove a downloaded document
// @Tags     downloads
// @Param    id path string true "document id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /downloads/{id} [delete]
func RemoveDownload(svc service.DownloadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if svc == nil {
			return downloadsDisabled(c)
		}
		if err := svc.Remove(c.UserContext(), c.Params("id")); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "downloaded document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ClearDownloads empties the list.
//
// @Summary  Clear downloaded documents
// @Tags     downloads
// @Success  204
// @Router   /downloads [delete]
func ClearDownloads(svc service.DownloadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if svc == nil {
			return downloadsDisabled(c)
		}
		if err := svc.Clear(c.UserContext()); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
