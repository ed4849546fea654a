package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"docdraft/internal/composer"
	"docdraft/internal/draft"
	"docdraft/internal/navigation"
	"docdraft/internal/picker"
	"docdraft/internal/remote"
	"docdraft/internal/service"
	"docdraft/internal/storage"
)

// Deps carries everything the routes need. DB, Catalog, Library and Downloads
// may be nil; the routes that depend on them then answer 503.
type Deps struct {
	DB        *sql.DB
	Store     *draft.Store
	Stack     *navigation.Stack
	Collector *picker.Collector
	Composer  *composer.Composer
	Catalog   remote.CatalogSource
	Library   storage.MediaLibrary
	Downloads service.DownloadService

	LibraryPrefix string
	PresignExpiry time.Duration
	// UploadRoot must match the root the Collector was built with.
	UploadRoot string
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	app.Get("/draft", GetDraft(d.Composer))
	app.Patch("/draft", PatchDraft(d.Composer))
	app.Delete("/draft", DiscardDraft(d.Composer))
	app.Post("/draft/actions", DispatchAction(d.Store, d.Composer, d.Collector))
	app.Post("/draft/submit", SubmitDraft(d.Composer))

	app.Get("/pickers/:category", EnterPicker(d.Collector, d.Catalog, d.Stack))
	app.Post("/pickers/:category/confirm", ConfirmPicker(d.Collector, d.Composer, d.Stack))
	app.Post("/pickers/:category/cancel", CancelPicker(d.Collector, d.Composer, d.Stack))
	app.Post("/pickers/:category/pick", Pick(d.Collector, d.Composer, d.Stack, d.Library, d.PresignExpiry, d.UploadRoot))

	app.Get("/library", ListLibrary(d.Library, d.LibraryPrefix))

	app.Get("/downloads", ListDownloads(d.Downloads))
	app.Post("/downloads", AddDownload(d.Downloads))
	app.Delete("/downloads/:id", RemoveDownload(d.Downloads))
	app.Delete("/downloads", ClearDownloads(d.Downloads))
}
