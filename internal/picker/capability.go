package picker

import (
	"context"

	"docdraft/internal/model"
)

// DocumentResult is what a device document picker returns.
type DocumentResult struct {
	Canceled bool                 `json:"canceled"`
	Assets   []model.DocumentFile `json:"assets"`
}

// DocumentPicker asks the user for a single document.
type DocumentPicker interface {
	PickDocument(ctx context.Context) (DocumentResult, error)
}

// DocumentPickerFunc adapts a function to DocumentPicker.
type DocumentPickerFunc func(ctx context.Context) (DocumentResult, error)

func (f DocumentPickerFunc) PickDocument(ctx context.Context) (DocumentResult, error) {
	return f(ctx)
}

// ImageResult is what a media library picker returns.
type ImageResult struct {
	Canceled bool     `json:"canceled"`
	URIs     []string `json:"uris"`
}

// ImagePicker asks the user for zero or more images.
type ImagePicker interface {
	PickImages(ctx context.Context) (ImageResult, error)
}

// ImagePickerFunc adapts a function to ImagePicker.
type ImagePickerFunc func(ctx context.Context) (ImageResult, error)

func (f ImagePickerFunc) PickImages(ctx context.Context) (ImageResult, error) {
	return f(ctx)
}
