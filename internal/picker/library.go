package picker

import (
	"context"
	"fmt"
	"time"

	"docdraft/internal/storage"
)

// LibraryImagePicker resolves media library keys the user selected into presigned URLs.
// No keys means the user canceled.
type LibraryImagePicker struct {
	Library storage.MediaLibrary
	Keys    []string
	Expiry  time.Duration
}

var _ ImagePicker = LibraryImagePicker{}

func (p LibraryImagePicker) PickImages(ctx context.Context) (ImageResult, error) {
	if len(p.Keys) == 0 {
		return ImageResult{Canceled: true}, nil
	}
	expiry := p.Expiry
	if expiry <= 0 {
		expiry = time.Hour
	}

	uris := make([]string, 0, len(p.Keys))
	for _, key := range p.Keys {
		if _, err := p.Library.Stat(ctx, key); err != nil {
			return ImageResult{}, fmt.Errorf("resolve image %s: %w", key, err)
		}
		u, err := p.Library.PresignGet(ctx, key, expiry)
		if err != nil {
			return ImageResult{}, fmt.Errorf("presign image %s: %w", key, err)
		}
		uris = append(uris, u)
	}
	return ImageResult{URIs: uris}, nil
}
