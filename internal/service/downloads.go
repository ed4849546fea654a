package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"docdraft/internal/model"
	"docdraft/internal/repository"
)

// DownloadsKey is the fixed key the downloaded documents list is stored under.
const DownloadsKey = "downloaded_documents"

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("downloaded document not found")
)

// DownloadService manages the durable list of documents the user downloaded.
type DownloadService interface {
	// List returns the entries, most recent first.
	List(ctx context.Context) ([]model.DownloadedDocument, error)

	// Add records doc, replacing any entry with the same ID, and moves it to the front.
	Add(ctx context.Context, doc model.DownloadedDocument) (*model.DownloadedDocument, error)

	// Remove deletes the entry with the given ID.
	Remove(ctx context.Context, id string) error

	// Clear empties the list.
	Clear(ctx context.Context) error
}

type downloadService struct {
	repo repository.KeyValueRepository
	now  func() time.Time
}

// NewDownloadService constructs a new DownloadService.
func NewDownloadService(repo repository.KeyValueRepository) DownloadService {
	return &downloadService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *downloadService) List(ctx context.Context) ([]model.DownloadedDocument, error) {
	raw, err := s.repo.Get(ctx, DownloadsKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []model.DownloadedDocument{}, nil
		}
		return nil, err
	}
	out := make([]model.DownloadedDocument, 0)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode downloads: %w", err)
	}
	return out, nil
}

func (s *downloadService) Add(ctx context.Context, doc model.DownloadedDocument) (*model.DownloadedDocument, error) {
	if strings.TrimSpace(doc.ID) == "" {
		return nil, ErrIDRequired
	}
	if doc.DownloadedAt.IsZero() {
		doc.DownloadedAt = s.now()
	}

	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	next := make([]model.DownloadedDocument, 0, len(list)+1)
	next = append(next, doc)
	for _, d := range list {
		if d.ID != doc.ID {
			next = append(next, d)
		}
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *downloadService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	list, err := s.List(ctx)
	if err != nil {
		return err
	}
	next := make([]model.DownloadedDocument, 0, len(list))
	for _, d := range list {
		if d.ID != id {
			next = append(next, d)
		}
	}
	if len(next) == len(list) {
		return ErrNotFound
	}
	return s.save(ctx, next)
}

func (s *downloadService) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, DownloadsKey)
}

func (s *downloadService) save(ctx context.Context, list []model.DownloadedDocument) error {
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode downloads: %w", err)
	}
	if err := s.repo.Put(ctx, DownloadsKey, b); err != nil {
		return fmt.Errorf("save downloads: %w", err)
	}
	return nil
}
