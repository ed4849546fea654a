package model

import "time"

// Receipt is the remote document API's acknowledgement of a submitted draft.
// Field names follow the API's JSON representation of a stored document.
type Receipt struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// DownloadedDocument is an entry of the durable "downloaded documents" list.
type DownloadedDocument struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	URI          string    `json:"uri"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

// CatalogItem is one option offered by a faculty, subject or list picker.
type CatalogItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
