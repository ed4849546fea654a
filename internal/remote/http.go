package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"docdraft/internal/config"
	"docdraft/internal/model"
	"docdraft/internal/picker"
)

// IdempotencyKeyHeader carries a fresh key per submission attempt.
const IdempotencyKeyHeader = "Idempotency-Key"

// HTTPClient talks to the document API over HTTP.
// Local documents are only streamed from inside UploadRoot.
type HTTPClient struct {
	Base       string
	Token      string
	UploadRoot string
	HTTP       *http.Client
}

var (
	_ Submitter     = (*HTTPClient)(nil)
	_ CatalogSource = (*HTTPClient)(nil)
)

// NewHTTP builds a client with an otelhttp-instrumented transport.
func NewHTTP(cfg config.RemoteConfig) *HTTPClient {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		Base:       strings.TrimRight(cfg.BaseURL, "/"),
		Token:      cfg.Token,
		UploadRoot: cfg.UploadRoot,
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Submit streams the draft as multipart/form-data to POST /documents.
// A local document is sent as the "file" part; any other URI is sent as "file_uri".
// Local documents outside UploadRoot are refused before any request is made.
func (c *HTTPClient) Submit(ctx context.Context, d model.Draft) (*model.Receipt, error) {
	if d.DocumentFile == nil {
		return nil, fmt.Errorf("submit: draft has no document file")
	}

	path, local, err := picker.ResolveLocal(c.UploadRoot, d.DocumentFile.URI)
	if err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	var src *os.File
	if local {
		if src, err = os.Open(path); err != nil {
			return nil, fmt.Errorf("open document: %w", err)
		}
		defer src.Close()
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	written := make(chan struct{})
	go func() {
		defer close(written)
		pw.CloseWithError(writeDraft(mw, d, src))
	}()
	// The writer must stop before src is closed, even if the body was never read.
	defer func() {
		pr.Close()
		<-written
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+"/documents", pr)
	if err != nil {
		pr.Close()
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(IdempotencyKeyHeader, uuid.NewString())

	var out model.Receipt
	if err := c.do(req, &out); err != nil {
		pr.CloseWithError(err)
		return nil, err
	}
	return &out, nil
}

// Catalog fetches GET /{kind}.
func (c *HTTPClient) Catalog(ctx context.Context, kind string) ([]model.CatalogItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+"/"+url.PathEscape(kind), nil)
	if err != nil {
		return nil, err
	}
	out := make([]model.CatalogItem, 0)
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{
			Method: req.Method,
			Path:   req.URL.Path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func writeDraft(mw *multipart.Writer, d model.Draft, src *os.File) error {
	if err := writeFile(mw, d.DocumentFile, src); err != nil {
		return err
	}

	fields := []struct {
		name   string
		values []string
	}{
		{"title", []string{d.Title}},
		{"description", []string{d.Description}},
		{"faculties", d.SelectedFaculties},
		{"subjects", d.SelectedSubjects},
		{"lists", d.SelectedLists},
		{"images", d.SelectedImages},
	}
	if d.CoverImage != nil {
		fields = append(fields, struct {
			name   string
			values []string
		}{"cover_image", []string{*d.CoverImage}})
	}

	for _, f := range fields {
		for _, v := range f.values {
			if err := mw.WriteField(f.name, v); err != nil {
				return err
			}
		}
	}
	return mw.Close()
}

// writeFile sends src as the "file" part, or the URI alone when src is nil.
func writeFile(mw *multipart.Writer, f *model.DocumentFile, src *os.File) error {
	if src == nil {
		return mw.WriteField("file_uri", f.URI)
	}

	name := f.Name
	if name == "" {
		name = filepath.Base(src.Name())
	}
	ct := f.MimeType
	if ct == "" {
		ct = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	h.Set("Content-Type", ct)
	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, src)
	return err
}
