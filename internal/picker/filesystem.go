package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"docdraft/internal/model"
)

var (
	ErrNotAFile          = errors.New("not a regular file")
	ErrOutsideUploadRoot = errors.New("file is outside the upload root")
)

// FilesystemDocumentPicker picks the local file at Path. An empty Path means the user canceled.
// Path must resolve inside Root; an empty Root refuses every path.
type FilesystemDocumentPicker struct {
	Path string
	Root string
}

var _ DocumentPicker = FilesystemDocumentPicker{}

func (p FilesystemDocumentPicker) PickDocument(ctx context.Context) (DocumentResult, error) {
	if strings.TrimSpace(p.Path) == "" {
		return DocumentResult{Canceled: true}, nil
	}
	if err := ctx.Err(); err != nil {
		return DocumentResult{}, err
	}

	abs, _, err := ResolveLocal(p.Root, p.Path)
	if err != nil {
		return DocumentResult{}, err
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return DocumentResult{}, fmt.Errorf("stat document: %w", err)
	}
	if !fi.Mode().IsRegular() {
		return DocumentResult{}, fmt.Errorf("%w: %s", ErrNotAFile, abs)
	}

	mt, err := detectMimeType(abs)
	if err != nil {
		return DocumentResult{}, err
	}

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return DocumentResult{Assets: []model.DocumentFile{{
		URI:      u.String(),
		Name:     filepath.Base(abs),
		MimeType: mt,
	}}}, nil
}

// detectMimeType tries the extension first and falls back to sniffing the first 512 bytes.
func detectMimeType(path string) (string, error) {
	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
		return mt, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read document: %w", err)
	}
	return http.DetectContentType(buf[:n]), nil
}

// LocalPath converts a file URI or bare path back to a filesystem path.
// ok is false for URIs with any other scheme.
func LocalPath(uri string) (path string, ok bool) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", false
	}
	switch u.Scheme {
	case "file":
		return filepath.FromSlash(u.Path), true
	case "":
		return uri, true
	default:
		return "", false
	}
}

// ResolveLocal maps a local uri to a path inside root, following symlinks.
// local is false, with no error, for URIs with a non-file scheme.
// An empty root refuses every local uri.
func ResolveLocal(root, uri string) (path string, local bool, err error) {
	p, ok := LocalPath(uri)
	if !ok {
		return "", false, nil
	}
	if root == "" || strings.TrimSpace(p) == "" {
		return "", true, fmt.Errorf("%w: %s", ErrOutsideUploadRoot, p)
	}

	base, err := realPath(root)
	if err != nil {
		return "", true, fmt.Errorf("resolve upload root: %w", err)
	}
	target, err := realPath(p)
	if err != nil {
		return "", true, fmt.Errorf("resolve path: %w", err)
	}

	rel, err := filepath.Rel(base, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", true, fmt.Errorf("%w: %s", ErrOutsideUploadRoot, p)
	}
	return target, true, nil
}

// realPath returns the absolute, symlink-free form of p. For a path that does
// not exist, only its parent directory is resolved.
func realPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		return filepath.Join(dir, filepath.Base(abs)), nil
	}
	return abs, nil
}
