package picker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemDocumentPicker(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	pdf := filepath.Join(dir, "notes.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4 body"), 0o600))
	sniffed := filepath.Join(dir, "scan.zzunknown")
	require.NoError(t, os.WriteFile(sniffed, []byte("%PDF-1.7\n..."), 0o600))

	t.Run("empty path is a cancellation", func(t *testing.T) {
		res, err := FilesystemDocumentPicker{}.PickDocument(context.Background())
		require.NoError(t, err)
		assert.True(t, res.Canceled)
	})

	t.Run("extension based mime type", func(t *testing.T) {
		res, err := FilesystemDocumentPicker{Path: pdf, Root: dir}.PickDocument(context.Background())
		require.NoError(t, err)
		require.Len(t, res.Assets, 1)

		asset := res.Assets[0]
		assert.Equal(t, "notes.pdf", asset.Name)
		assert.Equal(t, "application/pdf", asset.MimeType)
		assert.True(t, strings.HasPrefix(asset.URI, "file://"))

		path, ok := LocalPath(asset.URI)
		assert.True(t, ok)
		assert.Equal(t, pdf, path)
	})

	t.Run("content sniffing fallback", func(t *testing.T) {
		res, err := FilesystemDocumentPicker{Path: sniffed, Root: dir}.PickDocument(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", res.Assets[0].MimeType)
	})

	t.Run("directory is rejected", func(t *testing.T) {
		_, err := FilesystemDocumentPicker{Path: dir, Root: dir}.PickDocument(context.Background())
		assert.ErrorIs(t, err, ErrNotAFile)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FilesystemDocumentPicker{Path: filepath.Join(dir, "missing.pdf"), Root: dir}.PickDocument(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("path outside root is refused", func(t *testing.T) {
		_, err := FilesystemDocumentPicker{Path: "/etc/passwd", Root: dir}.PickDocument(context.Background())
		assert.ErrorIs(t, err, ErrOutsideUploadRoot)
	})

	t.Run("no root refuses every path", func(t *testing.T) {
		_, err := FilesystemDocumentPicker{Path: pdf}.PickDocument(context.Background())
		assert.ErrorIs(t, err, ErrOutsideUploadRoot)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := FilesystemDocumentPicker{Path: pdf, Root: dir}.PickDocument(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalPath(t *testing.T) {
	p, ok := LocalPath("/tmp/a.pdf")
	assert.True(t, ok)
	assert.Equal(t, "/tmp/a.pdf", p)

	_, ok = LocalPath("https://cdn.example.com/a.pdf")
	assert.False(t, ok)
}

func TestResolveLocal(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	inside := filepath.Join(root, "docs", "a.pdf")
	require.NoError(t, os.MkdirAll(filepath.Dir(inside), 0o700))
	require.NoError(t, os.WriteFile(inside, []byte("x"), 0o600))

	outside, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	secret := filepath.Join(outside, "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("s"), 0o600))
	link := filepath.Join(root, "link.txt")
	require.NoError(t, os.Symlink(secret, link))

	tests := []struct {
		name      string
		root      string
		uri       string
		wantPath  string
		wantLocal bool
		wantErr   error
	}{
		{name: "remote uri", root: root, uri: "https://cdn.example.com/a.pdf"},
		{name: "content uri", root: "", uri: "content://doc/1"},
		{name: "bare path inside", root: root, uri: inside, wantPath: inside, wantLocal: true},
		{name: "file uri inside", root: root, uri: "file://" + filepath.ToSlash(inside), wantPath: inside, wantLocal: true},
		{name: "system file", root: root, uri: "/etc/passwd", wantLocal: true, wantErr: ErrOutsideUploadRoot},
		{name: "file uri to system file", root: root, uri: "file:///etc/passwd", wantLocal: true, wantErr: ErrOutsideUploadRoot},
		{name: "dot dot escape", root: root, uri: filepath.Join(root, "docs") + "/../../" + filepath.Base(outside) + "/secret.txt", wantLocal: true, wantErr: ErrOutsideUploadRoot},
		{name: "symlink escape", root: root, uri: link, wantLocal: true, wantErr: ErrOutsideUploadRoot},
		{name: "empty root", root: "", uri: inside, wantLocal: true, wantErr: ErrOutsideUploadRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, local, err := ResolveLocal(tt.root, tt.uri)
			assert.Equal(t, tt.wantLocal, local)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}
