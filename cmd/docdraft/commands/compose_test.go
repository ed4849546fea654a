package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docdraft/internal/draft"
	"docdraft/internal/model"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithEnv(t, nil, args...)
}

func runWithEnv(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MINIO_ENDPOINT", "")
	t.Setenv("UPLOAD_ROOT", "")
	for k, v := range env {
		t.Setenv(k, v)
	}
	remoteURL, token, logLevel = "", "", "error"
	draft.Default().Clear()
	t.Cleanup(func() { draft.Default().Clear() })

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func tempDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thesis.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))
	return path
}

func TestCompose_DryRun(t *testing.T) {
	out, err := run(t, "compose", "--dry-run",
		"--file", tempDoc(t),
		"--title", "Thesis",
		"--faculty", "f1", "--faculty", "f2",
		"--subject", "s1",
		"--image", "https://cdn/a.png",
		"--cover", "https://cdn/a.png",
	)
	require.NoError(t, err)

	var d model.Draft
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	require.NotNil(t, d.DocumentFile)
	assert.Equal(t, "thesis.pdf", d.DocumentFile.Name)
	assert.Equal(t, "Thesis", d.Title)
	assert.Equal(t, []string{"f1", "f2"}, d.SelectedFaculties)
	assert.Equal(t, []string{"s1"}, d.SelectedSubjects)
	assert.Equal(t, []string{}, d.SelectedLists)
	assert.Equal(t, []string{"https://cdn/a.png"}, d.SelectedImages)
	require.NotNil(t, d.CoverImage)
}

func TestCompose_Submits(t *testing.T) {
	var gotTitle string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/documents", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotTitle = r.FormValue("title")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"doc-7","filename":"thesis.pdf"}`))
	}))
	defer srv.Close()

	out, err := run(t, "--remote", srv.URL, "--token", "secret", "compose", "--file", tempDoc(t), "--title", "Final")
	require.NoError(t, err)

	var rec model.Receipt
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "doc-7", rec.ID)
	assert.Equal(t, "Final", gotTitle)
	assert.Equal(t, draft.Initial(), draft.Default().Snapshot())
}

func TestCompose_RemoteFailureKeepsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := run(t, "--remote", srv.URL, "compose", "--file", tempDoc(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "try again")
	assert.NotNil(t, draft.Default().DocumentFile())
}

func TestCompose_Errors(t *testing.T) {
	_, err := run(t, "compose", "--dry-run")
	assert.ErrorContains(t, err, `required flag(s) "file" not set`)

	_, err = run(t, "compose", "--dry-run", "--file", filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorContains(t, err, "failed")

	_, err = run(t, "compose", "--dry-run", "--file", tempDoc(t), "--faculty", " ")
	assert.ErrorContains(t, err, "invalid selection")

	_, err = run(t, "compose", "--dry-run", "--file", tempDoc(t), "--image-key", "images/a.png")
	assert.ErrorContains(t, err, "media library")
}

func TestCompose_UploadRootNarrowsFiles(t *testing.T) {
	doc := tempDoc(t)

	_, err := runWithEnv(t, map[string]string{"UPLOAD_ROOT": t.TempDir()}, "compose", "--dry-run", "--file", doc)
	assert.ErrorContains(t, err, "failed")
	assert.Nil(t, draft.Default().DocumentFile())

	out, err := runWithEnv(t, map[string]string{"UPLOAD_ROOT": filepath.Dir(doc)}, "compose", "--dry-run", "--file", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "thesis.pdf")
}
