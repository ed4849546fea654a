package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraft_Clone(t *testing.T) {
	cover := "uri://cover"
	d := Draft{
		DocumentFile:      &DocumentFile{URI: "file:///a.pdf", Name: "a.pdf", MimeType: "application/pdf"},
		Title:             "t",
		SelectedFaculties: []string{"f1"},
		CoverImage:        &cover,
	}

	c := d.Clone()
	assert.Equal(t, d.DocumentFile, c.DocumentFile)
	assert.NotSame(t, d.DocumentFile, c.DocumentFile)
	assert.NotSame(t, d.CoverImage, c.CoverImage)

	c.SelectedFaculties[0] = "changed"
	assert.Equal(t, "f1", d.SelectedFaculties[0])

	assert.NotNil(t, c.SelectedSubjects)
	assert.Empty(t, c.SelectedSubjects)
}

func TestCloneList(t *testing.T) {
	assert.Equal(t, []string{}, CloneList(nil))
	assert.Equal(t, []string{"a", "b"}, CloneList([]string{"a", "b"}))
}
