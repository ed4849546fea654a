package model

// DocumentFile identifies a locally picked file.
type DocumentFile struct {
	URI      string `json:"uri"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
}

// Draft is the in-progress upload accumulated across the composer and its pickers.
// Sequence fields are never nil once read from a store; optional scalars are nil when unset.
type Draft struct {
	DocumentFile      *DocumentFile `json:"documentFile"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	SelectedFaculties []string      `json:"selectedFaculties"`
	SelectedSubjects  []string      `json:"selectedSubjects"`
	SelectedLists     []string      `json:"selectedLists"`
	SelectedImages    []string      `json:"selectedImages"`
	CoverImage        *string       `json:"coverImage"`
}

// Clone returns a deep copy of d with nil sequences normalized to empty ones.
func (d Draft) Clone() Draft {
	out := Draft{
		Title:             d.Title,
		Description:       d.Description,
		SelectedFaculties: CloneList(d.SelectedFaculties),
		SelectedSubjects:  CloneList(d.SelectedSubjects),
		SelectedLists:     CloneList(d.SelectedLists),
		SelectedImages:    CloneList(d.SelectedImages),
	}
	if d.DocumentFile != nil {
		f := *d.DocumentFile
		out.DocumentFile = &f
	}
	if d.CoverImage != nil {
		c := *d.CoverImage
		out.CoverImage = &c
	}
	return out
}

// CloneList copies items into a new non-nil slice.
func CloneList(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}
