package draft

import "docdraft/internal/model"

// Kind tags a reducer action.
type Kind string

const (
	KindSetDocumentFile      Kind = "setDocumentFile"
	KindSetTitle             Kind = "setTitle"
	KindSetDescription       Kind = "setDescription"
	KindSetSelectedFaculties Kind = "setSelectedFaculties"
	KindSetSelectedSubjects  Kind = "setSelectedSubjects"
	KindSetSelectedLists     Kind = "setSelectedLists"
	KindSetSelectedImages    Kind = "setSelectedImages"
	KindSetCoverImage        Kind = "setCoverImage"
	KindClearUploadState     Kind = "clearUploadState"
)

// Action is a named update of the draft. Only the payload field matching Kind is read.
type Action struct {
	Kind  Kind
	File  *model.DocumentFile
	Text  string
	Items []string
	URI   *string
}

func SetDocumentFile(f *model.DocumentFile) Action {
	return Action{Kind: KindSetDocumentFile, File: f}
}

func SetTitle(title string) Action {
	return Action{Kind: KindSetTitle, Text: title}
}

func SetDescription(description string) Action {
	return Action{Kind: KindSetDescription, Text: description}
}

func SetSelectedFaculties(ids []string) Action {
	return Action{Kind: KindSetSelectedFaculties, Items: ids}
}

func SetSelectedSubjects(ids []string) Action {
	return Action{Kind: KindSetSelectedSubjects, Items: ids}
}

func SetSelectedLists(ids []string) Action {
	return Action{Kind: KindSetSelectedLists, Items: ids}
}

func SetSelectedImages(uris []string) Action {
	return Action{Kind: KindSetSelectedImages, Items: uris}
}

func SetCoverImage(uri *string) Action {
	return Action{Kind: KindSetCoverImage, URI: uri}
}

func ClearUploadState() Action {
	return Action{Kind: KindClearUploadState}
}

// Initial returns the empty draft: empty sequences, no file, no cover image.
func Initial() model.Draft {
	return model.Draft{
		SelectedFaculties: []string{},
		SelectedSubjects:  []string{},
		SelectedLists:     []string{},
		SelectedImages:    []string{},
	}
}

// Reduce returns a new draft with the single field named by a.Kind replaced.
// It never fails: unknown kinds leave the draft unchanged.
func Reduce(d model.Draft, a Action) model.Draft {
	next := d.Clone()
	switch a.Kind {
	case KindSetDocumentFile:
		next.DocumentFile = nil
		if a.File != nil {
			f := *a.File
			next.DocumentFile = &f
		}
	case KindSetTitle:
		next.Title = a.Text
	case KindSetDescription:
		next.Description = a.Text
	case KindSetSelectedFaculties:
		next.SelectedFaculties = model.CloneList(a.Items)
	case KindSetSelectedSubjects:
		next.SelectedSubjects = model.CloneList(a.Items)
	case KindSetSelectedLists:
		next.SelectedLists = model.CloneList(a.Items)
	case KindSetSelectedImages:
		next.SelectedImages = model.CloneList(a.Items)
	case KindSetCoverImage:
		next.CoverImage = nil
		if a.URI != nil {
			u := *a.URI
			next.CoverImage = &u
		}
	case KindClearUploadState:
		return Initial()
	}
	return next
}
