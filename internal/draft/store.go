// Package draft holds the in-progress upload draft shared by the composer and its pickers.
package draft

import (
	"reflect"
	"sync"

	"docdraft/internal/model"
)

// Listener observes the draft after every write.
type Listener func(model.Draft)

// Store is a mutable holder for one draft. Every write goes through Reduce.
// It is safe for concurrent use; listeners run after the write, outside the lock.
type Store struct {
	mu        sync.RWMutex
	state     model.Draft
	listeners map[int]Listener
	order     []int
	nextID    int
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the process-wide store, created on first use.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = NewStore()
	})
	return defaultStore
}

// NewStore returns an isolated store holding the initial draft.
func NewStore() *Store {
	return &Store{
		state:     Initial(),
		listeners: make(map[int]Listener),
	}
}

// Dispatch applies a to the draft and notifies listeners.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	s.notifyUnlock()
}

// ClearIf resets the draft only if it still equals want, and reports whether it did.
func (s *Store) ClearIf(want model.Draft) bool {
	s.mu.Lock()
	if !reflect.DeepEqual(s.state, want.Clone()) {
		s.mu.Unlock()
		return false
	}
	s.state = Reduce(s.state, ClearUploadState())
	s.notifyUnlock()
	return true
}

// notifyUnlock releases s.mu and calls every listener with the new draft.
func (s *Store) notifyUnlock() {
	snap := s.state.Clone()
	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.listeners[id]; !ok {
			return
		}
		delete(s.listeners, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Snapshot returns a copy of the whole draft.
func (s *Store) Snapshot() model.Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Clear resets every field to its default.
func (s *Store) Clear() { s.Dispatch(ClearUploadState()) }

func (s *Store) SetDocumentFile(f *model.DocumentFile) { s.Dispatch(SetDocumentFile(f)) }
func (s *Store) SetTitle(title string)                 { s.Dispatch(SetTitle(title)) }
func (s *Store) SetDescription(description string)     { s.Dispatch(SetDescription(description)) }
func (s *Store) SetSelectedFaculties(ids []string)     { s.Dispatch(SetSelectedFaculties(ids)) }
func (s *Store) SetSelectedSubjects(ids []string)      { s.Dispatch(SetSelectedSubjects(ids)) }
func (s *Store) SetSelectedLists(ids []string)         { s.Dispatch(SetSelectedLists(ids)) }
func (s *Store) SetSelectedImages(uris []string)       { s.Dispatch(SetSelectedImages(uris)) }
func (s *Store) SetCoverImage(uri *string)             { s.Dispatch(SetCoverImage(uri)) }

// DocumentFile returns the picked file, or nil if none was picked.
func (s *Store) DocumentFile() *model.DocumentFile { return s.Snapshot().DocumentFile }

func (s *Store) Title() string       { return s.Snapshot().Title }
func (s *Store) Description() string { return s.Snapshot().Description }

func (s *Store) SelectedFaculties() []string { return s.Snapshot().SelectedFaculties }
func (s *Store) SelectedSubjects() []string  { return s.Snapshot().SelectedSubjects }
func (s *Store) SelectedLists() []string     { return s.Snapshot().SelectedLists }
func (s *Store) SelectedImages() []string    { return s.Snapshot().SelectedImages }

// CoverImage returns the cover image URI, or nil if unset.
func (s *Store) CoverImage() *string { return s.Snapshot().CoverImage }
