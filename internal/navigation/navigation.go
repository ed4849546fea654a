// Package navigation provides the route stack the composer and picker screens move through.
package navigation

import "sync"

// Route names a screen.
type Route string

const (
	RouteComposer        Route = "composer"
	RoutePickerFile      Route = "picker/file"
	RoutePickerFaculties Route = "picker/faculties"
	RoutePickerSubjects  Route = "picker/subjects"
	RoutePickerLists     Route = "picker/lists"
	RoutePickerImages    Route = "picker/images"
	RoutePickerCover     Route = "picker/cover"
)

// Navigator is the capability screens use to move between routes.
type Navigator interface {
	Navigate(route Route, params map[string]string)
	Back()
}

// Action is the kind of a navigation event.
type Action string

const (
	ActionNavigate Action = "navigate"
	ActionBack     Action = "back"
)

// Event records one navigation. Route is the route on top of the stack afterwards.
type Event struct {
	Action Action            `json:"action"`
	Route  Route             `json:"route"`
	Params map[string]string `json:"params,omitempty"`
	Seq    uint64            `json:"seq"`
}

// FocusFunc runs when its route becomes the top of the stack.
type FocusFunc func(params map[string]string)

type entry struct {
	route  Route
	params map[string]string
}

// Stack is an in-process Navigator. Focus listeners run synchronously, after the
// stack has changed and outside its lock, so a listener observes every write made
// before the Navigate or Back call that triggered it.
type Stack struct {
	mu      sync.Mutex
	entries []entry
	focus   map[Route][]FocusFunc
	last    Event
	seq     uint64
}

var _ Navigator = (*Stack)(nil)

// NewStack returns a stack whose root is root.
func NewStack(root Route) *Stack {
	return &Stack{
		entries: []entry{{route: root}},
		focus:   make(map[Route][]FocusFunc),
		last:    Event{Action: ActionNavigate, Route: root},
	}
}

// OnFocus registers fn to run whenever route becomes the top of the stack.
func (s *Stack) OnFocus(route Route, fn FocusFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focus[route] = append(s.focus[route], fn)
}

// Navigate pushes route. Navigating to the current top route replaces its params.
func (s *Stack) Navigate(route Route, params map[string]string) {
	s.mu.Lock()
	top := len(s.entries) - 1
	if s.entries[top].route == route {
		s.entries[top].params = params
	} else {
		s.entries = append(s.entries, entry{route: route, params: params})
	}
	ev := s.record(ActionNavigate, route, params)
	fns := append([]FocusFunc(nil), s.focus[route]...)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev.Params)
	}
}

// Back pops the top route. On the root route it does nothing.
func (s *Stack) Back() {
	s.mu.Lock()
	if len(s.entries) == 1 {
		s.mu.Unlock()
		return
	}
	s.entries = s.entries[:len(s.entries)-1]
	top := s.entries[len(s.entries)-1]
	ev := s.record(ActionBack, top.route, top.params)
	fns := append([]FocusFunc(nil), s.focus[top.route]...)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev.Params)
	}
}

// Current returns the route on top of the stack.
func (s *Stack) Current() Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[len(s.entries)-1].route
}

// Depth returns the number of routes on the stack.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// LastEvent returns the most recent navigation.
func (s *Stack) LastEvent() Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Stack) record(a Action, route Route, params map[string]string) Event {
	s.seq++
	s.last = Event{Action: a, Route: route, Params: params, Seq: s.seq}
	return s.last
}
