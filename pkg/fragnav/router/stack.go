package router

import "github.com/BrandonKowalski/fragnav/pkg/fragnav/host"

// Handle is a view together with the tag it was added to the host under.
// An empty Tag means the view has not been added to a host yet.
type Handle struct {
	View host.View
	Tag  string
}

// Stack is one tab's navigation history, bottom to top.
// The bottom entry is the tab's root view.
type Stack struct {
	entries []Handle
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Handle, 0),
	}
}

// Push adds a new entry to the top of the stack.
func (s *Stack) Push(h Handle) {
	s.entries = append(s.entries, h)
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Handle {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Handle {
	if len(s.entries) == 0 {
		return nil
	}
	h := s.entries[len(s.entries)-1]
	return &h
}

// At returns the entry at depth i, counted from the bottom.
func (s *Stack) At(i int) *Handle {
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	h := s.entries[i]
	return &h
}

// SetTop overwrites the top entry. Used when the top view is re-added
// to the host under a new tag. Does nothing on an empty stack.
func (s *Stack) SetTop(h Handle) {
	if len(s.entries) == 0 {
		return
	}
	s.entries[len(s.entries)-1] = h
}

// Truncate drops every entry above depth n.
func (s *Stack) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(s.entries) {
		s.entries = s.entries[:n]
	}
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Handles returns a copy of the entries, bottom to top.
func (s *Stack) Handles() []Handle {
	out := make([]Handle, len(s.entries))
	copy(out, s.entries)
	return out
}

// Tags returns the entry tags, bottom to top.
func (s *Stack) Tags() []string {
	out := make([]string, len(s.entries))
	for i, h := range s.entries {
		out[i] = h.Tag
	}
	return out
}
