package router

// Store holds every tab's stack, the selected tab and the view currently
// shown in the container. It does no host work; the navigation controller
// mutates it only after the host has applied a transaction.
type Store struct {
	stacks   []*Stack
	selected int
	active   *Handle
	tags     *TagGenerator
}

// NewStore creates a store with tabs empty stacks and no selection.
func NewStore(tabs int) *Store {
	if tabs < 0 {
		tabs = 0
	}
	stacks := make([]*Stack, tabs)
	for i := range stacks {
		stacks[i] = NewStack()
	}
	return &Store{
		stacks:   stacks,
		selected: -1,
		tags:     &TagGenerator{},
	}
}

// TabCount returns the number of stacks. It never changes after construction.
func (s *Store) TabCount() int {
	return len(s.stacks)
}

// Stack returns the stack for tab index.
func (s *Store) Stack(index int) (*Stack, error) {
	if index < 0 || index >= len(s.stacks) {
		return nil, &OutOfRangeError{Op: "stack", Index: index, Count: len(s.stacks)}
	}
	return s.stacks[index], nil
}

// CurrentStack returns the selected tab's stack, or nil before a tab is selected.
func (s *Store) CurrentStack() *Stack {
	if s.selected < 0 || s.selected >= len(s.stacks) {
		return nil
	}
	return s.stacks[s.selected]
}

// CanPop reports whether the current stack has anything above its root.
func (s *Store) CanPop() bool {
	stack := s.CurrentStack()
	return stack != nil && stack.Len() > 1
}

// Selected returns the selected tab index, or -1 if none is selected yet.
func (s *Store) Selected() int {
	return s.selected
}

// SetSelected selects tab index. The store is unchanged on error.
func (s *Store) SetSelected(index int) error {
	if index < 0 || index >= len(s.stacks) {
		return &OutOfRangeError{Op: "select", Index: index, Count: len(s.stacks)}
	}
	s.selected = index
	return nil
}

// Active returns the view shown in the container, or nil.
func (s *Store) Active() *Handle {
	if s.active == nil {
		return nil
	}
	h := *s.active
	return &h
}

// SetActive records the view shown in the container. Nil clears it.
func (s *Store) SetActive(h *Handle) {
	if h == nil {
		s.active = nil
		return
	}
	cp := *h
	s.active = &cp
}

// Tags returns the store's tag generator.
func (s *Store) Tags() *TagGenerator {
	return s.tags
}
