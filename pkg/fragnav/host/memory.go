package host

import (
	"errors"
	"fmt"
	"sync"
)

// ErrAlreadyAdded is returned when a transaction adds a view the host already holds.
var ErrAlreadyAdded = errors.New("view already added")

type record struct {
	view     View
	tag      string
	attached bool
	children *memoryScope
}

// Memory is an in-process Host. Views must be comparable (typically pointers).
//
// Detached views stay findable by tag until they are removed or evicted,
// which mirrors how a real container keeps views it has hidden.
type Memory struct {
	mu        sync.Mutex
	records   []*record
	root      *memoryScope
	destroyed bool
	commits   int

	// OnCommit runs synchronously after each applied transaction, outside
	// the host lock. It may call back into navigation.
	OnCommit func(tx *Transaction)
}

// NewMemory creates an empty in-process host.
func NewMemory() *Memory {
	m := &Memory{}
	m.root = &memoryScope{host: m}
	return m
}

// Commit validates and applies tx. Nothing is applied if any operation fails.
func (m *Memory) Commit(tx *Transaction) error {
	if tx == nil {
		return nil
	}

	m.mu.Lock()
	staged := make([]*record, len(m.records))
	for i, r := range m.records {
		cp := *r
		staged[i] = &cp
	}

	for i, op := range tx.ops {
		var err error
		staged, err = m.apply(staged, op)
		if err != nil {
			m.mu.Unlock()
			return fmt.Errorf("op %d (%s %q): %w", i, op.Kind, op.Tag, err)
		}
	}

	m.records = staged
	m.commits++
	hook := m.OnCommit
	m.mu.Unlock()

	if hook != nil {
		hook(tx)
	}
	return nil
}

func (m *Memory) apply(records []*record, op Op) ([]*record, error) {
	if op.View == nil {
		return records, ErrUnknownView
	}

	switch op.Kind {
	case OpAdd:
		return m.add(records, op)
	case OpAttach, OpDetach:
		idx := indexOfView(records, op.View)
		if idx < 0 {
			return records, ErrUnknownView
		}
		r := records[idx]
		r.attached = op.Kind == OpAttach
		if r.attached {
			// Attached views render on top, so move to the end.
			records = append(records[:idx], records[idx+1:]...)
			records = append(records, r)
		}
		return records, nil
	case OpRemove:
		idx := indexOfView(records, op.View)
		if idx < 0 {
			return records, ErrUnknownView
		}
		return append(records[:idx], records[idx+1:]...), nil
	case OpReplace:
		kept := records[:0:0]
		for _, r := range records {
			if !r.attached {
				kept = append(kept, r)
			}
		}
		return m.add(kept, op)
	default:
		return records, fmt.Errorf("unsupported op %d", op.Kind)
	}
}

func (m *Memory) add(records []*record, op Op) ([]*record, error) {
	if m.destroyed {
		return records, ErrDestroyed
	}
	if indexOfView(records, op.View) >= 0 {
		return records, ErrAlreadyAdded
	}
	if op.Tag != "" && indexOfTag(records, op.Tag) >= 0 {
		return records, ErrDuplicateTag
	}
	return append(records, &record{view: op.View, tag: op.Tag, attached: true}), nil
}

// FindByTag returns a view known to the host.
func (m *Memory) FindByTag(tag string) (View, bool) {
	if tag == "" {
		return nil, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if idx := indexOfTag(m.records, tag); idx >= 0 {
		return m.records[idx].view, true
	}
	return nil, false
}

// Views returns the attached views, bottom to top.
func (m *Memory) Views() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Entry, 0, len(m.records))
	for _, r := range m.records {
		if r.attached {
			out = append(out, Entry{View: r.view, Tag: r.tag, Role: RoleScreen})
		}
	}
	return out
}

// All returns every view the host holds, detached ones included, bottom to top.
func (m *Memory) All() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Entry, len(m.records))
	for i, r := range m.records {
		out[i] = Entry{View: r.view, Tag: r.tag, Role: RoleScreen}
	}
	return out
}

// Scope returns the child scope of parent, or the root scope if parent is nil
// or unknown to the host.
func (m *Memory) Scope(parent View) Scope {
	m.mu.Lock()
	defer m.mu.Unlock()

	if parent == nil {
		return m.root
	}
	idx := indexOfView(m.records, parent)
	if idx < 0 {
		return m.root
	}
	r := m.records[idx]
	if r.children == nil {
		r.children = &memoryScope{host: m}
	}
	return r.children
}

// Known returns the number of views the host holds, attached or not.
func (m *Memory) Known() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// Commits returns the number of transactions applied so far.
func (m *Memory) Commits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commits
}

// Evict forgets the view stored under tag, as if the host dropped it.
func (m *Memory) Evict(tag string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := indexOfTag(m.records, tag)
	if idx < 0 {
		return false
	}
	m.records = append(m.records[:idx], m.records[idx+1:]...)
	return true
}

// Destroy marks the host as torn down. Views can no longer be added or shown.
func (m *Memory) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destroyed = true
}

func indexOfView(records []*record, v View) int {
	for i, r := range records {
		if r.view == v {
			return i
		}
	}
	return -1
}

func indexOfTag(records []*record, tag string) int {
	for i, r := range records {
		if r.tag == tag {
			return i
		}
	}
	return -1
}

type memoryScope struct {
	host     *Memory
	overlays []Entry
}

func (s *memoryScope) Show(overlay View, tag string) error {
	if overlay == nil {
		return ErrUnknownView
	}

	s.host.mu.Lock()
	defer s.host.mu.Unlock()

	if s.host.destroyed {
		return ErrDestroyed
	}
	s.overlays = append(s.overlays, Entry{View: overlay, Tag: tag, Role: RoleOverlay})
	return nil
}

func (s *memoryScope) Dismiss(overlay View) {
	s.host.mu.Lock()
	defer s.host.mu.Unlock()

	for i, e := range s.overlays {
		if e.View == overlay {
			s.overlays = append(s.overlays[:i], s.overlays[i+1:]...)
			return
		}
	}
}

func (s *memoryScope) Children() []Entry {
	s.host.mu.Lock()
	defer s.host.mu.Unlock()

	out := make([]Entry, len(s.overlays))
	copy(out, s.overlays)
	return out
}
