package host

import "errors"

var (
	// ErrDestroyed is returned when the host has been torn down and can no
	// longer accept views.
	ErrDestroyed = errors.New("host destroyed")

	// ErrUnknownView is returned when a transaction references a view the host
	// does not know about.
	ErrUnknownView = errors.New("unknown view")

	// ErrDuplicateTag is returned when a transaction adds a view under a tag
	// that is already in use.
	ErrDuplicateTag = errors.New("duplicate tag")
)

// View is anything that can be displayed in the host container.
// Kind is the caller-assigned type tag and is used as the prefix of
// generated navigation tags. Views are compared by identity, so they must
// be comparable; pointers are the usual choice.
type View interface {
	Kind() string
}

// Role marks what a view is to the host. Overlay discovery filters on
// the role carried by each entry rather than on the view's concrete type.
type Role int

const (
	RoleScreen Role = iota
	RoleOverlay
)

func (r Role) String() string {
	switch r {
	case RoleScreen:
		return "screen"
	case RoleOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// Entry is a view as reported by the host.
type Entry struct {
	View View
	Tag  string
	Role Role
}

// Host is the external view container that navigation is applied to.
type Host interface {
	// Commit applies every operation in tx, or none of them.
	Commit(tx *Transaction) error

	// FindByTag returns a view the host still knows, attached or detached.
	FindByTag(tag string) (View, bool)

	// Views returns the views currently attached to the container.
	Views() []Entry

	// All returns every view the host holds, attached or detached.
	All() []Entry

	// Scope returns the child scope of parent, used for overlays.
	// A nil parent returns the root scope.
	Scope(parent View) Scope
}

// Scope is a place overlays can be shown in.
type Scope interface {
	Show(overlay View, tag string) error
	Dismiss(overlay View)
	Children() []Entry
}
