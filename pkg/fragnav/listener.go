package fragnav

import "github.com/BrandonKowalski/fragnav/pkg/fragnav/host"

// TransactionListener is told about every completed navigation step.
// Callbacks run synchronously on the navigating goroutine. Navigation
// calls made from a callback are queued and run after it returns.
type TransactionListener interface {
	// OnTabChanged fires after a tab switch, including the initial one.
	OnTabChanged(view host.View, index int)

	// OnViewChanged fires after push, pop, clear and replace.
	OnViewChanged(view host.View)
}

// ListenerFuncs adapts plain functions to a TransactionListener.
// Nil fields are skipped.
type ListenerFuncs struct {
	TabChanged  func(view host.View, index int)
	ViewChanged func(view host.View)
}

func (l ListenerFuncs) OnTabChanged(view host.View, index int) {
	if l.TabChanged != nil {
		l.TabChanged(view, index)
	}
}

func (l ListenerFuncs) OnViewChanged(view host.View) {
	if l.ViewChanged != nil {
		l.ViewChanged(view)
	}
}
