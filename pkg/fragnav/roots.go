package fragnav

import "github.com/BrandonKowalski/fragnav/pkg/fragnav/host"

// RootProvider supplies the bottom view of a tab's stack. It is consulted
// only when a tab's stack has no view left to show.
type RootProvider interface {
	RootView(index int) host.View
}

// RootList is a fixed set of root views, one per tab.
type RootList []host.View

func (l RootList) RootView(index int) host.View {
	if index < 0 || index >= len(l) {
		return nil
	}
	return l[index]
}

// RootFunc builds root views on demand, for tabs whose roots are not known upfront.
type RootFunc func(index int) host.View

func (f RootFunc) RootView(index int) host.View {
	if f == nil {
		return nil
	}
	return f(index)
}
