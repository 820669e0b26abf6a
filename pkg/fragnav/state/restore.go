package state

import (
	"fmt"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav/host"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/router"
)

// Finder looks up views the host still holds. host.Host satisfies it.
type Finder interface {
	FindByTag(tag string) (host.View, bool)
}

// RootSource returns the root view for a tab, or nil if there is none.
type RootSource func(index int) host.View

// Restored is the result of rebuilding a store from a Snapshot.
type Restored struct {
	Store *router.Store

	// Selected is the tab to switch to. The store itself comes back with no
	// selection so that switching re-derives the active view.
	Selected int

	// Dropped lists tags from multi-entry stacks that the host no longer knows.
	Dropped []string
}

// Restore rebuilds a store for tabs stacks from snap, resolving every tag
// against finder.
//
// A stack saved with a single entry that cannot be resolved is rebuilt from
// roots. In longer stacks, unresolvable entries are dropped. Restore fails if
// the snapshot does not fit tabs or a single-entry stack has no root.
func Restore(snap Snapshot, tabs int, finder Finder, roots RootSource) (*Restored, error) {
	if err := snap.validate(); err != nil {
		return nil, err
	}
	if len(snap.Stacks) != tabs {
		return nil, fmt.Errorf("%w: %d stacks saved, %d expected", ErrMalformed, len(snap.Stacks), tabs)
	}
	if snap.SelectedIndex < 0 || snap.SelectedIndex >= tabs {
		return nil, &router.OutOfRangeError{Op: "restore", Index: snap.SelectedIndex, Count: tabs}
	}

	store := router.NewStore(tabs)
	store.Tags().Restore(snap.TagCount)
	restored := &Restored{Store: store, Selected: snap.SelectedIndex}

	for x, tags := range snap.Stacks {
		stack, _ := store.Stack(x)

		if len(tags) == 1 {
			h, err := resolveSingle(x, tags[0], finder, roots)
			if err != nil {
				return nil, err
			}
			stack.Push(h)
			continue
		}

		for _, tag := range tags {
			if IsNullTag(tag) {
				continue
			}
			view, ok := finder.FindByTag(tag)
			if !ok {
				restored.Dropped = append(restored.Dropped, tag)
				continue
			}
			stack.Push(router.Handle{View: view, Tag: tag})
		}
	}

	if !IsNullTag(snap.ActiveTag) {
		if view, ok := finder.FindByTag(snap.ActiveTag); ok {
			store.SetActive(&router.Handle{View: view, Tag: snap.ActiveTag})
		}
	}

	return restored, nil
}

func resolveSingle(index int, tag string, finder Finder, roots RootSource) (router.Handle, error) {
	if !IsNullTag(tag) {
		if view, ok := finder.FindByTag(tag); ok {
			return router.Handle{View: view, Tag: tag}, nil
		}
	}

	var root host.View
	if roots != nil {
		root = roots(index)
	}
	if root == nil {
		return router.Handle{}, fmt.Errorf("%w: no root view for tab %d", ErrMalformed, index)
	}
	// Untagged: the controller adds it to the host fresh when the tab is shown.
	return router.Handle{View: root}, nil
}
