// Package router holds the navigation state: one Stack of view Handles per
// tab, the selected tab, the active view and the tag counter.
//
// # Stacks
//
// Each tab owns an independent LIFO Stack. The bottom entry is the tab's
// root view; it is replaced, never popped.
//
//	store := router.NewStore(3)
//	_ = store.SetSelected(0)
//
//	stack := store.CurrentStack()
//	stack.Push(router.Handle{View: home, Tag: store.Tags().Next(home.Kind())})
//	stack.Push(router.Handle{View: detail, Tag: store.Tags().Next(detail.Kind())})
//
//	store.CanPop() // true, something sits above the root
//
// # Tags
//
// A Handle's Tag is how a view is found again in the host after it has been
// detached or after the process was recreated. Tags are only generated when a
// view is added to the host fresh; reattached and restored views keep theirs.
//
// Store does no host work itself. The fragnav controller mutates it only after
// the host has confirmed the matching transaction.
package router
