// Package fragnav manages several independent stacks of views ("tabs")
// shown one at a time inside a single host container, plus one dialog
// overlay on top.
//
// A Controller owns the navigation state and turns every step into one
// atomic host.Transaction. The store only changes after the host has
// applied the transaction, so a refused transaction leaves navigation
// exactly where it was.
//
// # Basic Usage
//
//	h := host.NewMemory() // or your own host.Host
//
//	nav, err := fragnav.New(h, []host.View{recents, favorites, nearby}, 0, fragnav.Options{
//	    Listener: fragnav.ListenerFuncs{
//	        TabChanged: func(v host.View, index int) { highlightTab(index) },
//	    },
//	})
//	if err != nil {
//	    return err
//	}
//
//	nav.Push(detail)   // recents: [recents, detail]
//	nav.SwitchTab(2)   // detail is detached, nearby shown
//	nav.SwitchTab(0)   // detail reattached, not recreated
//	nav.Pop()          // back to recents
//
// Roots can also be built on demand with NewWithProvider, for tabs whose
// first view is not known upfront.
//
// # Saving State
//
// SaveState encodes every stack as the tags of its views. Handing the
// result back through Options.SavedState makes the next Controller look
// those views up in the host again instead of starting over. Views the host
// has lost are rebuilt from the roots or dropped; if the state cannot be
// used at all the Controller starts a fresh session.
//
//	data, _ := nav.SaveState()
//	// ... host is recreated ...
//	nav, err = fragnav.New(h, roots, 0, fragnav.Options{SavedState: data})
//
// # Dialogs
//
// ShowDialog shows a single overlay in the active view's child scope,
// dismissing any overlay already there.
package fragnav
