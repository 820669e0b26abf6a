package fragnav

import "github.com/BrandonKowalski/fragnav/pkg/fragnav/host"

// dialogSlot is the one overlay the controller knows about and the scope it
// was shown in.
type dialogSlot struct {
	view  host.View
	scope host.Scope
}

// overlayScope is the active view's child scope, or the root scope when
// nothing is active.
func (c *Controller) overlayScope() host.Scope {
	if active := c.store.Active(); active != nil {
		return c.host.Scope(active.View)
	}
	return c.host.Scope(nil)
}

// ShowDialog dismisses any overlay already showing and shows dialog over the
// active view. If the host can no longer show it, the dialog is dropped quietly.
func (c *Controller) ShowDialog(dialog host.View) {
	if dialog == nil {
		return
	}

	if c.dialog.view != nil {
		c.dialog.scope.Dismiss(c.dialog.view)
	}
	c.dialog = dialogSlot{}

	scope := c.overlayScope()
	dismissOverlays(scope)

	if err := scope.Show(dialog, dialog.Kind()); err != nil {
		// The host is likely gone; nothing can be done here.
		c.logger.Debug("dialog not shown", "kind", dialog.Kind(), "error", err)
		return
	}
	c.dialog = dialogSlot{view: dialog, scope: scope}
}

// CurrentDialog returns the overlay being shown, or nil. An overlay the
// controller did not show itself is looked up in the active view's scope
// and remembered.
func (c *Controller) CurrentDialog() host.View {
	if c.dialog.view != nil {
		return c.dialog.view
	}

	scope := c.overlayScope()
	for _, e := range scope.Children() {
		if e.Role == host.RoleOverlay {
			c.dialog = dialogSlot{view: e.View, scope: scope}
			return e.View
		}
	}
	return nil
}

// ClearDialog dismisses any overlay being shown.
func (c *Controller) ClearDialog() {
	c.clearDialog()
}

func (c *Controller) clearDialog() {
	if c.dialog.view != nil {
		c.dialog.scope.Dismiss(c.dialog.view)
		c.dialog = dialogSlot{}
		return
	}
	dismissOverlays(c.overlayScope())
}

func dismissOverlays(scope host.Scope) {
	for _, e := range scope.Children() {
		if e.Role == host.RoleOverlay {
			scope.Dismiss(e.View)
		}
	}
}
