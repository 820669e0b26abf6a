package fragnav

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav/host"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/router"
)

// SwitchTab shows tab index. The tab's top view is reattached if the host
// still has it, otherwise its root is added fresh. Switching to the selected
// tab does nothing.
//
// Called from inside another navigation step, the switch is queued and runs
// once that step has finished.
func (c *Controller) SwitchTab(index int) error {
	if index < 0 || index >= c.store.TabCount() {
		return &OutOfRangeError{Op: "switch_tab", Index: index, Count: c.store.TabCount()}
	}
	return c.do("switch_tab", func(span trace.Span) error {
		span.SetAttributes(attribute.Int("fragnav.tab", index))
		return c.switchTab(index)
	})
}

// Push shows view on top of the current stack. A pushed view is always new
// and gets a fresh tag. Pushing nil does nothing.
func (c *Controller) Push(view host.View) error {
	if view == nil {
		return nil
	}
	return c.do("push", func(trace.Span) error {
		return c.push(view)
	})
}

// Pop removes the current view and shows the one beneath it. Popping a
// stack that is down to its root does nothing; check CanPop first.
func (c *Controller) Pop() error {
	return c.do("pop", func(trace.Span) error {
		return c.pop()
	})
}

// ClearStack removes every view above the current stack's root and shows the root.
func (c *Controller) ClearStack() error {
	return c.do("clear_stack", func(trace.Span) error {
		return c.clearStack()
	})
}

// Replace swaps the current view for view, keeping the stack depth.
// This is the only way to change a root view. Replacing with nil does nothing.
func (c *Controller) Replace(view host.View) error {
	if view == nil {
		return nil
	}
	return c.do("replace", func(trace.Span) error {
		return c.replace(view)
	})
}

// initialize clears every view the host holds, hidden ones included, and
// shows tab start.
func (c *Controller) initialize(start int) error {
	stack, err := c.store.Stack(start)
	if err != nil {
		return err
	}

	if views := c.host.All(); len(views) > 0 {
		tx := c.newTx()
		for _, e := range views {
			tx.Remove(e.View)
		}
		if err := c.commit("initialize", tx); err != nil {
			return err
		}
	}
	c.store.SetActive(nil)
	c.clearDialog()

	tx := c.newTx()
	h, pushed, err := c.land(tx, start, stack.Peek(), true)
	if err != nil {
		return err
	}
	if err := c.commit("initialize", tx); err != nil {
		return err
	}

	settle(stack, h, pushed)
	_ = c.store.SetSelected(start)
	c.store.SetActive(&h)
	c.notifyTab(h.View, start)
	return nil
}

func (c *Controller) switchTab(index int) error {
	if index == c.store.Selected() {
		return nil
	}
	stack, err := c.store.Stack(index)
	if err != nil {
		return err
	}

	tx := c.newTx()
	c.detachActive(tx)
	h, pushed, err := c.land(tx, index, stack.Peek(), true)
	if err != nil {
		return err
	}
	if err := c.commit("switch_tab", tx); err != nil {
		return err
	}

	settle(stack, h, pushed)
	_ = c.store.SetSelected(index)
	c.store.SetActive(&h)
	c.notifyTab(h.View, index)
	return nil
}

func (c *Controller) push(view host.View) error {
	stack := c.store.CurrentStack()
	if stack == nil {
		return &OutOfRangeError{Op: "push", Index: c.store.Selected(), Count: c.store.TabCount()}
	}

	h := router.Handle{View: view, Tag: c.store.Tags().Next(view.Kind())}
	tx := c.newTx()
	c.detachActive(tx)
	tx.Add(h.View, h.Tag)
	if err := c.commit("push", tx); err != nil {
		return err
	}

	stack.Push(h)
	c.store.SetActive(&h)
	c.notifyView(h.View)
	return nil
}

func (c *Controller) pop() error {
	if !c.store.CanPop() {
		return nil
	}
	current := c.currentHandle()
	if current == nil {
		return nil
	}
	stack := c.store.CurrentStack()
	below := stack.At(stack.Len() - 2)

	tx := c.newTx().Remove(current.View)
	h, _, err := c.land(tx, c.store.Selected(), below, false)
	if err != nil {
		return err
	}
	if err := c.commit("pop", tx); err != nil {
		return err
	}

	stack.Pop()
	stack.SetTop(h)
	c.store.SetActive(&h)
	c.notifyView(h.View)
	return nil
}

func (c *Controller) clearStack() error {
	stack := c.store.CurrentStack()
	if stack == nil || stack.Len() <= 1 {
		return nil
	}

	tx := c.newTx()
	for i := stack.Len() - 1; i >= 1; i-- {
		// Entries the host already lost only need dropping from the stack.
		if v, ok := c.host.FindByTag(stack.At(i).Tag); ok {
			tx.Remove(v)
		}
	}

	h, pushed, err := c.land(tx, c.store.Selected(), stack.At(0), false)
	if err != nil {
		return err
	}
	if err := c.commit("clear_stack", tx); err != nil {
		return err
	}

	stack.Truncate(1)
	settle(stack, h, pushed)
	c.store.SetActive(&h)
	c.notifyView(h.View)
	return nil
}

func (c *Controller) replace(view host.View) error {
	if c.currentHandle() == nil {
		return nil
	}
	stack := c.store.CurrentStack()

	h := router.Handle{View: view, Tag: c.store.Tags().Next(view.Kind())}
	tx := c.newTx().Replace(h.View, h.Tag)
	if err := c.commit("replace", tx); err != nil {
		return err
	}

	stack.Pop()
	stack.Push(h)
	c.store.SetActive(&h)
	c.notifyView(h.View)
	return nil
}

// land adds the operations that bring candidate on screen for tab index.
// A candidate the host still knows is reattached. Otherwise it is added
// fresh, under a new tag when retag is set or it has none. With no
// candidate the tab's root comes from the RootProvider, and pushed reports
// that it must go onto the stack.
func (c *Controller) land(tx *host.Transaction, index int, candidate *router.Handle, retag bool) (h router.Handle, pushed bool, err error) {
	if candidate != nil && candidate.Tag != "" {
		if v, ok := c.host.FindByTag(candidate.Tag); ok {
			tx.Attach(v)
			return router.Handle{View: v, Tag: candidate.Tag}, false, nil
		}
	}

	if candidate != nil {
		h = *candidate
		if retag || h.Tag == "" {
			h.Tag = c.store.Tags().Next(h.View.Kind())
		}
		tx.Add(h.View, h.Tag)
		return h, false, nil
	}

	var root host.View
	if c.roots != nil {
		root = c.roots.RootView(index)
	}
	if root == nil {
		return router.Handle{}, false, &MissingRootError{Index: index}
	}
	h = router.Handle{View: root, Tag: c.store.Tags().Next(root.Kind())}
	tx.Add(h.View, h.Tag)
	return h, true, nil
}

// settle records on stack the handle that land brought on screen.
func settle(stack *router.Stack, h router.Handle, pushed bool) {
	if pushed {
		stack.Push(h)
		return
	}
	stack.SetTop(h)
}

// currentHandle returns the active view, falling back to the current stack's
// top if the host still has it. It only reads the store; every step records
// the new active view itself once the host has applied its transaction.
func (c *Controller) currentHandle() *router.Handle {
	if active := c.store.Active(); active != nil {
		if v, ok := c.host.FindByTag(active.Tag); ok && v == active.View {
			return active
		}
	}

	stack := c.store.CurrentStack()
	if stack == nil || stack.IsEmpty() {
		return nil
	}
	top := stack.Peek()
	v, ok := c.host.FindByTag(top.Tag)
	if !ok {
		return nil
	}
	return &router.Handle{View: v, Tag: top.Tag}
}

func (c *Controller) detachActive(tx *host.Transaction) {
	if h := c.currentHandle(); h != nil {
		tx.Detach(h.View)
	}
}

func (c *Controller) newTx() *host.Transaction {
	return host.NewTransaction(c.transition)
}

func (c *Controller) commit(op string, tx *host.Transaction) error {
	if tx.IsEmpty() {
		return nil
	}
	if err := c.host.Commit(tx); err != nil {
		return &HostError{Op: op, Err: err}
	}
	c.logger.Debug("transaction committed", "op", op, "ops", tx.Len())
	return nil
}

func (c *Controller) notifyTab(view host.View, index int) {
	if c.listener != nil {
		c.listener.OnTabChanged(view, index)
	}
}

func (c *Controller) notifyView(view host.View) {
	if c.listener != nil {
		c.listener.OnViewChanged(view)
	}
}
