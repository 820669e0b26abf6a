package fragnav

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav/constants"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/host"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/internal"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/router"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/state"
)

// Options configures a Controller.
type Options struct {
	SavedState []byte              // State from a previous SaveState; restored instead of starting fresh when valid
	Codec      state.Codec         // Encoding of SavedState and SaveState output (default: state.JSON)
	Listener   TransactionListener // Notified after every completed navigation step
	Transition host.Transition     // Transition hint stamped on every transaction
	Logger     *slog.Logger        // Defaults to the package logger
	Tracer     trace.Tracer        // Defaults to the global OpenTelemetry tracer
}

// Controller drives navigation across several independent stacks of views
// shown one at a time in a host container, plus a single dialog overlay.
//
// Every step is computed against the store, committed to the host as one
// transaction and only then applied to the store. A Controller is not safe
// for concurrent use; drive it from a single goroutine.
type Controller struct {
	host       host.Host
	store      *router.Store
	roots      RootProvider
	listener   TransactionListener
	transition host.Transition
	codec      state.Codec
	logger     *slog.Logger
	tracer     trace.Tracer

	dialog   dialogSlot
	queue    taskQueue
	restored bool
}

// NewSingle creates a controller managing one stack that starts at root.
func NewSingle(h host.Host, root host.View, options Options) (*Controller, error) {
	return New(h, []host.View{root}, 0, options)
}

// New creates a controller with one stack per root view, starting on tab start.
func New(h host.Host, roots []host.View, start int, options Options) (*Controller, error) {
	if len(roots) == 0 {
		return nil, ErrNoTabs
	}
	for i, root := range roots {
		if root == nil {
			return nil, &MissingRootError{Index: i}
		}
	}
	list := make(RootList, len(roots))
	copy(list, roots)
	return newController(h, list, len(roots), start, options)
}

// NewWithProvider creates a controller with tabs stacks whose roots are
// built on demand by provider, starting on tab start.
func NewWithProvider(h host.Host, provider RootFunc, tabs int, start int, options Options) (*Controller, error) {
	if tabs <= 0 {
		return nil, ErrNoTabs
	}
	return newController(h, provider, tabs, start, options)
}

func newController(h host.Host, roots RootProvider, tabs, start int, options Options) (*Controller, error) {
	if start < 0 || start >= tabs {
		return nil, &OutOfRangeError{Op: "start", Index: start, Count: tabs}
	}

	c := &Controller{
		host:       h,
		roots:      roots,
		listener:   options.Listener,
		transition: options.Transition,
		codec:      options.Codec,
		logger:     options.Logger,
		tracer:     options.Tracer,
	}
	if c.codec == nil {
		c.codec = state.JSON
	}
	if c.logger == nil {
		c.logger = internal.GetLogger()
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(constants.TracerName)
	}

	var tagFloor int64
	if len(options.SavedState) > 0 {
		var ok bool
		ok, tagFloor = c.restore(options.SavedState, tabs)
		if ok {
			return c, nil
		}
	}

	c.store = c.freshStore(tabs, tagFloor)
	if err := c.do("initialize", func(span trace.Span) error {
		span.SetAttributes(attribute.Int("fragnav.tab", start))
		return c.initialize(start)
	}); err != nil {
		return nil, err
	}
	return c, nil
}

// freshStore builds the store for a new session. Fixed roots are placed on
// their stacks untagged; provider roots are pulled when a tab is first shown.
// tagFloor keeps tags from a previous session from being issued again.
func (c *Controller) freshStore(tabs int, tagFloor int64) *router.Store {
	store := router.NewStore(tabs)
	store.Tags().Restore(tagFloor)
	if list, ok := c.roots.(RootList); ok {
		for i, root := range list {
			stack, _ := store.Stack(i)
			stack.Push(router.Handle{View: root})
		}
	}
	return store
}

// do runs one navigation step through the task queue inside a span.
func (c *Controller) do(op string, fn func(span trace.Span) error) error {
	return c.queue.run(func() error {
		_, span := c.tracer.Start(context.Background(), "fragnav."+op)
		defer span.End()

		err := fn(span)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		if active := c.store.Active(); active != nil {
			span.SetAttributes(attribute.String("fragnav.active_tag", active.Tag))
		}
		return nil
	}, func(err error) {
		c.logger.Error("queued navigation step failed", "op", op, "error", err)
	})
}

// SetRootProvider replaces the source of root views for empty stacks.
func (c *Controller) SetRootProvider(provider RootProvider) {
	c.roots = provider
}

// SetTransactionListener replaces the listener notified after every step.
func (c *Controller) SetTransactionListener(listener TransactionListener) {
	c.listener = listener
}

// SetTransitionMode sets the transition hint for subsequent transactions.
func (c *Controller) SetTransitionMode(transition host.Transition) {
	c.transition = transition
}

// Size returns the number of stacks.
func (c *Controller) Size() int {
	return c.store.TabCount()
}

// SelectedIndex returns the selected tab.
func (c *Controller) SelectedIndex() int {
	return c.store.Selected()
}

// CurrentStack returns a copy of the selected tab's stack, bottom to top.
func (c *Controller) CurrentStack() []router.Handle {
	stack := c.store.CurrentStack()
	if stack == nil {
		return nil
	}
	return stack.Handles()
}

// CanPop reports whether the current stack has anything above its root.
// Use Replace to change a root view.
func (c *Controller) CanPop() bool {
	return c.store.CanPop()
}

// CurrentView returns the view shown in the container, or nil.
func (c *Controller) CurrentView() host.View {
	if h := c.currentHandle(); h != nil {
		return h.View
	}
	return nil
}

// CurrentTag returns the tag of the view shown in the container.
func (c *Controller) CurrentTag() string {
	if h := c.currentHandle(); h != nil {
		return h.Tag
	}
	return ""
}

// Restored reports whether the controller was rebuilt from saved state.
func (c *Controller) Restored() bool {
	return c.restored
}
