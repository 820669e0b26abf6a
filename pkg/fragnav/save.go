package fragnav

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav/state"
)

// Snapshot captures the current navigation state.
func (c *Controller) Snapshot() state.Snapshot {
	return state.Capture(c.store)
}

// SaveState encodes the current navigation state with the controller's codec.
// Pass the result back as Options.SavedState to restore it.
func (c *Controller) SaveState() ([]byte, error) {
	data, err := c.codec.Marshal(c.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("fragnav: encode %s state: %w", c.codec.Name(), err)
	}
	return data, nil
}

// restore rebuilds the store from saved state and shows the saved tab.
// On failure it reports the highest tag count seen so a fresh session does
// not reissue tags the host may still hold.
func (c *Controller) restore(data []byte, tabs int) (bool, int64) {
	snap, err := c.codec.Unmarshal(data)
	if err != nil {
		c.logger.Warn("saved navigation state unreadable, starting fresh", "codec", c.codec.Name(), "error", err)
		return false, 0
	}

	restored, err := state.Restore(snap, tabs, c.host, c.roots.RootView)
	if err != nil {
		c.logger.Warn("saved navigation state rejected, starting fresh", "error", err)
		return false, snap.TagCount
	}
	for _, tag := range restored.Dropped {
		c.logger.Debug("dropped view missing from host", "tag", tag)
	}

	c.store = restored.Store
	err = c.do("restore", func(span trace.Span) error {
		span.SetAttributes(
			attribute.Int("fragnav.tab", restored.Selected),
			attribute.Int("fragnav.dropped", len(restored.Dropped)),
		)
		return c.switchTab(restored.Selected)
	})
	if err != nil {
		c.logger.Warn("restored navigation state could not be shown, starting fresh", "error", err)
		floor := c.store.Tags().Count()
		c.store = nil
		return false, floor
	}

	c.restored = true
	return true, 0
}
