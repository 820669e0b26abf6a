package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav/constants"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/router"
)

// ErrMalformed is returned when saved state cannot be decoded into a Snapshot.
var ErrMalformed = errors.New("malformed navigation state")

// Snapshot is the persisted form of a navigation store.
//
// Stacks lists, per tab, the tags of its views bottom to top. An entry of
// constants.NullTag stands for a view that was never added to a host and
// must be rebuilt from the tab's roots.
type Snapshot struct {
	TagCount      int64      `json:"tagCount" toml:"tag_count" yaml:"tag_count"`
	SelectedIndex int        `json:"selectedIndex" toml:"selected_index" yaml:"selected_index"`
	ActiveTag     string     `json:"activeTag,omitempty" toml:"active_tag,omitempty" yaml:"active_tag,omitempty"`
	Stacks        [][]string `json:"stacks" toml:"stacks" yaml:"stacks"`
}

// Capture builds a Snapshot of store.
func Capture(store *router.Store) Snapshot {
	snap := Snapshot{
		TagCount:      store.Tags().Count(),
		SelectedIndex: store.Selected(),
		Stacks:        make([][]string, store.TabCount()),
	}

	if active := store.Active(); active != nil {
		snap.ActiveTag = active.Tag
	}

	for i := range snap.Stacks {
		stack, _ := store.Stack(i)
		tags := stack.Tags()
		for j, tag := range tags {
			if tag == "" {
				tags[j] = constants.NullTag
			}
		}
		snap.Stacks[i] = tags
	}

	return snap
}

func (s Snapshot) validate() error {
	if s.Stacks == nil {
		return fmt.Errorf("%w: missing stacks", ErrMalformed)
	}
	if s.TagCount < 0 {
		return fmt.Errorf("%w: negative tag count", ErrMalformed)
	}
	return nil
}

// IsNullTag reports whether tag stands for "no tag".
func IsNullTag(tag string) bool {
	return tag == "" || strings.EqualFold(tag, constants.NullTag)
}
