// Package state saves and restores navigation state.
//
// Capture turns a router.Store into a Snapshot: the tag counter, the selected
// tab, the active view's tag and every stack as a list of tags. A Codec
// encodes the Snapshot as JSON, TOML or YAML.
//
// Restore goes the other way. Every tag is looked up in the host again; views
// the host has lost are either rebuilt from the tab's roots (single-entry
// stacks) or dropped (longer stacks). Anything structurally wrong fails the
// restore, and the caller is expected to start a fresh session instead.
package state
