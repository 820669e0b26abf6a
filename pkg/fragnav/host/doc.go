// Package host defines the contract between navigation and the container that
// actually displays views.
//
// A Host applies batched Transactions atomically, looks views up by the tag
// they were added under, and exposes a child Scope per view for overlays.
// Entries reported by a Host carry a Role so overlays can be told apart from
// screens without inspecting concrete types.
//
// Memory is a complete in-process Host. It is used by the tests, by headless
// callers that only need the navigation model, and by the demo.
package host
