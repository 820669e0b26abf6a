package main

import "fmt"

// screen is the demo's only view type. The host keys on pointer identity.
type screen struct {
	kind  string
	title string
}

func (s *screen) Kind() string { return s.kind }

func (s *screen) String() string { return s.title }

func newDetail(n int) *screen {
	return &screen{kind: "detail", title: fmt.Sprintf("Detail %d", n)}
}

func newEdit(n int) *screen {
	return &screen{kind: "edit", title: fmt.Sprintf("Edit %d", n)}
}

func newDialog() *screen {
	return &screen{kind: "dialog", title: "Dialog"}
}
