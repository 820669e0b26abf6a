package fragnav_test

import (
	"fmt"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/host"
)

// Screen is a minimal view. Real applications wrap whatever their host renders.
type Screen struct {
	Name string
}

func (s *Screen) Kind() string { return s.Name }

// Example demonstrates tab switching with a pushed view surviving the switch.
func Example() {
	h := host.NewMemory()

	recents := &Screen{Name: "recents"}
	nearby := &Screen{Name: "nearby"}

	nav, err := fragnav.New(h, []host.View{recents, nearby}, 0, fragnav.Options{
		Listener: fragnav.ListenerFuncs{
			TabChanged: func(v host.View, index int) {
				fmt.Printf("tab %d: %s\n", index, v.(*Screen).Name)
			},
			ViewChanged: func(v host.View) {
				fmt.Printf("view: %s\n", v.(*Screen).Name)
			},
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	_ = nav.Push(&Screen{Name: "detail"})
	_ = nav.SwitchTab(1)
	_ = nav.SwitchTab(0) // detail is reattached, not recreated
	fmt.Println("tag:", nav.CurrentTag())
	_ = nav.Pop()
	fmt.Println("depth:", len(nav.CurrentStack()))

	// Output:
	// tab 0: recents
	// view: detail
	// tab 1: nearby
	// tab 0: detail
	// tag: detail2
	// view: recents
	// depth: 1
}

// Example_saveState demonstrates restoring navigation from saved state.
func Example_saveState() {
	h := host.NewMemory()
	roots := []host.View{&Screen{Name: "home"}, &Screen{Name: "search"}}

	nav, _ := fragnav.New(h, roots, 0, fragnav.Options{})
	_ = nav.Push(&Screen{Name: "article"})
	_ = nav.Push(&Screen{Name: "comments"})

	data, _ := nav.SaveState()
	fmt.Println(string(data))

	restored, _ := fragnav.New(h, roots, 0, fragnav.Options{SavedState: data})
	fmt.Println("restored:", restored.Restored())
	fmt.Println("showing:", restored.CurrentTag())
	fmt.Println("can pop:", restored.CanPop())

	// Output:
	// {"tagCount":3,"selectedIndex":0,"activeTag":"comments3","stacks":[["home1","article2","comments3"],["null"]]}
	// restored: true
	// showing: comments3
	// can pop: true
}

// Example_provider demonstrates roots built on demand.
func Example_provider() {
	names := []string{"feed", "inbox", "profile"}
	nav, _ := fragnav.NewWithProvider(host.NewMemory(), func(index int) host.View {
		fmt.Println("building", names[index])
		return &Screen{Name: names[index]}
	}, len(names), 2, fragnav.Options{})

	_ = nav.SwitchTab(0)
	_ = nav.SwitchTab(2)
	fmt.Println("showing:", nav.CurrentTag())

	// Output:
	// building profile
	// building feed
	// showing: profile1
}
