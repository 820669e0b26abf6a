// Package bundle stores saved navigation state between sessions.
//
// A Bundle is a plain key-value container: the controller produces the
// blob with SaveState and the caller decides where it lives. Memory keeps it
// in process, Redis and SQLite keep it across restarts.
//
//	b, _ := bundle.OpenSQLite("nav.db")
//	saved, _ := bundle.LoadOrNil(ctx, b, key)
//	nav, _ := fragnav.New(h, roots, 0, fragnav.Options{SavedState: saved})
//	// ...
//	data, _ := nav.SaveState()
//	_ = b.Save(ctx, key, data)
package bundle
