package fragnav

// task is one queued navigation step and the callback for its error.
type task struct {
	fn    func() error
	onErr func(error)
}

// taskQueue serializes navigation steps. A step requested while another
// one is executing (from a host commit hook or a listener callback) is
// appended and run after the current step has updated the store, so steps
// never nest.
type taskQueue struct {
	running bool
	pending []task
}

// run executes fn now, or queues it if a step is already executing.
// A queued step reports its error to its own onQueuedErr because its
// caller has already returned.
func (q *taskQueue) run(fn func() error, onQueuedErr func(error)) error {
	if q.running {
		q.pending = append(q.pending, task{fn: fn, onErr: onQueuedErr})
		return nil
	}

	q.running = true
	defer func() {
		q.running = false
		q.pending = nil
	}()

	err := fn()

	for len(q.pending) > 0 {
		next := q.pending[0]
		q.pending = q.pending[1:]
		if qerr := next.fn(); qerr != nil && next.onErr != nil {
			next.onErr(qerr)
		}
	}

	return err
}
