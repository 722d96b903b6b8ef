package loop

// Commands buffers work that must happen after every system in the frame has
// run, such as overlay drawing or a shutdown request.
type Commands struct {
	defers []func()
	stop   bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run at the end of the frame.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Stop asks the scheduler to leave Run once the current frame completes.
func (c *Commands) Stop() {
	c.stop = true
}

// Flush runs deferred functions in queue order and reports whether a stop was
// requested, resetting the buffer.
func (c *Commands) Flush() bool {
	for _, fn := range c.defers {
		fn()
	}
	stop := c.stop
	c.defers = c.defers[:0]
	c.stop = false
	return stop
}
