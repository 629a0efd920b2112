package view

import "go.uber.org/atomic"

// Capture is the process-wide input capture slot. While a view holds it, Root.Dispatch
// offers every event to that view before the normal tree walk.
type Capture struct {
	holder atomic.Pointer[captureSlot]
}

type captureSlot struct {
	view View
}

func NewCapture() *Capture {
	return &Capture{}
}

// Acquire makes owner the holder, replacing whoever held the capture before.
func (c *Capture) Acquire(owner View) {
	c.holder.Store(&captureSlot{view: owner})
}

// Release clears the capture if owner currently holds it and reports whether it did.
func (c *Capture) Release(owner View) bool {
	for {
		current := c.holder.Load()
		if current == nil || current.view != owner {
			return false
		}
		if c.holder.CompareAndSwap(current, nil) {
			return true
		}
	}
}

func (c *Capture) Holder() View {
	if slot := c.holder.Load(); slot != nil {
		return slot.view
	}
	return nil
}
