package view

import "time"

type animation struct {
	fromX, fromY int32
	toX, toY     int32
	elapsed      time.Duration
	duration     time.Duration
}

// MoveTo moves the view so that its absolute top-left corner ends at (x, y). A positive
// duration animates the move over subsequent Advance calls and sets the moving flag
// until it completes; otherwise the view jumps immediately.
func (b *Base) MoveTo(x, y int32, duration time.Duration) {
	if b.parent != nil {
		pp := b.parent.ViewBase().AbsolutePosition()
		x -= pp.X
		y -= pp.Y
	}

	if duration <= 0 {
		b.rect.X, b.rect.Y = x, y
		b.anim = animation{}
		b.moving.Store(false)
		return
	}

	b.anim = animation{
		fromX:    b.rect.X,
		fromY:    b.rect.Y,
		toX:      x,
		toY:      y,
		duration: duration,
	}
	b.moving.Store(true)
}

func (b *Base) IsMoving() bool {
	return b.moving.Load()
}

// Advance steps any running move on this view and its subtree by dt.
func (b *Base) Advance(dt time.Duration) {
	if b.moving.Load() {
		b.anim.elapsed += dt
		if b.anim.elapsed >= b.anim.duration {
			b.rect.X, b.rect.Y = b.anim.toX, b.anim.toY
			b.moving.Store(false)
		} else {
			t := float64(b.anim.elapsed) / float64(b.anim.duration)
			p := easeOutCubic(t)
			b.rect.X = b.anim.fromX + int32(float64(b.anim.toX-b.anim.fromX)*p)
			b.rect.Y = b.anim.fromY + int32(float64(b.anim.toY-b.anim.fromY)*p)
		}
	}

	for _, child := range b.children {
		child.ViewBase().Advance(dt)
	}
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
