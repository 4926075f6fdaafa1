package shapegrid

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates a node's location or size. Create one with TweenLocation or
// TweenSize and call Update(dt) each tick; every step goes through the node's
// setters so absolute positions stay current.
//
// There is no global animation manager; the Ticker or the caller drives
// Update.
type Tween struct {
	tweens [2]*gween.Tween
	apply  func(a, b float64)
	Done   bool
}

// Update advances the tween by dt seconds and applies the new value.
func (tw *Tween) Update(dt float32) {
	if tw.Done {
		return
	}
	a, doneA := tw.tweens[0].Update(dt)
	b, doneB := tw.tweens[1].Update(dt)
	tw.apply(float64(a), float64(b))
	tw.Done = doneA && doneB
}

// TweenLocation moves node to the given location over duration seconds.
func TweenLocation(node *Node, to Vec2, duration float32, fn ease.TweenFunc) *Tween {
	from := node.Location()
	return &Tween{
		tweens: [2]*gween.Tween{
			gween.New(float32(from.X), float32(to.X), duration, fn),
			gween.New(float32(from.Y), float32(to.Y), duration, fn),
		},
		apply: func(x, y float64) { node.SetLocation(Vec2{X: x, Y: y}) },
	}
}

// TweenSize resizes node to the given size over duration seconds.
func TweenSize(node *Node, to Size, duration float32, fn ease.TweenFunc) *Tween {
	from := node.Size()
	return &Tween{
		tweens: [2]*gween.Tween{
			gween.New(float32(from.W), float32(to.W), duration, fn),
			gween.New(float32(from.H), float32(to.H), duration, fn),
		},
		apply: func(w, h float64) {
			// Easing may overshoot below zero.
			_ = node.SetSize(Size{W: max(w, 0), H: max(h, 0)})
		},
	}
}

// TweenValue animates a single float between two values, writing each step
// through set. Useful for colors and alpha that live outside the tree.
func TweenValue(from, to float64, duration float32, fn ease.TweenFunc, set func(v float64)) *Tween {
	return &Tween{
		tweens: [2]*gween.Tween{
			gween.New(float32(from), float32(to), duration, fn),
			gween.New(0, 0, duration, fn),
		},
		apply: func(v, _ float64) { set(v) },
	}
}
