package shapegrid

import "time"

// Scene is what a host drives. The host forwards window events to it and
// presents whatever it paints onto the Surface.
type Scene interface {
	// Resize is called with the new canvas size in pixels.
	Resize(width, height int)

	// Redraw repaints the whole scene. Called on resize, expose and whenever
	// Update reports a dirty frame.
	Redraw(s Surface)

	// MouseDown handles a button press at canvas pixel p and returns the
	// clickable nodes under it.
	MouseDown(p Vec2, button MouseButton) []*Node

	// Update advances animation by the elapsed wall time and reports whether
	// the scene needs repainting.
	Update(elapsed time.Duration) bool
}

// EventSink receives interaction events. The ecs sub-package provides a
// donburi-backed implementation.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent describes one handled host event.
type InteractionEvent struct {
	Type EventType
	// X, Y is the press position, or the new canvas width and height for
	// EventResize.
	X, Y   float64
	Button MouseButton

	// Hits lists the clicked nodes in hit-test order (outermost first).
	Hits []NodeID
	// Path holds the names of the hit nodes, for logs and subscribers that
	// do not keep the tree.
	Path []string
	// UserData is the innermost hit node's UserData.
	UserData any
}

// NewResizeEvent builds the event for a canvas resize.
func NewResizeEvent(width, height int) InteractionEvent {
	return InteractionEvent{Type: EventResize, X: float64(width), Y: float64(height)}
}

// NewMouseDownEvent builds the event for a mouse press from its hit list.
func NewMouseDownEvent(p Vec2, button MouseButton, hits []*Node) InteractionEvent {
	ev := InteractionEvent{
		Type:   EventMouseDown,
		X:      p.X,
		Y:      p.Y,
		Button: button,
		Hits:   make([]NodeID, len(hits)),
		Path:   make([]string, len(hits)),
	}
	for i, n := range hits {
		ev.Hits[i] = n.ID
		ev.Path[i] = n.Name
	}
	if len(hits) > 0 {
		ev.UserData = hits[len(hits)-1].UserData
	}
	return ev
}
