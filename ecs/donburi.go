package ecs

import (
	"github.com/phanxgames/shapegrid"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for shapegrid interaction
// events. Events are queued until ProcessEvents runs.
var InteractionEventType = events.NewEventType[shapegrid.InteractionEvent]()

// PointerState is the component holding the latest pointer press.
type PointerState struct {
	X, Y    float64
	Button  shapegrid.MouseButton
	Path    []string
	Presses int
}

// Pointer is the component type for PointerState.
var Pointer = donburi.NewComponentType[PointerState]()

// DonburiSink is a shapegrid.EventSink backed by a Donburi world.
type DonburiSink struct {
	world   donburi.World
	pointer donburi.Entity
}

// NewDonburiSink creates a sink publishing into world. It creates the entity
// that carries the Pointer component.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{
		world:   world,
		pointer: world.Create(Pointer),
	}
}

// World returns the world events are published into.
func (s *DonburiSink) World() donburi.World { return s.world }

// PointerEntity returns the entity carrying the Pointer component.
func (s *DonburiSink) PointerEntity() donburi.Entity { return s.pointer }

// EmitEvent implements shapegrid.EventSink.
func (s *DonburiSink) EmitEvent(event shapegrid.InteractionEvent) {
	if event.Type == shapegrid.EventMouseDown && s.world.Valid(s.pointer) {
		ps := Pointer.Get(s.world.Entry(s.pointer))
		ps.X, ps.Y = event.X, event.Y
		ps.Button = event.Button
		ps.Path = append(ps.Path[:0], event.Path...)
		ps.Presses++
	}
	InteractionEventType.Publish(s.world, event)
}

// State returns the current pointer state.
func (s *DonburiSink) State() PointerState {
	if !s.world.Valid(s.pointer) {
		return PointerState{}
	}
	return *Pointer.Get(s.world.Entry(s.pointer))
}
