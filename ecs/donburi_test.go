package ecs

import (
	"testing"

	"github.com/phanxgames/shapegrid"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

var _ shapegrid.EventSink = (*DonburiSink)(nil)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
	if !world.Valid(sink.PointerEntity()) {
		t.Error("pointer entity should exist")
	}
	if sink.World() != world {
		t.Error("World() should return the world")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []shapegrid.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e shapegrid.InteractionEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(shapegrid.InteractionEvent{
		Type:   shapegrid.EventMouseDown,
		X:      100,
		Y:      200,
		Button: shapegrid.MouseButtonLeft,
		Path:   []string{"board", "region 5"},
	})
	sink.EmitEvent(shapegrid.InteractionEvent{Type: shapegrid.EventResize})

	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != shapegrid.EventMouseDown || e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0: %+v", e0)
	}
	if received[1].Type != shapegrid.EventResize {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_PointerState(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	path := []string{"board", "cell"}
	sink.EmitEvent(shapegrid.InteractionEvent{Type: shapegrid.EventMouseDown, X: 1, Y: 2, Path: path})
	path[0] = "mutated"
	sink.EmitEvent(shapegrid.InteractionEvent{Type: shapegrid.EventMouseDown, X: 3, Y: 4,
		Button: shapegrid.MouseButtonRight, Path: []string{"board"}})
	sink.EmitEvent(shapegrid.NewResizeEvent(640, 480))

	st := sink.State()
	if st.Presses != 2 {
		t.Errorf("Presses = %d, want 2", st.Presses)
	}
	if st.X != 3 || st.Y != 4 || st.Button != shapegrid.MouseButtonRight {
		t.Errorf("state = %+v", st)
	}
	if len(st.Path) != 1 || st.Path[0] != "board" {
		t.Errorf("Path = %v, want [board]", st.Path)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e shapegrid.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e shapegrid.InteractionEvent) {
		count2++
	})

	sink.EmitEvent(shapegrid.InteractionEvent{Type: shapegrid.EventMouseDown})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
