// Package ecs bridges shapegrid interaction events into a Donburi world.
//
// [NewDonburiSink] returns a [shapegrid.EventSink] that publishes every event
// as an [InteractionEventType] Donburi event and keeps a single entity with a
// [PointerState] component up to date. Subscribe in your ECS systems:
//
//	sink := ecs.NewDonburiSink(world)
//	game := sudoku.NewGame(sudoku.Options{Sink: sink})
//	ecs.InteractionEventType.Subscribe(world, onClick)
//	...
//	ecs.InteractionEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
