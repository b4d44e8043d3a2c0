package events

import "github.com/lixenwraith/troll-dodge/constants"

// EventQueue is a fixed ring buffer of effect events
// Single producer and single consumer: the game loop goroutine
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	events [constants.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index

	dropped uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest when full
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&constants.EventBufferMask] = event
	eq.tail++
	if eq.tail-eq.head > constants.EventQueueSize {
		eq.head = eq.tail - constants.EventQueueSize
		eq.dropped++
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & constants.EventBufferMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Dropped returns how many events were overwritten before consumption
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
