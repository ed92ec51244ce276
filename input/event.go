// Package input aggregates the meter's asynchronous event sources: one
// monitor goroutine per button and one periodic sensor poller, all feeding
// a single capacity-1 channel drained by the render loop. The channel's
// single slot is the backpressure mechanism: a producer's send blocks
// until the consumer has taken the previous event, so at most one event is
// ever in flight.
package input

import "wattmeter/drivers/ina219"

// Event is the tagged union carried on the aggregation channel.
// Exactly one variant is meaningful per event: Button >= 0 for a button
// press, otherwise Power holds a sensor snapshot. Msg is set only by the
// consumer itself to route a status overlay through the same draw path.
type Event struct {
	Button int8 // button id, -1 when not a button event
	Power  ina219.Reading
	Msg    string
}

// ButtonEvent tags an event with a button identity.
func ButtonEvent(id int8) Event {
	return Event{Button: id}
}

// PowerEvent wraps a sensor snapshot (copied by value).
func PowerEvent(r ina219.Reading) Event {
	return Event{Button: -1, Power: r}
}
