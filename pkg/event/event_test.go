package event_test

import (
	"testing"

	"github.com/shashiranjanraj/plantnet/pkg/event"
)

func TestFireDispatchesToListeners(t *testing.T) {
	defer event.Flush()

	var got []interface{}
	event.Listen(event.OrderCreated, func(p interface{}) { got = append(got, p) })
	event.Listen(event.OrderCreated, func(p interface{}) { got = append(got, p) })

	event.Fire(event.OrderCreated, "payload")

	if len(got) != 2 {
		t.Fatalf("expected both listeners to run, got %d calls", len(got))
	}
	if got[0] != "payload" || got[1] != "payload" {
		t.Errorf("unexpected payloads %v", got)
	}
}

func TestFireIgnoresOtherEvents(t *testing.T) {
	defer event.Flush()

	var called bool
	event.Listen(event.OrderCancelled, func(interface{}) { called = true })

	event.Fire(event.OrderCreated, nil)

	if called {
		t.Error("listener for a different event must not run")
	}
}

func TestFlushRemovesListeners(t *testing.T) {
	var called bool
	event.Listen(event.OrderCreated, func(interface{}) { called = true })
	event.Flush()

	event.Fire(event.OrderCreated, nil)

	if called {
		t.Error("flushed listener must not run")
	}
}
