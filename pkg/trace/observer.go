// Package trace records the sequence of demos a run executed and saves it as
// a JSON-lines file.
package trace

// Observer receives events as demos start and finish.
type Observer interface {
	// OnEvent is called for every event in run order.
	OnEvent(e Event)

	// OnFinalize is called once after the last demo (e.g., to save the trace).
	OnFinalize() error
}

// Nop discards all events.
type Nop struct{}

func (Nop) OnEvent(Event)     {}
func (Nop) OnFinalize() error { return nil }
