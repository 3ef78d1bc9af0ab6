package trace

import (
	"sync"

	"github.com/google/uuid"
)

// Recorder collects events and writes them to a trace file on finalize.
// Events are numbered in arrival order; the run id goes in the file header.
type Recorder struct {
	run       string
	trace     []Event
	mu        sync.Mutex
	traceFile string
}

// NewRecorder creates a recorder writing to traceFile. An empty traceFile
// keeps events in memory only.
func NewRecorder(traceFile string) *Recorder {
	return &Recorder{run: uuid.NewString(), traceFile: traceFile}
}

// RunID returns the id written to the trace header.
func (r *Recorder) RunID() string {
	return r.run
}

// OnEvent records the event.
func (r *Recorder) OnEvent(e Event) {
	r.mu.Lock()
	e.Seq = len(r.trace) + 1
	r.trace = append(r.trace, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.trace...)
}

// OnFinalize saves the recorded trace to file.
func (r *Recorder) OnFinalize() error {
	if r.traceFile == "" {
		return nil
	}
	return SaveTrace(r.traceFile, r.run, r.Events())
}
