package trace

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Header is the first line of a trace file. Events and Failed count the
// event lines that follow it.
type Header struct {
	Run    string `json:"run"`
	Events int    `json:"events"`
	Failed int    `json:"failed"`
}

// Log is a decoded trace file.
type Log struct {
	Header Header
	Events []Event
}

// ErrTruncated is returned when a trace holds fewer events than its header
// announces.
var ErrTruncated = errors.New("trace truncated")

// SaveTrace writes a header for run followed by one JSON line per event.
func SaveTrace(filename, run string, events []Event) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	hdr := Header{Run: run, Events: len(events), Failed: len(Failed(events))}
	if err := enc.Encode(hdr); err != nil {
		return fmt.Errorf("failed to encode trace header: %w", err)
	}
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to encode event %d: %w", e.Seq, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write trace file: %w", err)
	}
	return f.Close()
}

// LoadTrace reads a trace written by SaveTrace and checks the event count
// against its header.
func LoadTrace(filename string) (*Log, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(bufio.NewReader(f))
	log := &Log{}
	if err := dec.Decode(&log.Header); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: missing header: %w", filename, ErrTruncated)
		}
		return nil, fmt.Errorf("failed to decode trace header: %w", err)
	}
	for dec.More() {
		var e Event
		if err := dec.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode event %d: %w", len(log.Events)+1, err)
		}
		log.Events = append(log.Events, e)
	}
	if len(log.Events) != log.Header.Events {
		return log, fmt.Errorf("%s: header announces %d events, found %d: %w",
			filename, log.Header.Events, len(log.Events), ErrTruncated)
	}
	return log, nil
}

// Failed returns the fail events of a trace, in order.
func Failed(events []Event) []Event {
	var out []Event
	for _, e := range events {
		if e.Kind == KindFail {
			out = append(out, e)
		}
	}
	return out
}
