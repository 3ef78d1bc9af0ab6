package trace_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amirkhaki/gruvcrisp/pkg/trace"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestRecorderSavesTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.trace")
	rec := trace.NewRecorder(path)

	rec.OnEvent(trace.Event{Demo: "bits", Kind: trace.KindStart})
	rec.OnEvent(trace.Event{Demo: "bits", Kind: trace.KindFinish})
	rec.OnEvent(trace.Event{Demo: "file", Kind: trace.KindFail, Detail: "permission denied"})

	if err := rec.OnFinalize(); err != nil {
		t.Fatalf("OnFinalize failed: %v", err)
	}

	log, err := trace.LoadTrace(path)
	if err != nil {
		t.Fatalf("LoadTrace failed: %v", err)
	}
	want := trace.Header{Run: rec.RunID(), Events: 3, Failed: 1}
	if log.Header != want {
		t.Errorf("header = %+v, want %+v", log.Header, want)
	}
	if _, err := uuid.Parse(log.Header.Run); err != nil {
		t.Errorf("expected uuid run id, got %q", log.Header.Run)
	}
	if diff := cmp.Diff(rec.Events(), log.Events); diff != "" {
		t.Errorf("loaded trace differs (-want +got):\n%s", diff)
	}
	for i, e := range log.Events {
		if e.Seq != i+1 {
			t.Errorf("event %d has seq %d", i, e.Seq)
		}
	}

	failed := trace.Failed(log.Events)
	if len(failed) != 1 || failed[0].Demo != "file" {
		t.Errorf("unexpected failed events: %+v", failed)
	}
}

func TestLoadTraceTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.trace")
	events := []trace.Event{
		{Seq: 1, Demo: "bits", Kind: trace.KindStart},
		{Seq: 2, Demo: "bits", Kind: trace.KindFinish},
	}
	if err := trace.SaveTrace(path, "run-1", events); err != nil {
		t.Fatalf("SaveTrace failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.SplitAfter(string(data), "\n")
	if err := os.WriteFile(path, []byte(lines[0]+lines[1]), 0o644); err != nil {
		t.Fatal(err)
	}

	log, err := trace.LoadTrace(path)
	if !errors.Is(err, trace.ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if log == nil || len(log.Events) != 1 {
		t.Errorf("expected the one surviving event, got %+v", log)
	}
}

func TestLoadTraceEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.trace")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := trace.LoadTrace(path); !errors.Is(err, trace.ErrTruncated) {
		t.Errorf("expected ErrTruncated for empty file, got %v", err)
	}
}

func TestRecorderInMemory(t *testing.T) {
	rec := trace.NewRecorder("")
	rec.OnEvent(trace.Event{Demo: "pointers", Kind: trace.KindStart})
	if err := rec.OnFinalize(); err != nil {
		t.Fatalf("OnFinalize without file failed: %v", err)
	}
	if n := len(rec.Events()); n != 1 {
		t.Errorf("expected 1 event, got %d", n)
	}
}

func TestLoadTraceMissing(t *testing.T) {
	if _, err := trace.LoadTrace(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing trace file")
	}
}

func TestKindString(t *testing.T) {
	if trace.KindFail.String() != "fail" || trace.Kind(0).String() != "unknown" {
		t.Error("unexpected Kind names")
	}
}
