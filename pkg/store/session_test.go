package store

import (
	"errors"
	"testing"

	"ai-legaldoc-be/internal/entity"
)

func TestSessionAppendOrdering(t *testing.T) {
	s := NewSession("s1")

	s.Append(entity.MessageRoleUser, "first", nil)
	conf := 90
	s.Append(entity.MessageRoleAssistant, "second", &conf)
	s.Append(entity.MessageRoleUser, "third", nil)

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}
	for i, want := range []string{"first", "second", "third"} {
		if msgs[i].Text != want {
			t.Errorf("msgs[%d].Text = %q, want %q", i, msgs[i].Text, want)
		}
	}
	// IDs are creation-ordered
	if !(msgs[0].ID < msgs[1].ID && msgs[1].ID < msgs[2].ID) {
		t.Errorf("IDs not monotonically increasing: %s %s %s", msgs[0].ID, msgs[1].ID, msgs[2].ID)
	}
}

func TestSessionMessagesReturnsCopy(t *testing.T) {
	s := NewSession("s1")
	s.Append(entity.MessageRoleUser, "hello", nil)

	msgs := s.Messages()
	msgs[0].Text = "mutated"

	if got := s.Messages()[0].Text; got != "hello" {
		t.Errorf("log was mutated through the returned slice: %q", got)
	}
}

func TestSessionSingleFlightUpload(t *testing.T) {
	s := NewSession("s1")

	if err := s.BeginUpload(); err != nil {
		t.Fatalf("first BeginUpload() = %v", err)
	}
	if err := s.BeginUpload(); !errors.Is(err, ErrBusy) {
		t.Fatalf("second BeginUpload() = %v, want ErrBusy", err)
	}
	s.EndUpload()
	if err := s.BeginUpload(); err != nil {
		t.Fatalf("BeginUpload() after EndUpload() = %v", err)
	}
}

func TestSessionSingleFlightAsk(t *testing.T) {
	s := NewSession("s1")

	if err := s.BeginAsk(); err != nil {
		t.Fatalf("first BeginAsk() = %v", err)
	}
	if err := s.BeginAsk(); !errors.Is(err, ErrBusy) {
		t.Fatalf("second BeginAsk() = %v, want ErrBusy", err)
	}
	// Upload guard is independent of the ask guard
	if err := s.BeginUpload(); err != nil {
		t.Fatalf("BeginUpload() while ask in flight = %v", err)
	}
}

func TestSessionReplaceAnalysis(t *testing.T) {
	s := NewSession("s1")

	if s.Analysis() != nil {
		t.Fatal("fresh session should have no analysis")
	}

	v0 := s.AnalysisVersion()
	first := &entity.AnalysisRecord{Summary: "one"}
	if !s.ReplaceAnalysisIfCurrent(first, v0) {
		t.Fatal("install against current version should succeed")
	}
	if s.Analysis() != first {
		t.Fatal("record not installed")
	}

	// A completion that observed the pre-replacement version is stale.
	stale := &entity.AnalysisRecord{Summary: "stale"}
	if s.ReplaceAnalysisIfCurrent(stale, v0) {
		t.Fatal("stale install must be rejected")
	}
	if s.Analysis().Summary != "one" {
		t.Fatal("stale install overwrote the current record")
	}

	// Replacement is wholesale, no merge.
	second := &entity.AnalysisRecord{Summary: "two"}
	if !s.ReplaceAnalysisIfCurrent(second, s.AnalysisVersion()) {
		t.Fatal("fresh install should succeed")
	}
	if s.Analysis() != second {
		t.Fatal("second record not installed")
	}
}

func TestSessionAppendIfCurrent(t *testing.T) {
	s := NewSession("s1")
	v := s.AnalysisVersion()

	if _, ok := s.AppendIfCurrent(entity.MessageRoleAssistant, "fresh", nil, v); !ok {
		t.Fatal("append against current version should succeed")
	}

	s.ReplaceAnalysisIfCurrent(&entity.AnalysisRecord{Summary: "S"}, v)

	if _, ok := s.AppendIfCurrent(entity.MessageRoleAssistant, "stale", nil, v); ok {
		t.Fatal("append for a superseded record must be discarded")
	}
	if s.MessageCount() != 1 {
		t.Fatalf("MessageCount = %d, want 1", s.MessageCount())
	}
}

func TestSessionAnalysisSnapshotPairsRecordAndVersion(t *testing.T) {
	s := NewSession("s1")

	record, version := s.AnalysisSnapshot()
	if record != nil {
		t.Fatalf("record = %v, want nil before any install", record)
	}

	first := &entity.AnalysisRecord{Summary: "first"}
	if !s.ReplaceAnalysisIfCurrent(first, version) {
		t.Fatal("install against snapshot version rejected")
	}

	record, version = s.AnalysisSnapshot()
	if record != first {
		t.Fatalf("record = %v, want the installed record", record)
	}

	// A replacement invalidates the snapshot's version token.
	second := &entity.AnalysisRecord{Summary: "second"}
	if !s.ReplaceAnalysisIfCurrent(second, version) {
		t.Fatal("replacement against current version rejected")
	}
	if _, ok := s.AppendIfCurrent(entity.MessageRoleAssistant, "stale", nil, version); ok {
		t.Error("append with superseded snapshot version succeeded")
	}
}
