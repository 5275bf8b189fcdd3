package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"ai-legaldoc-be/internal/entity"
)

// ErrBusy signals that the session already has a request of the same kind
// in flight. Single-flight strategy is reject, not queue.
var ErrBusy = errors.New("another request is already in flight")

// Session holds the in-memory state for one client session: the current
// analysis record, the conversation log, and the in-flight guards.
// All mutation goes through its methods; callers never touch fields.
type Session struct {
	ID string

	mu sync.Mutex

	analysis        *entity.AnalysisRecord
	analysisVersion uint64

	messages []entity.Message
	seq      uint64

	uploadInFlight bool
	askInFlight    bool
}

func NewSession(id string) *Session {
	return &Session{ID: id}
}

// Analysis returns the current record, or nil when no document has been
// analyzed yet. Nil is a valid state, not an error.
func (s *Session) Analysis() *entity.AnalysisRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analysis
}

// AnalysisVersion returns a token identifying the current record. Async
// completions capture it before their round trip and hand it back so stale
// results for a superseded document can be discarded.
func (s *Session) AnalysisVersion() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analysisVersion
}

// AnalysisSnapshot returns the current record together with its version
// token under one lock. Callers that ground work on the record must use
// this, not separate Analysis/AnalysisVersion reads: a replacement landing
// between the two would pair the old record with the new token and defeat
// the stale check.
func (s *Session) AnalysisSnapshot() (*entity.AnalysisRecord, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analysis, s.analysisVersion
}

// ReplaceAnalysisIfCurrent installs a new record, replacing any prior one
// wholesale, but only if the session's record has not changed since the
// caller observed the given version. Returns false when the result is stale.
func (s *Session) ReplaceAnalysisIfCurrent(record *entity.AnalysisRecord, observed uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analysisVersion != observed {
		return false
	}
	s.analysis = record
	s.analysisVersion++
	return true
}

// BeginUpload marks an analysis submission in flight. A second submission
// while one is outstanding is rejected.
func (s *Session) BeginUpload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploadInFlight {
		return ErrBusy
	}
	s.uploadInFlight = true
	return nil
}

func (s *Session) EndUpload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploadInFlight = false
}

// BeginAsk marks a question in flight; same reject semantics as BeginUpload.
func (s *Session) BeginAsk() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.askInFlight {
		return ErrBusy
	}
	s.askInFlight = true
	return nil
}

func (s *Session) EndAsk() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.askInFlight = false
}

// Append adds a message to the end of the log and returns it. The log is
// append-only; messages are never reordered or mutated after insertion.
func (s *Session) Append(role entity.MessageRole, text string, confidence *int) entity.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.append(role, text, confidence)
}

// AppendIfCurrent appends only if the analysis record has not been replaced
// since the caller observed the given version. A stale QA completion must
// not land in the log of a different document.
func (s *Session) AppendIfCurrent(role entity.MessageRole, text string, confidence *int, observed uint64) (entity.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analysisVersion != observed {
		return entity.Message{}, false
	}
	return s.append(role, text, confidence), true
}

func (s *Session) append(role entity.MessageRole, text string, confidence *int) entity.Message {
	s.seq++
	msg := entity.Message{
		ID:         fmt.Sprintf("%06d", s.seq),
		Role:       role,
		Text:       text,
		Confidence: confidence,
		CreatedAt:  time.Now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// Messages returns a copy of the log in creation order.
func (s *Session) Messages() []entity.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// MessageCount reports the current log length.
func (s *Session) MessageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
