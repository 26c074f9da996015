package exam

import (
	"errors"
	"time"
)

var (
	ErrNoQuestionsAvailable = errors.New("no questions available")
	ErrSessionNotFound      = errors.New("test session not found")
	ErrInvalidSessionState  = errors.New("test session is invalid")
	ErrCatalogIntegrity     = errors.New("test session references an unknown question")
	ErrQuestionNotInTest    = errors.New("question not in test session")
	ErrIncompleteSession    = errors.New("test session is incomplete")
)

// Session is one user's in-progress test attempt. The ordered id list is a
// snapshot copied from the catalog at start time, so catalog changes cannot
// corrupt an attempt already underway. Answers and MarkedForReview only ever
// hold ids from OrderedQuestionIDs.
type Session struct {
	OrderedQuestionIDs []string          `json:"ordered_question_ids"`
	CurrentIndex       int               `json:"current_index"`
	Answers            map[string]string `json:"answers"`
	MarkedForReview    map[string]bool   `json:"marked_for_review"`
	StartTime          time.Time         `json:"start_time"`
}

// Validate checks the structural invariants required before any operation
// may trust the session. A session that fails validation is only recoverable
// by discarding it and starting over.
func (s *Session) Validate() error {
	if s == nil {
		return ErrInvalidSessionState
	}
	if len(s.OrderedQuestionIDs) == 0 {
		return ErrInvalidSessionState
	}
	if s.Answers == nil || s.MarkedForReview == nil {
		return ErrInvalidSessionState
	}
	if s.StartTime.IsZero() {
		return ErrInvalidSessionState
	}
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.OrderedQuestionIDs) {
		return ErrInvalidSessionState
	}
	return nil
}

func (s *Session) contains(questionID string) bool {
	for _, id := range s.OrderedQuestionIDs {
		if id == questionID {
			return true
		}
	}
	return false
}

// clampedIndex returns the index navigation should fall back to when a
// requested index is out of range: the current index if it is still valid,
// otherwise 0.
func (s *Session) clampedIndex() int {
	if s.CurrentIndex >= 0 && s.CurrentIndex < len(s.OrderedQuestionIDs) {
		return s.CurrentIndex
	}
	return 0
}
