package exam

import (
	"context"
	"fmt"
	"time"

	"github.com/om3692/SAT/internal/catalog"
)

// IndexRedirect reports that a requested question index is outside the
// current test and tells the caller which index to show instead. It is
// navigation, not failure.
type IndexRedirect struct {
	To int
}

func (r *IndexRedirect) Error() string {
	return fmt.Sprintf("question index out of range, redirect to %d", r.To)
}

// QuestionStatus is one navigator entry: whether a question has an answer
// recorded and whether it is flagged for review.
type QuestionStatus struct {
	ID       string `json:"id"`
	Answered bool   `json:"answered"`
	Marked   bool   `json:"marked"`
}

// QuestionView is everything needed to render a single question page.
type QuestionView struct {
	Question  catalog.Question `json:"question"`
	Index     int              `json:"index"`
	Number    int              `json:"number"`
	Total     int              `json:"total"`
	Selected  string           `json:"selected_answer"`
	Marked    bool             `json:"marked_for_review"`
	StartTime time.Time        `json:"start_time"`
	Statuses  []QuestionStatus `json:"statuses"`
}

// Service runs the test lifecycle: one attempt per user, persisted through a
// SessionStore after every mutating step so a crashed server never loses
// more than the in-flight request.
type Service struct {
	catalog *catalog.Catalog
	store   SessionStore
	now     func() time.Time
}

func NewService(c *catalog.Catalog, store SessionStore) *Service {
	return &Service{catalog: c, store: store, now: time.Now}
}

// Start begins a fresh attempt for the user, discarding any previous
// in-progress session. The question order is snapshotted from the catalog.
func (s *Service) Start(ctx context.Context, userID int64) (*Session, error) {
	if s.catalog.Len() == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	session := &Session{
		OrderedQuestionIDs: s.catalog.OrderedIDs(),
		CurrentIndex:       0,
		Answers:            map[string]string{},
		MarkedForReview:    map[string]bool{},
		StartTime:          s.now().UTC(),
	}
	if err := s.store.Save(ctx, userID, session); err != nil {
		return nil, err
	}
	return session, nil
}

// View returns the question at index and records it as the user's current
// position. An out-of-range index yields *IndexRedirect pointing at the last
// valid position. A session referencing an id the catalog no longer knows is
// cleared and reported as ErrCatalogIntegrity.
func (s *Service) View(ctx context.Context, userID int64, index int) (*QuestionView, error) {
	session, err := s.loadValid(ctx, userID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(session.OrderedQuestionIDs) {
		return nil, &IndexRedirect{To: session.clampedIndex()}
	}

	id := session.OrderedQuestionIDs[index]
	question, ok := s.catalog.Get(id)
	if !ok {
		_ = s.store.Clear(ctx, userID)
		return nil, ErrCatalogIntegrity
	}

	session.CurrentIndex = index
	if err := s.store.Save(ctx, userID, session); err != nil {
		return nil, err
	}

	statuses := make([]QuestionStatus, 0, len(session.OrderedQuestionIDs))
	for _, qid := range session.OrderedQuestionIDs {
		_, answered := session.Answers[qid]
		statuses = append(statuses, QuestionStatus{
			ID:       qid,
			Answered: answered,
			Marked:   session.MarkedForReview[qid],
		})
	}

	return &QuestionView{
		Question:  question,
		Index:     index,
		Number:    index + 1,
		Total:     len(session.OrderedQuestionIDs),
		Selected:  session.Answers[id],
		Marked:    session.MarkedForReview[id],
		StartTime: session.StartTime,
		Statuses:  statuses,
	}, nil
}

// RecordAnswer stores the user's selected option for a question in the
// current attempt. An empty value is a no-op, not an erase.
func (s *Service) RecordAnswer(ctx context.Context, userID int64, questionID, value string) error {
	session, err := s.loadValid(ctx, userID)
	if err != nil {
		return err
	}
	if !session.contains(questionID) {
		return ErrQuestionNotInTest
	}
	if value == "" {
		return nil
	}
	session.Answers[questionID] = value
	return s.store.Save(ctx, userID, session)
}

// SetReview flags or unflags a question for review.
func (s *Service) SetReview(ctx context.Context, userID int64, questionID string, marked bool) error {
	session, err := s.loadValid(ctx, userID)
	if err != nil {
		return err
	}
	if !session.contains(questionID) {
		return ErrQuestionNotInTest
	}
	if marked {
		session.MarkedForReview[questionID] = true
	} else {
		delete(session.MarkedForReview, questionID)
	}
	return s.store.Save(ctx, userID, session)
}

// Advance moves the user's position one step. Going back from the first
// question stays on the first question. Going forward from the last question
// does not move but reports finished=true, which is the cue to finalize.
func (s *Service) Advance(ctx context.Context, userID int64, forward bool) (nextIndex int, finished bool, err error) {
	session, err := s.loadValid(ctx, userID)
	if err != nil {
		return 0, false, err
	}

	next := session.CurrentIndex
	if forward {
		if session.CurrentIndex == len(session.OrderedQuestionIDs)-1 {
			return session.CurrentIndex, true, nil
		}
		next = session.CurrentIndex + 1
	} else if session.CurrentIndex > 0 {
		next = session.CurrentIndex - 1
	}

	if next != session.CurrentIndex {
		session.CurrentIndex = next
		if err := s.store.Save(ctx, userID, session); err != nil {
			return 0, false, err
		}
	}
	return next, false, nil
}

// Finalize scores the attempt and clears the stored session. The clear
// happens whether or not the caller manages to persist the resulting score;
// an attempt is only ever finalized once.
func (s *Service) Finalize(ctx context.Context, userID int64) (ScoreReport, error) {
	session, err := s.store.Load(ctx, userID)
	if err != nil {
		return ScoreReport{}, err
	}
	if session.Answers == nil || session.StartTime.IsZero() {
		return ScoreReport{}, ErrIncompleteSession
	}

	elapsed := s.now().UTC().Sub(session.StartTime)
	if elapsed < 0 {
		elapsed = 0
	}

	// Scores are computed against the full catalog, so a question that was
	// never served still counts toward its section total.
	report := CalculateScore(s.catalog.OrderedIDs(), session.Answers, s.catalog.Get)
	report.Answers = session.Answers
	report.TimeTakenSecs = int64(elapsed.Seconds())
	report.TimeTakenFormatted = fmt.Sprintf("%dm %ds", report.TimeTakenSecs/60, report.TimeTakenSecs%60)

	if err := s.store.Clear(ctx, userID); err != nil {
		return ScoreReport{}, err
	}
	return report, nil
}

// Reset abandons the current attempt without scoring it.
func (s *Service) Reset(ctx context.Context, userID int64) error {
	return s.store.Clear(ctx, userID)
}

func (s *Service) loadValid(ctx context.Context, userID int64) (*Session, error) {
	session, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := session.Validate(); err != nil {
		_ = s.store.Clear(ctx, userID)
		return nil, err
	}
	return session, nil
}
