package exam

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/om3692/SAT/internal/app/apiresp"
	"github.com/om3692/SAT/internal/auth"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc   testService
	saver scoreSaver
}

type testService interface {
	Start(ctx context.Context, userID int64) (*Session, error)
	View(ctx context.Context, userID int64, index int) (*QuestionView, error)
	RecordAnswer(ctx context.Context, userID int64, questionID, value string) error
	SetReview(ctx context.Context, userID int64, questionID string, marked bool) error
	Advance(ctx context.Context, userID int64, forward bool) (int, bool, error)
	Finalize(ctx context.Context, userID int64) (ScoreReport, error)
	Reset(ctx context.Context, userID int64) error
}

// scoreSaver persists a finalized report to score history. Implemented by the
// report service; kept as an interface so finalize failures in persistence
// never mask the computed result.
type scoreSaver interface {
	SaveScore(ctx context.Context, userID int64, report ScoreReport) (string, error)
}

type response struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

type submitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
	MarkReview bool   `json:"mark_review"`
	Action     string `json:"action"`
}

type navigationResult struct {
	Action string `json:"action"`
	Index  int    `json:"index,omitempty"`
}

type startResult struct {
	TotalQuestions int    `json:"total_questions"`
	Index          int    `json:"index"`
	StartTime      string `json:"start_time"`
}

type finalizeResult struct {
	Results   ScoreReport `json:"results"`
	ScoreID   string      `json:"score_id,omitempty"`
	SaveError string      `json:"save_error,omitempty"`
}

func NewHandler(svc testService, saver scoreSaver) *Handler {
	return &Handler{svc: svc, saver: saver}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeJSON(w, r, http.StatusUnauthorized, response{OK: false, Error: "unauthorized"})
		return
	}

	session, err := h.svc.Start(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, ErrNoQuestionsAvailable) {
			writeJSON(w, r, http.StatusServiceUnavailable, response{OK: false, Error: err.Error()})
			return
		}
		writeJSON(w, r, http.StatusInternalServerError, response{OK: false, Error: "internal error"})
		return
	}

	writeJSON(w, r, http.StatusCreated, response{OK: true, Data: startResult{
		TotalQuestions: len(session.OrderedQuestionIDs),
		Index:          session.CurrentIndex,
		StartTime:      session.StartTime.Format("2006-01-02T15:04:05Z07:00"),
	}})
}

func (h *Handler) ViewQuestion(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeJSON(w, r, http.StatusUnauthorized, response{OK: false, Error: "unauthorized"})
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, response{OK: false, Error: "invalid question index"})
		return
	}

	view, err := h.svc.View(r.Context(), user.ID, index)
	if err != nil {
		var redirect *IndexRedirect
		if errors.As(err, &redirect) {
			writeJSON(w, r, http.StatusOK, response{OK: true, Data: navigationResult{
				Action: "show_index",
				Index:  redirect.To,
			}})
			return
		}
		h.writeSessionError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, response{OK: true, Data: view})
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeJSON(w, r, http.StatusUnauthorized, response{OK: false, Error: "unauthorized"})
		return
	}

	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, response{OK: false, Error: "invalid request body"})
		return
	}
	if req.QuestionID == "" {
		writeJSON(w, r, http.StatusBadRequest, response{OK: false, Error: "question_id is required"})
		return
	}
	if req.Action != "next" && req.Action != "back" {
		writeJSON(w, r, http.StatusBadRequest, response{OK: false, Error: "action must be next or back"})
		return
	}

	if err := h.svc.RecordAnswer(r.Context(), user.ID, req.QuestionID, req.Answer); err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	if err := h.svc.SetReview(r.Context(), user.ID, req.QuestionID, req.MarkReview); err != nil {
		h.writeSessionError(w, r, err)
		return
	}

	next, finished, err := h.svc.Advance(r.Context(), user.ID, req.Action == "next")
	if err != nil {
		h.writeSessionError(w, r, err)
		return
	}

	if finished {
		writeJSON(w, r, http.StatusOK, response{OK: true, Data: navigationResult{Action: "finalize"}})
		return
	}
	writeJSON(w, r, http.StatusOK, response{OK: true, Data: navigationResult{Action: "show_index", Index: next}})
}

func (h *Handler) Finalize(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeJSON(w, r, http.StatusUnauthorized, response{OK: false, Error: "unauthorized"})
		return
	}

	report, err := h.svc.Finalize(r.Context(), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			writeJSON(w, r, http.StatusNotFound, response{OK: false, Error: err.Error()})
		case errors.Is(err, ErrIncompleteSession):
			writeJSON(w, r, http.StatusBadRequest, response{OK: false, Error: err.Error()})
		default:
			writeJSON(w, r, http.StatusInternalServerError, response{OK: false, Error: "internal error"})
		}
		return
	}

	result := finalizeResult{Results: report}
	scoreID, saveErr := h.saver.SaveScore(r.Context(), user.ID, report)
	if saveErr != nil {
		// The attempt is already cleared, so the user still gets their
		// results even when score history cannot be written.
		result.SaveError = "could not save your score to history"
	} else {
		result.ScoreID = scoreID
	}

	writeJSON(w, r, http.StatusOK, response{OK: true, Data: result})
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeJSON(w, r, http.StatusUnauthorized, response{OK: false, Error: "unauthorized"})
		return
	}

	if err := h.svc.Reset(r.Context(), user.ID); err != nil {
		writeJSON(w, r, http.StatusInternalServerError, response{OK: false, Error: "internal error"})
		return
	}
	writeJSON(w, r, http.StatusOK, response{OK: true, Data: map[string]string{"status": "reset"}})
}

func (h *Handler) writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		writeJSON(w, r, http.StatusNotFound, response{OK: false, Error: err.Error()})
	case errors.Is(err, ErrInvalidSessionState), errors.Is(err, ErrCatalogIntegrity):
		writeJSON(w, r, http.StatusConflict, response{OK: false, Error: err.Error()})
	case errors.Is(err, ErrQuestionNotInTest):
		writeJSON(w, r, http.StatusBadRequest, response{OK: false, Error: err.Error()})
	default:
		writeJSON(w, r, http.StatusInternalServerError, response{OK: false, Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, payload response) {
	if payload.OK {
		apiresp.WriteOK(w, r, code, payload.Data)
		return
	}
	apiresp.WriteError(w, r, code, payload.Error)
}
