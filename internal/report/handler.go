package report

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/om3692/SAT/internal/app/apiresp"
	"github.com/om3692/SAT/internal/auth"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc scoreService
}

type scoreService interface {
	ListScores(ctx context.Context, userID int64, limit int) ([]ScoreSummary, error)
	GetScore(ctx context.Context, scoreID string) (*ScoreRecord, error)
	ExportCSV(rec *ScoreRecord) ([]byte, error)
	ExportExcel(rec *ScoreRecord) ([]byte, error)
}

type response struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func NewHandler(svc scoreService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ListScores(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeJSON(w, r, http.StatusUnauthorized, response{OK: false, Error: "unauthorized"})
		return
	}

	limit := 0
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			limit = n
		}
	}

	items, err := h.svc.ListScores(r.Context(), user.ID, limit)
	if err != nil {
		writeJSON(w, r, http.StatusInternalServerError, response{OK: false, Error: "internal error"})
		return
	}
	writeJSON(w, r, http.StatusOK, response{OK: true, Data: items})
}

func (h *Handler) GetScore(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.ownedScore(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, response{OK: true, Data: rec})
}

func (h *Handler) ExportScore(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.ownedScore(w, r)
	if !ok {
		return
	}

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = "csv"
	}

	switch format {
	case "csv":
		data, err := h.svc.ExportCSV(rec)
		if err != nil {
			writeJSON(w, r, http.StatusInternalServerError, response{OK: false, Error: "could not generate report"})
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=sat_detailed_report_%s.csv", rec.ID))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	case "xlsx":
		data, err := h.svc.ExportExcel(rec)
		if err != nil {
			writeJSON(w, r, http.StatusInternalServerError, response{OK: false, Error: "could not generate report"})
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=sat_detailed_report_%s.xlsx", rec.ID))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	default:
		writeJSON(w, r, http.StatusBadRequest, response{OK: false, Error: "unsupported report format"})
	}
}

// ownedScore loads the requested record and enforces that it belongs to the
// authenticated user. A foreign record reads as forbidden, not as missing.
func (h *Handler) ownedScore(w http.ResponseWriter, r *http.Request) (*ScoreRecord, bool) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeJSON(w, r, http.StatusUnauthorized, response{OK: false, Error: "unauthorized"})
		return nil, false
	}

	scoreID := strings.TrimSpace(chi.URLParam(r, "id"))
	if scoreID == "" {
		writeJSON(w, r, http.StatusBadRequest, response{OK: false, Error: "invalid score id"})
		return nil, false
	}

	rec, err := h.svc.GetScore(r.Context(), scoreID)
	if err != nil {
		if errors.Is(err, ErrScoreNotFound) {
			writeJSON(w, r, http.StatusNotFound, response{OK: false, Error: err.Error()})
			return nil, false
		}
		writeJSON(w, r, http.StatusInternalServerError, response{OK: false, Error: "internal error"})
		return nil, false
	}
	if rec.UserID != user.ID {
		writeJSON(w, r, http.StatusForbidden, response{OK: false, Error: "forbidden"})
		return nil, false
	}
	return rec, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, payload response) {
	if payload.OK {
		apiresp.WriteOK(w, r, code, payload.Data)
		return
	}
	apiresp.WriteError(w, r, code, payload.Error)
}
