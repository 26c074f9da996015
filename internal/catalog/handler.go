package catalog

import (
	"net/http"

	"github.com/om3692/SAT/internal/app/apiresp"
)

type Handler struct {
	catalog         *Catalog
	durationMinutes int
}

func NewHandler(c *Catalog, durationMinutes int) *Handler {
	return &Handler{catalog: c, durationMinutes: durationMinutes}
}

type summaryResponse struct {
	TotalQuestions          int `json:"total_questions"`
	MathQuestions           int `json:"math_questions"`
	ReadingWritingQuestions int `json:"reading_writing_questions"`
	DurationMinutes         int `json:"duration_minutes"`
}

// Summary describes the practice test on offer: how many questions per
// section and the suggested duration. Public, no session required.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	math, rw := h.catalog.SectionTotals()
	apiresp.WriteOK(w, r, http.StatusOK, summaryResponse{
		TotalQuestions:          h.catalog.Len(),
		MathQuestions:           math,
		ReadingWritingQuestions: rw,
		DurationMinutes:         h.durationMinutes,
	})
}
