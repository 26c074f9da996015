package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSummaryHandler(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	h := NewHandler(c, 30)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/summary", nil)
	w := httptest.NewRecorder()
	h.Summary(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		OK   bool `json:"ok"`
		Data struct {
			TotalQuestions          int `json:"total_questions"`
			MathQuestions           int `json:"math_questions"`
			ReadingWritingQuestions int `json:"reading_writing_questions"`
			DurationMinutes         int `json:"duration_minutes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.OK {
		t.Fatal("response not ok")
	}
	if body.Data.TotalQuestions != 30 || body.Data.MathQuestions != 10 || body.Data.ReadingWritingQuestions != 20 {
		t.Fatalf("summary = %+v", body.Data)
	}
	if body.Data.DurationMinutes != 30 {
		t.Fatalf("duration = %d, want 30", body.Data.DurationMinutes)
	}
}
