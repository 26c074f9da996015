package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/om3692/SAT/internal/auth"

	"github.com/go-chi/chi/v5"
)

type mockScoreService struct {
	listScoresFn  func(ctx context.Context, userID int64, limit int) ([]ScoreSummary, error)
	getScoreFn    func(ctx context.Context, scoreID string) (*ScoreRecord, error)
	exportCSVFn   func(rec *ScoreRecord) ([]byte, error)
	exportExcelFn func(rec *ScoreRecord) ([]byte, error)
}

func (m *mockScoreService) ListScores(ctx context.Context, userID int64, limit int) ([]ScoreSummary, error) {
	if m.listScoresFn == nil {
		return nil, errors.New("not implemented")
	}
	return m.listScoresFn(ctx, userID, limit)
}

func (m *mockScoreService) GetScore(ctx context.Context, scoreID string) (*ScoreRecord, error) {
	if m.getScoreFn == nil {
		return nil, errors.New("not implemented")
	}
	return m.getScoreFn(ctx, scoreID)
}

func (m *mockScoreService) ExportCSV(rec *ScoreRecord) ([]byte, error) {
	if m.exportCSVFn == nil {
		return nil, errors.New("not implemented")
	}
	return m.exportCSVFn(rec)
}

func (m *mockScoreService) ExportExcel(rec *ScoreRecord) ([]byte, error) {
	if m.exportExcelFn == nil {
		return nil, errors.New("not implemented")
	}
	return m.exportExcelFn(rec)
}

func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func asUser(r *http.Request, id int64) *http.Request {
	return r.WithContext(auth.ContextWithUser(r.Context(), &auth.User{ID: id, Username: "student"}))
}

const recordID = "3d9a2b7c-1111-4222-8333-444455556666"

func TestListScoresForwardsUser(t *testing.T) {
	h := NewHandler(&mockScoreService{
		listScoresFn: func(ctx context.Context, userID int64, limit int) ([]ScoreSummary, error) {
			if userID != 9 {
				t.Fatalf("userID = %d, want 9", userID)
			}
			return []ScoreSummary{{ID: recordID, TotalScore: 1200}}, nil
		},
	})

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/scores", nil), 9)
	w := httptest.NewRecorder()
	h.ListScores(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data, ok := body["data"].([]interface{})
	if !ok || len(data) != 1 {
		t.Fatalf("data = %v, want one summary", body["data"])
	}
}

func TestGetScoreForbiddenForNonOwner(t *testing.T) {
	h := NewHandler(&mockScoreService{
		getScoreFn: func(ctx context.Context, scoreID string) (*ScoreRecord, error) {
			return &ScoreRecord{ID: scoreID, UserID: 42}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scores/"+recordID, nil)
	req = withChiParam(req, "id", recordID)
	req = asUser(req, 9)
	w := httptest.NewRecorder()
	h.GetScore(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestGetScoreNotFound(t *testing.T) {
	h := NewHandler(&mockScoreService{
		getScoreFn: func(ctx context.Context, scoreID string) (*ScoreRecord, error) {
			return nil, ErrScoreNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scores/"+recordID, nil)
	req = withChiParam(req, "id", recordID)
	req = asUser(req, 9)
	w := httptest.NewRecorder()
	h.GetScore(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestExportScoreCSV(t *testing.T) {
	h := NewHandler(&mockScoreService{
		getScoreFn: func(ctx context.Context, scoreID string) (*ScoreRecord, error) {
			return &ScoreRecord{ID: scoreID, UserID: 9}, nil
		},
		exportCSVFn: func(rec *ScoreRecord) ([]byte, error) {
			return []byte("Question Number,Section\n"), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scores/"+recordID+"/export?format=csv", nil)
	req = withChiParam(req, "id", recordID)
	req = asUser(req, 9)
	w := httptest.NewRecorder()
	h.ExportScore(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "sat_detailed_report_"+recordID+".csv") {
		t.Fatalf("content disposition = %q", cd)
	}
}

func TestExportScoreDefaultsToCSV(t *testing.T) {
	called := false
	h := NewHandler(&mockScoreService{
		getScoreFn: func(ctx context.Context, scoreID string) (*ScoreRecord, error) {
			return &ScoreRecord{ID: scoreID, UserID: 9}, nil
		},
		exportCSVFn: func(rec *ScoreRecord) ([]byte, error) {
			called = true
			return []byte("x"), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scores/"+recordID+"/export", nil)
	req = withChiParam(req, "id", recordID)
	req = asUser(req, 9)
	w := httptest.NewRecorder()
	h.ExportScore(w, req)

	if w.Code != http.StatusOK || !called {
		t.Fatalf("status = %d called = %v", w.Code, called)
	}
}

func TestExportScoreXLSX(t *testing.T) {
	h := NewHandler(&mockScoreService{
		getScoreFn: func(ctx context.Context, scoreID string) (*ScoreRecord, error) {
			return &ScoreRecord{ID: scoreID, UserID: 9}, nil
		},
		exportExcelFn: func(rec *ScoreRecord) ([]byte, error) {
			return []byte{0x50, 0x4b}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scores/"+recordID+"/export?format=xlsx", nil)
	req = withChiParam(req, "id", recordID)
	req = asUser(req, 9)
	w := httptest.NewRecorder()
	h.ExportScore(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Fatalf("content type = %q", ct)
	}
}

func TestExportScoreUnsupportedFormat(t *testing.T) {
	h := NewHandler(&mockScoreService{
		getScoreFn: func(ctx context.Context, scoreID string) (*ScoreRecord, error) {
			return &ScoreRecord{ID: scoreID, UserID: 9}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scores/"+recordID+"/export?format=pdf", nil)
	req = withChiParam(req, "id", recordID)
	req = asUser(req, 9)
	w := httptest.NewRecorder()
	h.ExportScore(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestExportScoreForbiddenForNonOwner(t *testing.T) {
	exported := false
	h := NewHandler(&mockScoreService{
		getScoreFn: func(ctx context.Context, scoreID string) (*ScoreRecord, error) {
			return &ScoreRecord{ID: scoreID, UserID: 42}, nil
		},
		exportCSVFn: func(rec *ScoreRecord) ([]byte, error) {
			exported = true
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scores/"+recordID+"/export", nil)
	req = withChiParam(req, "id", recordID)
	req = asUser(req, 9)
	w := httptest.NewRecorder()
	h.ExportScore(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if exported {
		t.Fatal("export ran for a foreign record")
	}
}
