package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/om3692/SAT/internal/catalog"
	"github.com/om3692/SAT/internal/exam"

	"github.com/google/uuid"
)

var ErrScoreNotFound = errors.New("score not found")

// ScoreRecord is one finished attempt in score history. The per-question
// answers ride along as a JSON document so exports can replay the attempt
// even after the catalog changes.
type ScoreRecord struct {
	ID            string            `json:"id"`
	UserID        int64             `json:"user_id"`
	TotalScore    int               `json:"total_score"`
	MathScore     int               `json:"math_score"`
	RWScore       int               `json:"rw_score"`
	CorrectCount  int               `json:"correct_count"`
	TotalAnswered int               `json:"total_answered"`
	TimeTakenSecs int64             `json:"time_taken_secs"`
	CreatedAt     time.Time         `json:"created_at"`
	Answers       map[string]string `json:"answers,omitempty"`
}

// ScoreSummary is the list view of a record, without the answer payload.
type ScoreSummary struct {
	ID            string    `json:"id"`
	TotalScore    int       `json:"total_score"`
	MathScore     int       `json:"math_score"`
	RWScore       int       `json:"rw_score"`
	CorrectCount  int       `json:"correct_count"`
	TotalAnswered int       `json:"total_answered"`
	TimeTakenSecs int64     `json:"time_taken_secs"`
	CreatedAt     time.Time `json:"created_at"`
}

type Service struct {
	db      *sql.DB
	catalog *catalog.Catalog
}

func NewService(db *sql.DB, c *catalog.Catalog) *Service {
	return &Service{db: db, catalog: c}
}

// SaveScore appends a finalized report to the user's score history and
// returns the new record id.
func (s *Service) SaveScore(ctx context.Context, userID int64, report exam.ScoreReport) (string, error) {
	answersData, err := json.Marshal(report.Answers)
	if err != nil {
		return "", fmt.Errorf("encode answers: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO scores (
			id, user_id, total_score, math_score, rw_score,
			correct_count, total_answered, time_taken_secs, answers_data, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, now()
		)
	`, id, userID, report.TotalScore, report.MathScore, report.RWScore,
		report.CorrectCount, report.TotalAnswered, report.TimeTakenSecs, answersData)
	if err != nil {
		return "", fmt.Errorf("insert score: %w", err)
	}
	return id, nil
}

// ListScores returns the user's score history, newest first.
func (s *Service) ListScores(ctx context.Context, userID int64, limit int) ([]ScoreSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, total_score, math_score, rw_score,
		       correct_count, total_answered, time_taken_secs, created_at
		FROM scores
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()

	items := []ScoreSummary{}
	for rows.Next() {
		var it ScoreSummary
		if err := rows.Scan(&it.ID, &it.TotalScore, &it.MathScore, &it.RWScore,
			&it.CorrectCount, &it.TotalAnswered, &it.TimeTakenSecs, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan score row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate score rows: %w", err)
	}
	return items, nil
}

// GetScore fetches one record including its answer payload. Ownership is the
// caller's concern; the record carries UserID for that check.
func (s *Service) GetScore(ctx context.Context, scoreID string) (*ScoreRecord, error) {
	if _, err := uuid.Parse(scoreID); err != nil {
		return nil, ErrScoreNotFound
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, total_score, math_score, rw_score,
		       correct_count, total_answered, time_taken_secs, answers_data, created_at
		FROM scores
		WHERE id = $1
	`, scoreID)

	var rec ScoreRecord
	var answersData []byte
	err := row.Scan(&rec.ID, &rec.UserID, &rec.TotalScore, &rec.MathScore, &rec.RWScore,
		&rec.CorrectCount, &rec.TotalAnswered, &rec.TimeTakenSecs, &answersData, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScoreNotFound
		}
		return nil, fmt.Errorf("query score: %w", err)
	}

	if len(answersData) > 0 {
		if err := json.Unmarshal(answersData, &rec.Answers); err != nil {
			// Export falls back to "Not Answered" rows rather than failing
			// the whole record.
			rec.Answers = nil
		}
	}
	return &rec, nil
}
