package exam

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SessionStore is the server-side keeper of in-progress test state, one
// document per user. Save replaces the whole document, so a write either
// lands completely or not at all; there is no partial-update path.
type SessionStore interface {
	Load(ctx context.Context, userID int64) (*Session, error)
	Save(ctx context.Context, userID int64, session *Session) error
	Clear(ctx context.Context, userID int64) error
}

// PGSessionStore stores each user's session as a jsonb document in the
// test_sessions table.
type PGSessionStore struct {
	db *sql.DB
}

func NewPGSessionStore(db *sql.DB) *PGSessionStore {
	return &PGSessionStore{db: db}
}

func (s *PGSessionStore) Load(ctx context.Context, userID int64) (*Session, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT state
		FROM test_sessions
		WHERE user_id = $1
	`, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load test session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, ErrInvalidSessionState
	}
	return &session, nil
}

func (s *PGSessionStore) Save(ctx context.Context, userID int64, session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode test session: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO test_sessions (user_id, state, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (user_id)
		DO UPDATE SET
			state = EXCLUDED.state,
			updated_at = now()
	`, userID, raw)
	if err != nil {
		return fmt.Errorf("save test session: %w", err)
	}
	return nil
}

func (s *PGSessionStore) Clear(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM test_sessions
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("clear test session: %w", err)
	}
	return nil
}
