package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

type Service struct {
	db         *sql.DB
	sessionTTL time.Duration
	bcryptCost int
}

type ServiceConfig struct {
	SessionTTL time.Duration
	BcryptCost int
}

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func NewService(db *sql.DB, cfg ServiceConfig) *Service {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.BcryptCost <= 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		db:         db,
		sessionTTL: cfg.SessionTTL,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new user account. Usernames are case-sensitive and
// unique; the stored password is a bcrypt hash, never the plaintext.
func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLen {
		return nil, ErrUsernameTooShort
	}
	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)
	`, username).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var u User
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, created_at)
		VALUES ($1, $2, now())
		RETURNING id, username, created_at
	`, username, string(hash)).Scan(&u.ID, &u.Username, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (s *Service) AuthenticatePassword(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, username, created_at, password_hash
		FROM users
		WHERE username = $1
		LIMIT 1
	`, username)

	var u User
	var passwordHash string
	if err := row.Scan(&u.ID, &u.Username, &u.CreatedAt, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// CreateSession issues an opaque token for the user. Only the sha256 hash of
// the token is stored, so a leaked sessions table cannot be replayed.
func (s *Service) CreateSession(ctx context.Context, userID int64, ipAddress, userAgent string) (string, time.Time, error) {
	token, err := generateToken(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate session token: %w", err)
	}
	expiresAt := time.Now().Add(s.sessionTTL)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO auth_sessions (
			user_id, session_token_hash, expires_at, ip_address, user_agent, created_at
		) VALUES (
			$1, $2, $3, $4, $5, now()
		)
	`, userID, hashToken(token), expiresAt, nullableString(ipAddress), nullableString(userAgent))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("insert session: %w", err)
	}
	return token, expiresAt, nil
}

func (s *Service) GetSessionUser(ctx context.Context, token string) (*User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrUnauthorized
	}
	row := s.db.QueryRowContext(ctx, `
		SELECT u.id, u.username, u.created_at
		FROM auth_sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.session_token_hash = $1
		  AND s.revoked_at IS NULL
		  AND s.expires_at > now()
		LIMIT 1
	`, hashToken(token))

	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("query session user: %w", err)
	}
	return &u, nil
}

func (s *Service) RevokeSession(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE auth_sessions
		SET revoked_at = now()
		WHERE session_token_hash = $1
		  AND revoked_at IS NULL
	`, hashToken(token))
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func generateToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

func nullableString(v string) interface{} {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return v
}
