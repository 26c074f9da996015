package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

type contextKey string

const userContextKey contextKey = "auth_user"

const sessionCookieName = "sat_session"

type Handler struct {
	svc *Service
}

type apiResponse struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{OK: false, Error: "invalid request body"})
		return
	}

	user, err := h.svc.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTooShort), errors.Is(err, ErrPasswordTooShort):
			writeJSON(w, http.StatusBadRequest, apiResponse{OK: false, Error: err.Error()})
		case errors.Is(err, ErrUsernameTaken):
			writeJSON(w, http.StatusConflict, apiResponse{OK: false, Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, apiResponse{OK: false, Error: "internal error"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, apiResponse{OK: true, Data: user})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{OK: false, Error: "invalid request body"})
		return
	}

	user, err := h.svc.AuthenticatePassword(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, apiResponse{OK: false, Error: "invalid credentials"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, apiResponse{OK: false, Error: "internal error"})
		return
	}

	if err := h.establishSession(w, r, user); err != nil {
		writeJSON(w, http.StatusInternalServerError, apiResponse{OK: false, Error: "cannot create session"})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{OK: true, Data: user})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := readSessionToken(r)
	_ = h.svc.RevokeSession(r.Context(), token)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	writeJSON(w, http.StatusOK, apiResponse{OK: true, Data: map[string]string{"status": "logged_out"}})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiResponse{OK: false, Error: "unauthorized"})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{OK: true, Data: user})
}

func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := readSessionToken(r)
		user, err := h.svc.GetSessionUser(r.Context(), token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, apiResponse{OK: false, Error: "unauthorized"})
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func CurrentUser(ctx context.Context) (*User, bool) {
	v := ctx.Value(userContextKey)
	if v == nil {
		return nil, false
	}
	u, ok := v.(*User)
	return u, ok
}

// ContextWithUser injects an authenticated user into context.
// Useful for tests and internal handlers.
func ContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func (h *Handler) establishSession(w http.ResponseWriter, r *http.Request, user *User) error {
	token, expiresAt, err := h.svc.CreateSession(r.Context(), user.ID, readIP(r), r.UserAgent())
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func readSessionToken(r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func readIP(r *http.Request) string {
	xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For"))
	if xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	return strings.TrimSpace(r.RemoteAddr)
}

func writeJSON(w http.ResponseWriter, code int, payload apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
