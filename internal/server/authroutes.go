package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/asifr/shikkhok/internal/auth"
	"github.com/asifr/shikkhok/internal/store"
)

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		writeDetail(w, http.StatusBadRequest, "email, username and password are required")
		return
	}

	if _, err := h.users.GetByEmail(r.Context(), req.Email); !errors.Is(err, store.ErrNotFound) {
		if err == nil {
			writeDetail(w, http.StatusBadRequest, "Email already registered")
			return
		}
		h.log.Error("register lookup", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "registration failed")
		return
	}
	if _, err := h.users.GetByUsername(r.Context(), req.Username); !errors.Is(err, store.ErrNotFound) {
		if err == nil {
			writeDetail(w, http.StatusBadRequest, "Username already taken")
			return
		}
		h.log.Error("register lookup", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "registration failed")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error("hash password", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "registration failed")
		return
	}

	if _, err := h.users.Create(r.Context(), req.Email, req.Username, hashed); err != nil {
		h.log.Error("create user", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "registration failed")
		return
	}

	h.log.Info("user registered", zap.String("username", req.Username))
	writeJSON(w, http.StatusOK, map[string]string{"message": "User registered successfully"})
}

// Token logs a user in. Credentials arrive form-encoded, matching OAuth2
// password-grant clients.
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid form body")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.users.GetByUsername(r.Context(), username)
	if err != nil || !auth.VerifyPassword(password, user.HashedPassword) {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		h.log.Error("issue token", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Health verifies the database connection.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.log.Error("health check", zap.Error(err))
		writeDetail(w, http.StatusServiceUnavailable, "Database connection failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}
