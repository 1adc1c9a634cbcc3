package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"kitty-catalog/internal/middleware"
	"kitty-catalog/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterPublicRoutes monta las rutas que no exigen bearer token.
// El refresh token viaja como query param y es la credencial en sí mismo.
func RegisterPublicRoutes(r chi.Router, svc *Service) {
	r.Post("/user/registration", registerHandler(svc))
	r.Post("/user/login", loginHandler(svc))
	r.Post("/user/refresh", refreshHandler(svc))
}

// RegisterProtectedRoutes va dentro del grupo autenticado.
func RegisterProtectedRoutes(r chi.Router, svc *Service) {
	r.Post("/user/me", meHandler(svc))
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

type tokenResponse struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// meResponse expone password_hash y refresh_token tal cual están guardados.
// Hay clientes que dependen de este shape; ver la nota de seguridad en DESIGN.md.
type meResponse struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Password     string     `json:"password"`
	RefreshToken string     `json:"refresh_token"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at"`
}

func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrUsernameTaken):
				http.Error(w, "username already taken", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, registerResponse{
			ID:        u.ID,
			Username:  u.Username,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
			DeletedAt: u.DeletedAt,
		})
	}
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		pair, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toTokenResponse(pair))
	}
}

func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := svc.Me(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, meResponse{
			ID:           u.ID,
			Username:     u.Username,
			Password:     u.PasswordHash,
			RefreshToken: u.RefreshToken,
			CreatedAt:    u.CreatedAt,
			UpdatedAt:    u.UpdatedAt,
			DeletedAt:    u.DeletedAt,
		})
	}
}

func refreshHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.URL.Query().Get("refresh_token"))
		if token == "" {
			http.Error(w, "invalid refresh token", http.StatusUnauthorized)
			return
		}

		pair, err := svc.Refresh(r.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				http.Error(w, "invalid refresh token", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toTokenResponse(pair))
	}
}

func toTokenResponse(p TokenPair) tokenResponse {
	return tokenResponse{
		UserID:       p.UserID,
		Username:     p.Username,
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    "bearer",
	}
}

// writeJSON se duplica en los handlers de cada módulo a propósito;
// todavía no amerita un helper compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
