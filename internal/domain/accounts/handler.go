package accounts

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// CookieOptions configura la cookie de sesión (HttpOnly, SameSite=Lax, Path=/).
type CookieOptions struct {
	Name   string
	Secure bool
}

func RegisterRoutes(r chi.Router, svc *Service, cookie CookieOptions) {
	if cookie.Name == "" {
		cookie.Name = "penguin_session"
	}
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc, cookie))
		ar.Post("/login", loginHandler(svc, cookie))
		ar.Post("/logout", logoutHandler(cookie))
	})
}

type CredentialsRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"secret123"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type SessionResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// registerHandler godoc
// @Summary Crear cuenta
// @Description Crea usuario, pingüino y perfil; deja la sesión en la cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "credenciales (password mín. 6)"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register [post]
func registerHandler(svc *Service, cookie CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		sess, err := svc.Register(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid email or password (min 6 characters)"})
			case errors.Is(err, ErrAlreadyExists):
				writeJSON(w, http.StatusConflict, ErrorResponse{Error: "An account with this email already exists"})
			default:
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
			}
			return
		}

		setSessionCookie(w, cookie, sess)
		writeJSON(w, http.StatusCreated, toSessionResponse(sess))
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "credenciales"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func loginHandler(svc *Service, cookie CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		sess, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
			return
		}

		setSessionCookie(w, cookie, sess)
		writeJSON(w, http.StatusOK, toSessionResponse(sess))
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Description Expira la cookie de sesión. El JWT no se revoca del lado del servidor.
// @Tags auth
// @Produce json
// @Success 200 {object} okResponse
// @Router /auth/logout [post]
func logoutHandler(cookie CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     cookie.Name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
			Secure:   cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	}
}

func setSessionCookie(w http.ResponseWriter, cookie CookieOptions, sess Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookie.Name,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func toSessionResponse(s Session) SessionResponse {
	return SessionResponse{
		User:      UserResponse{ID: s.User.ID, Email: s.User.Email},
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.UTC(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
