package profiles

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"penguin-pet/internal/config"
	"penguin-pet/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/profile", func(pr chi.Router) {
		pr.Get("/", getProfileHandler(svc))
		pr.Patch("/", patchProfileHandler(svc))
	})
}

// ProfileResponse: birthday va como YYYY-MM-DD.
type ProfileResponse struct {
	DisplayName *string `json:"displayName"`
	Birthday    *string `json:"birthday" example:"1995-06-15"`
}

// getProfileHandler godoc
// @Summary Perfil del usuario
// @Description Si el perfil no tiene nombre o cumpleaños se usan los defaults del despliegue.
// @Tags profile
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {string} string "unauthorized"
// @Router /profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		persona, err := svc.Persona(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ProfileResponse{
			DisplayName: persona.DisplayName,
			Birthday:    persona.BirthdayFormatted(),
		})
	}
}

// patchProfileHandler godoc
// @Summary Actualizar perfil
// @Description displayName string ("" => null). birthday null o fecha; una fecha inválida se ignora.
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {string} string "unauthorized"
// @Router /profile [patch]
func patchProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// un body que no es un objeto JSON cuenta como patch vacío
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			raw = nil
		}

		p, err := svc.Update(r.Context(), userID, parsePatch(raw))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// parsePatch: campos con tipo inesperado se ignoran en vez de fallar.
func parsePatch(raw map[string]json.RawMessage) Patch {
	var patch Patch

	// null no es string: se ignora, igual que números u objetos
	if v, ok := raw["displayName"]; ok && !isNull(v) {
		var s string
		if json.Unmarshal(v, &s) == nil {
			patch.DisplayName = OptionalString{Set: true, Value: &s}
		}
	}

	if v, ok := raw["birthday"]; ok {
		switch {
		case isNull(v):
			patch.Birthday = OptionalDate{Set: true}
		default:
			var s string
			if json.Unmarshal(v, &s) == nil {
				if b, ok := config.ParseBirthday(s); ok {
					patch.Birthday = OptionalDate{Set: true, Value: &b}
				}
			}
		}
	}
	return patch
}

func isNull(v json.RawMessage) bool {
	return strings.TrimSpace(string(v)) == "null"
}

func toProfileResponse(p Profile) ProfileResponse {
	out := ProfileResponse{DisplayName: p.DisplayName}
	if p.Birthday != nil {
		s := FormatBirthday(*p.Birthday)
		out.Birthday = &s
	}
	return out
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
