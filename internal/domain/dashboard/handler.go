package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"penguin-pet/internal/domain/pets"
	"penguin-pet/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dashboard", getDashboardHandler(svc))
}

type Response struct {
	Greeting          string            `json:"greeting" example:"Good morning"`
	DisplayName       *string           `json:"displayName"`
	DedicationMessage *string           `json:"dedicationMessage"`
	IsBirthdayToday   bool              `json:"isBirthdayToday"`
	DaysUntilBirthday *int              `json:"daysUntilBirthday"`
	BirthdayMessage   *string           `json:"birthdayMessage"`
	DailyMessage      *string           `json:"dailyMessage"`
	BirthdayReply     string            `json:"birthdayReply"`
	Pet               *pets.PetResponse `json:"pet"`
}

// getDashboardHandler godoc
// @Summary Pantalla principal
// @Description Saludo, mensaje del día (rota por día UTC), cumpleaños y estado del pingüino.
// @Tags dashboard
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {string} string "unauthorized"
// @Router /dashboard [get]
func getDashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		v, err := svc.Get(r.Context(), userID)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(v))
	}
}

func toResponse(v View) Response {
	out := Response{
		Greeting:          v.Greeting,
		DisplayName:       v.DisplayName,
		DedicationMessage: v.DedicationMessage,
		IsBirthdayToday:   v.IsBirthdayToday,
		DaysUntilBirthday: v.DaysUntilBirthday,
		BirthdayMessage:   v.BirthdayMessage,
		DailyMessage:      v.DailyMessage,
		BirthdayReply:     v.BirthdayReply,
	}
	if v.Pet != nil {
		p := pets.ToPetResponse(*v.Pet)
		out.Pet = &p
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
