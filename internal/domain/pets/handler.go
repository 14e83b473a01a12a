package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"penguin-pet/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const (
	feedMessage = "Yum! Thanks for the fish!"
	bathMessage = "Splash! I feel so fresh!"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pet", func(pr chi.Router) {
		pr.Get("/", getPetHandler(svc))
		pr.Patch("/", renamePetHandler(svc))

		pr.Post("/feed", feedHandler(svc))
		pr.Post("/bath", bathHandler(svc))
	})
}

// PetResponse es el estado en vivo del pingüino (stats ya decaídos).
type PetResponse struct {
	Hunger      int        `json:"hunger"`
	Cleanliness int        `json:"cleanliness"`
	Mood        Mood       `json:"mood" enums:"happy,ok,sad"`
	LastFedAt   *time.Time `json:"lastFedAt"`
	LastBathAt  *time.Time `json:"lastBathAt"`
	PetName     *string    `json:"petName"`
}

type feedResponse struct {
	OK      bool        `json:"ok"`
	Hunger  int         `json:"hunger"`
	Message string      `json:"message"`
	Pet     PetResponse `json:"pet"`
}

type bathResponse struct {
	OK          bool        `json:"ok"`
	Cleanliness int         `json:"cleanliness"`
	Message     string      `json:"message"`
	Pet         PetResponse `json:"pet"`
}

// getPetHandler godoc
// @Summary Estado actual del pingüino
// @Description Devuelve hunger/cleanliness decaídos al momento del request y el mood derivado.
// @Tags pet
// @Produce json
// @Success 200 {object} PetResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pet [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		snap, err := svc.Get(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToPetResponse(snap))
	}
}

// renamePetHandler godoc
// @Summary Renombrar al pingüino
// @Description petName string (se recorta a 50 caracteres) o null / "" para borrarlo.
// @Tags pet
// @Accept json
// @Produce json
// @Success 200 {object} PetResponse
// @Failure 400 {string} string "petName must be a string or null"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pet [patch]
func renamePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Body inválido se trata como {} (sin petName) => 400 abajo.
		var raw map[string]json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&raw)

		name, err := parsePetName(raw["petName"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		snap, err := svc.Rename(r.Context(), userID, name)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToPetResponse(snap))
	}
}

// feedHandler godoc
// @Summary Alimentar al pingüino
// @Description Aplica el decay pendiente y luego baja el hambre en 25.
// @Tags pet
// @Produce json
// @Success 200 {object} feedResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pet/feed [post]
func feedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		snap, err := svc.Feed(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, feedResponse{
			OK:      true,
			Hunger:  snap.Stats.Hunger,
			Message: feedMessage,
			Pet:     ToPetResponse(snap),
		})
	}
}

// bathHandler godoc
// @Summary Bañar al pingüino
// @Description Aplica el decay pendiente y luego sube la limpieza en 30 (tope 100).
// @Tags pet
// @Produce json
// @Success 200 {object} bathResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pet/bath [post]
func bathHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		snap, err := svc.Bath(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, bathResponse{
			OK:          true,
			Cleanliness: snap.Stats.Cleanliness,
			Message:     bathMessage,
			Pet:         ToPetResponse(snap),
		})
	}
}

var errPetNameType = errors.New("petName must be a string or null")

// parsePetName: ausente o de otro tipo => error; null => borrar; string => nombre.
func parsePetName(v json.RawMessage) (*string, error) {
	if v == nil {
		return nil, errPetNameType
	}
	if strings.TrimSpace(string(v)) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil, errPetNameType
	}
	return &s, nil
}

// ToPetResponse se exporta para que dashboard reutilice el mismo contrato.
func ToPetResponse(s Snapshot) PetResponse {
	return PetResponse{
		Hunger:      s.Stats.Hunger,
		Cleanliness: s.Stats.Cleanliness,
		Mood:        s.Stats.Mood,
		LastFedAt:   utcPtr(s.Pet.LastFedAt),
		LastBathAt:  utcPtr(s.Pet.LastBathAt),
		PetName:     s.Pet.PetName,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON se duplica en cada paquete de dominio (igual que el resto de módulos).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
