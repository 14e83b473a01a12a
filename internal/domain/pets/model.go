package pets

import "time"

// Mood se deriva siempre de los stats decaídos; nunca se persiste como fuente de verdad.
type Mood string

const (
	MoodHappy Mood = "happy"
	MoodOK    Mood = "ok"
	MoodSad   Mood = "sad"
)

const MaxPetNameLength = 50

// Pet es el registro persistido del pingüino (uno por usuario).
// Hunger y Cleanliness son baselines válidos al momento de LastFedAt / LastBathAt,
// no valores "en vivo": el valor actual se reconstruye con ComputeDecayedStats.
type Pet struct {
	UserID string

	Hunger      float64 // 0..100, más alto = más hambre
	Cleanliness float64 // 0..100, más alto = más limpio

	LastFedAt  *time.Time
	LastBathAt *time.Time

	PetName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stats son los valores en vivo (ya decaídos y redondeados).
type Stats struct {
	Hunger      int
	Cleanliness int
	Mood        Mood
}

// Snapshot junta el registro con sus stats en vivo para responder al cliente.
type Snapshot struct {
	Pet   Pet
	Stats Stats
}
