package profiles

import "time"

// Profile es el perfil del usuario (uno por usuario).
// DailyMessage solo vale si LastDailyMessageAt cae en el mismo día UTC que "ahora".
type Profile struct {
	UserID string

	DisplayName *string
	Birthday    *time.Time // solo fecha, medianoche UTC

	LastDailyMessageAt *time.Time
	DailyMessage       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OptionalString distingue "no enviado" de "enviado como null" en un PATCH.
type OptionalString struct {
	Set   bool
	Value *string
}

type OptionalDate struct {
	Set   bool
	Value *time.Time
}

// Patch es una actualización parcial; solo se tocan los campos con Set=true.
type Patch struct {
	DisplayName OptionalString
	Birthday    OptionalDate
}

func (p Patch) Empty() bool {
	return !p.DisplayName.Set && !p.Birthday.Set
}

// Defaults se usan cuando el perfil no tiene nombre/cumpleaños cargados
// (despliegue personal: FRIEND_DISPLAY_NAME / FRIEND_BIRTHDAY).
type Defaults struct {
	DisplayName string
	Birthday    *time.Time
}

// Persona es la vista del perfil que consumen chat y dashboard.
type Persona struct {
	DisplayName       *string
	Birthday          *time.Time
	IsBirthdayToday   bool
	DaysUntilBirthday *int
}

// BirthdayFormatted devuelve YYYY-MM-DD o nil.
func (p Persona) BirthdayFormatted() *string {
	if p.Birthday == nil {
		return nil
	}
	s := FormatBirthday(*p.Birthday)
	return &s
}
