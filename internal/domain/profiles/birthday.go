package profiles

import (
	"math"
	"time"
)

const birthdayLayout = "2006-01-02"

func FormatBirthday(b time.Time) string {
	return b.UTC().Format(birthdayLayout)
}

// IsBirthdayToday compara mes y día en UTC; el año no importa.
func IsBirthdayToday(birthday *time.Time, now time.Time) bool {
	if birthday == nil {
		return false
	}
	b := birthday.UTC()
	n := now.UTC()
	return b.Month() == n.Month() && b.Day() == n.Day()
}

// DaysUntilBirthday cuenta días (redondeo hacia arriba) hasta el próximo cumpleaños.
// nil si no hay cumpleaños o si es hoy.
func DaysUntilBirthday(birthday *time.Time, now time.Time) *int {
	if birthday == nil || IsBirthdayToday(birthday, now) {
		return nil
	}
	b := birthday.UTC()
	n := now.UTC()

	next := time.Date(n.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	if !next.After(n) {
		next = time.Date(n.Year()+1, b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	}
	days := int(math.Ceil(next.Sub(n).Hours() / 24))
	return &days
}
