package profiles

import (
	"math/rand/v2"
	"time"
)

var dailyMessages = []string{
	"You're doing great today!",
	"I'm so glad you're here.",
	"Sending you a little penguin hug!",
	"You make every day brighter.",
	"Hope today is full of good things.",
	"I believe in you!",
	"Take a moment to be proud of yourself.",
	"You're one of a kind!",
	"Thanks for taking care of me.",
	"Have a wonderful day!",
	"You deserve something nice today.",
	"I'm rooting for you!",
	"Little steps still count.",
	"You're enough, just as you are.",
	"Today is a fresh start.",
}

// DailyMessages devuelve una copia de la lista fija de mensajes.
func DailyMessages() []string {
	out := make([]string, len(dailyMessages))
	copy(out, dailyMessages)
	return out
}

// SameUTCDay compara año/mes/día en UTC, ignorando la hora.
func SameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// ShouldRefreshDailyMessage es true si nunca hubo mensaje o el último es de otro día UTC.
// Es por día calendario, no ventana de 24h: 23:59 -> 00:01 ya refresca.
func ShouldRefreshDailyMessage(lastDailyMessageAt *time.Time, now time.Time) bool {
	if lastDailyMessageAt == nil {
		return true
	}
	return !SameUTCDay(*lastDailyMessageAt, now)
}

// PickDailyMessage elige uno al azar (uniforme, sin seed).
func PickDailyMessage() string {
	return dailyMessages[rand.IntN(len(dailyMessages))]
}

// MessageToShow devuelve el mensaje cacheado solo si es de hoy (UTC); nil => hay que refrescar.
func MessageToShow(dailyMessage *string, lastDailyMessageAt *time.Time, now time.Time) *string {
	if dailyMessage == nil || *dailyMessage == "" || lastDailyMessageAt == nil {
		return nil
	}
	if !SameUTCDay(*lastDailyMessageAt, now) {
		return nil
	}
	return dailyMessage
}
