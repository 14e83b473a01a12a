package pets

import (
	"math"
	"time"
)

const (
	HungerPerHour      = 2.0
	CleanlinessPerHour = 1.5

	FeedAmount = 25
	BathAmount = 30

	InitialHunger      = 50
	InitialCleanliness = 50

	minStat = 0.0
	maxStat = 100.0
)

// ComputeDecayedStats reconstruye los stats actuales a partir del baseline y el tiempo transcurrido.
// Un timestamp nil significa "nunca alimentado/bañado": ese stat no decae.
// El mood se clasifica con los valores clampeados pero antes de redondear.
func ComputeDecayedStats(hunger, cleanliness float64, lastFedAt, lastBathAt *time.Time, now time.Time) Stats {
	h := hunger
	c := cleanliness

	if lastFedAt != nil {
		h = hunger + hoursSince(*lastFedAt, now)*HungerPerHour
	}
	if lastBathAt != nil {
		c = cleanliness - hoursSince(*lastBathAt, now)*CleanlinessPerHour
	}

	h = clamp(h)
	c = clamp(c)

	return Stats{
		Hunger:      int(math.Round(h)),
		Cleanliness: int(math.Round(c)),
		Mood:        classifyMood(h, c),
	}
}

// Live es un atajo sobre el registro persistido.
func (p Pet) Live(now time.Time) Stats {
	return ComputeDecayedStats(p.Hunger, p.Cleanliness, p.LastFedAt, p.LastBathAt, now)
}

// ApplyFeed decae primero y después descuenta FeedAmount; el resultado pasa a ser el nuevo baseline.
// Aplicar el delta sobre el baseline viejo contaría dos veces el tiempo transcurrido.
func ApplyFeed(p Pet, now time.Time) Pet {
	live := p.Live(now)
	p.Hunger = math.Max(minStat, float64(live.Hunger-FeedAmount))
	t := now
	p.LastFedAt = &t
	p.UpdatedAt = now
	return p
}

// ApplyBath decae primero y después suma BathAmount (tope 100).
func ApplyBath(p Pet, now time.Time) Pet {
	live := p.Live(now)
	p.Cleanliness = math.Min(maxStat, float64(live.Cleanliness+BathAmount))
	t := now
	p.LastBathAt = &t
	p.UpdatedAt = now
	return p
}

// classifyMood: el orden importa, sad gana sobre ok y ok sobre happy.
func classifyMood(hunger, cleanliness float64) Mood {
	switch {
	case hunger > 70 || cleanliness < 30:
		return MoodSad
	case hunger > 50 || cleanliness < 50:
		return MoodOK
	default:
		return MoodHappy
	}
}

// hoursSince no devuelve negativos: un timestamp en el futuro (reloj desfasado) no "rejuvenece" al pet.
func hoursSince(t, now time.Time) float64 {
	d := now.Sub(t)
	if d < 0 {
		return 0
	}
	return d.Hours()
}

func clamp(v float64) float64 {
	return math.Max(minStat, math.Min(maxStat, v))
}
