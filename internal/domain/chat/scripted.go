package chat

import "strings"

const (
	fallbackName     = "friend"
	fallbackBirthday = "a special day"

	defaultTemplate = "That's a nice question! I'm just a little penguin but I'm happy you're here, {displayName}!"
)

// ReplyContext es lo que el pingüino sabe del usuario al contestar.
type ReplyContext struct {
	DisplayName       string
	BirthdayFormatted *string // YYYY-MM-DD
	IsBirthdayToday   bool
}

type rule struct {
	patterns []string
	template string
}

// El orden importa: gana la primera regla con algún patrón contenido en el input.
var rules = []rule{
	{[]string{"birthday", "when is my birthday", "my birthday", "remember my birthday"},
		"I remember! Your birthday is {birthday}. I'll never forget!"},
	{[]string{"love", "do you love me", "love me", "you love"},
		"I love you so much, {displayName}! You're my favourite person."},
	{[]string{"name", "what's my name", "what is my name", "my name", "call me"},
		"Your name is {displayName}. I love saying it!"},
	{[]string{"hello", "hi", "hey", "good morning", "good evening", "good night"},
		"Hi {displayName}! So nice to see you!"},
	{[]string{"how are you", "how are u", "are you ok", "you ok"},
		"I'm doing great when you're here, {displayName}!"},
	{[]string{"happy", "you happy", "are you happy"},
		"I'm so happy when you're here, {displayName}!"},
	{[]string{"sad", "you sad", "are you sad"},
		"A little penguin hug from me to you, {displayName}. I'm here for you!"},
	{[]string{"thank", "thanks", "thank you"},
		"You're welcome! You're the best, {displayName}!"},
	{[]string{"friend", "best friend", "you're my friend"},
		"You're my best friend too, {displayName}!"},
	{[]string{"hungry", "feed", "eating", "food"},
		"I could use a little fish if you have some! *waddles hopefully*"},
	{[]string{"bath", "clean", "wash", "dirty"},
		"A bath sounds lovely! I love splashing in the water!"},
	{[]string{"cute", "adorable", "sweet", "you're cute"},
		"Aww thank you, {displayName}! You're pretty cute yourself!"},
	{[]string{"miss", "missed you", "i missed you"},
		"I missed you too, {displayName}! Don't stay away too long!"},
	{[]string{"goodbye", "bye", "see you", "later"},
		"Bye bye, {displayName}! Come back soon!"},
	{[]string{"weather", "cold", "snow", "ice"},
		"I love the cold! It reminds me of home. Do you like snow, {displayName}?"},
	{[]string{"penguin", "what are you", "who are you"},
		"I'm your penguin pal! I'm here to keep you company, {displayName}!"},
	{[]string{"help", "what can you do"},
		"You can feed me, give me a bath, and ask me anything! I'll always answer, {displayName}!"},
	{[]string{"yes", "yeah", "yep"},
		"I'm glad you agree! *happy waddle*"},
	{[]string{"no", "nope"},
		"That's okay! I'm still here for you, {displayName}!"},
	{[]string{"hug", "hug me", "give me a hug"},
		"*waddles over and gives you a fluffy hug* You're the best, {displayName}!"},
	{[]string{"tired", "sleep", "sleepy", "good night"},
		"Rest well, {displayName}! I'll be here when you wake up!"},
	{[]string{"nice to meet you", "meet you", "first time"},
		"Nice to meet you too, {displayName}! I'm so glad you're here!"},
	{[]string{"song", "sing", "music", "dance"},
		"I'm not the best singer but I can waddle to the beat! *happy dance*"},
	{[]string{"sorry", "apologize", "my bad"},
		"It's okay, {displayName}! Everyone makes mistakes. I still love you!"},
	{[]string{"worried", "anxious", "stress", "nervous"},
		"Take a deep breath. I'm here for you, {displayName}. You've got this!"},
	{[]string{"awesome", "amazing", "great", "wonderful", "best"},
		"You're pretty awesome yourself! Thanks for being you, {displayName}!"},
}

// ScriptedReply es determinístico: mismo input + contexto => misma respuesta.
// Matchea por substring sobre el input normalizado (trim + minúsculas), sin límites de palabra.
func ScriptedReply(input string, rc ReplyContext) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return fill(defaultTemplate, rc)
	}

	if rc.IsBirthdayToday && (strings.Contains(normalized, "birthday") || strings.Contains(normalized, "today")) {
		return "Happy birthday, " + rc.name() + "! You're the best! I'll never forget this day!"
	}

	for _, r := range rules {
		for _, p := range r.patterns {
			if strings.Contains(normalized, p) {
				return fill(r.template, rc)
			}
		}
	}
	return fill(defaultTemplate, rc)
}

// BirthdayReply es el saludo del dashboard: felicitación si es el cumpleaños, si no el "hello" de siempre.
func BirthdayReply(rc ReplyContext) string {
	if rc.IsBirthdayToday {
		return "Happy birthday, " + rc.name() + "! You're the best!"
	}
	return ScriptedReply("hello", rc)
}

func fill(template string, rc ReplyContext) string {
	birthday := fallbackBirthday
	if rc.BirthdayFormatted != nil && *rc.BirthdayFormatted != "" {
		birthday = *rc.BirthdayFormatted
	}
	return strings.NewReplacer(
		"{displayName}", rc.name(),
		"{birthday}", birthday,
	).Replace(template)
}

func (rc ReplyContext) name() string {
	if rc.DisplayName == "" {
		return fallbackName
	}
	return rc.DisplayName
}
