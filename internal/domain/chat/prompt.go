package chat

import "fmt"

// BuildSystemPrompt arma el prompt de sistema para el backend de IA.
func BuildSystemPrompt(rc ReplyContext) string {
	birthday := ""
	if rc.BirthdayFormatted != nil && *rc.BirthdayFormatted != "" {
		birthday = fmt.Sprintf("Their birthday is %s.", *rc.BirthdayFormatted)
	}
	today := ""
	if rc.IsBirthdayToday {
		today = " Today is their birthday - be extra celebratory!"
	}
	return fmt.Sprintf("You are a cute, friendly penguin digital pet. You are talking to %s. %s%s\n"+
		"Keep replies short (1-2 sentences). Be warm, use their name sometimes, and stay in character as a penguin. "+
		"Use simple language. No markdown or lists.", rc.name(), birthday, today)
}
