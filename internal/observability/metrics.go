package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	chatReplies = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "penguin",
		Subsystem: "chat",
		Name:      "replies_total",
		Help:      "Chat replies served, by source (ai or scripted).",
	}, []string{"source"})
	chatAIFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "penguin",
		Subsystem: "chat",
		Name:      "ai_failures_total",
		Help:      "AI completion attempts that fell back to a scripted reply.",
	})
	askRateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "penguin",
		Subsystem: "ask",
		Name:      "rate_limited_total",
		Help:      "Ask requests rejected by the per-user rate limiter.",
	})
	petActions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "penguin",
		Subsystem: "pet",
		Name:      "actions_total",
		Help:      "Care actions applied to pets, by action.",
	}, []string{"action"})
	dailyMessagesPicked = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "penguin",
		Subsystem: "profile",
		Name:      "daily_messages_picked_total",
		Help:      "Daily messages rotated because the cached one was stale.",
	})
)

func init() {
	prometheus.MustRegister(chatReplies, chatAIFailures, askRateLimited, petActions, dailyMessagesPicked)
}

// RecordChatReply cuenta una respuesta servida por source.
func RecordChatReply(source string) {
	chatReplies.WithLabelValues(source).Inc()
}

// RecordAIFailure cuenta un fallback desde la IA.
func RecordAIFailure() {
	chatAIFailures.Inc()
}

func RecordRateLimited() {
	askRateLimited.Inc()
}

func RecordPetAction(action string) {
	petActions.WithLabelValues(action).Inc()
}

func RecordDailyMessagePicked() {
	dailyMessagesPicked.Inc()
}
