package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordChatReply_BySource(t *testing.T) {
	aiBefore := testutil.ToFloat64(chatReplies.WithLabelValues("ai"))
	scriptedBefore := testutil.ToFloat64(chatReplies.WithLabelValues("scripted"))

	RecordChatReply("ai")
	RecordChatReply("scripted")
	RecordChatReply("scripted")

	assert.Equal(t, aiBefore+1, testutil.ToFloat64(chatReplies.WithLabelValues("ai")))
	assert.Equal(t, scriptedBefore+2, testutil.ToFloat64(chatReplies.WithLabelValues("scripted")))
}

func TestCounters(t *testing.T) {
	before := map[string]float64{
		"ai_failures":  testutil.ToFloat64(chatAIFailures),
		"rate_limited": testutil.ToFloat64(askRateLimited),
		"feed":         testutil.ToFloat64(petActions.WithLabelValues("feed")),
		"daily":        testutil.ToFloat64(dailyMessagesPicked),
	}

	RecordAIFailure()
	RecordRateLimited()
	RecordPetAction("feed")
	RecordDailyMessagePicked()

	assert.Equal(t, before["ai_failures"]+1, testutil.ToFloat64(chatAIFailures))
	assert.Equal(t, before["rate_limited"]+1, testutil.ToFloat64(askRateLimited))
	assert.Equal(t, before["feed"]+1, testutil.ToFloat64(petActions.WithLabelValues("feed")))
	assert.Equal(t, before["daily"]+1, testutil.ToFloat64(dailyMessagesPicked))
}
