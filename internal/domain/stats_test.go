package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailAt(ts string, correct bool) AnswerDetail {
	at, _ := time.Parse(time.RFC3339, ts)
	return AnswerDetail{QuestionID: ts, IsCorrect: correct, AnsweredAt: at}
}

func TestAggregateStats_Empty(t *testing.T) {
	rows := AggregateStats(nil)
	require.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestAggregateStats_BucketsByUTCDate(t *testing.T) {
	rows := AggregateStats([]AnswerDetail{
		detailAt("2024-03-01T23:59:00Z", true),
		detailAt("2024-03-02T00:01:00Z", false),
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-01", rows[0].Date)
	assert.Equal(t, "2024-03-02", rows[1].Date)
}

func TestAggregateStats_ConvertsOffsetsToUTC(t *testing.T) {
	rows := AggregateStats([]AnswerDetail{
		detailAt("2024-03-02T01:30:00+05:30", true),
	})
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-03-01", rows[0].Date)
}

func TestAggregateStats_SortsAscending(t *testing.T) {
	rows := AggregateStats([]AnswerDetail{
		detailAt("2024-03-02T08:00:00Z", true),
		detailAt("2024-03-01T08:00:00Z", false),
		detailAt("2024-03-02T09:00:00Z", false),
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-01", rows[0].Date)
	assert.Equal(t, "2024-03-02", rows[1].Date)
	assert.Equal(t, 2, rows[1].Total)
	assert.Equal(t, "2024-03-02T08:00:00Z", rows[1].Details[0].QuestionID)
}

func TestAggregateStats_CountsAndDeterminism(t *testing.T) {
	input := []AnswerDetail{
		detailAt("2024-03-01T08:00:00Z", true),
		detailAt("2024-03-01T09:00:00Z", false),
		detailAt("2024-03-01T10:00:00Z", true),
		detailAt("2024-03-03T10:00:00Z", false),
		detailAt("2024-03-05T10:00:00Z", true),
	}

	rows := AggregateStats(input)
	assert.Equal(t, rows, AggregateStats(input))

	total := 0
	for _, r := range rows {
		assert.Equal(t, r.Total, r.Correct+r.Wrong)
		assert.Len(t, r.Details, r.Total)
		total += r.Total
	}
	assert.Equal(t, len(input), total)

	assert.Equal(t, StatsRow{Date: "2024-03-01", Total: 3, Correct: 2, Wrong: 1, Details: input[:3]}, rows[0])
}

func TestOnlyWrong(t *testing.T) {
	out := OnlyWrong([]AnswerDetail{
		detailAt("2024-03-01T08:00:00Z", true),
		detailAt("2024-03-01T09:00:00Z", false),
	})
	require.Len(t, out, 1)
	assert.False(t, out[0].IsCorrect)

	rows := AggregateStats(out)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Correct)
	assert.Equal(t, 1, rows[0].Wrong)
}
