package legacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParseStatsDefaultsEveryFieldIndependently(t *testing.T) {
	stats := parseStats(gjson.Parse(`{"averageWpm":42}`))
	assert.Equal(t, 42.0, stats.AverageWpm)
	assert.Zero(t, stats.TotalPracticeTime)
	assert.Zero(t, stats.AverageAccuracy)
	assert.Nil(t, stats.LastPracticeDate)
	assert.Empty(t, stats.ProblemKeys)
}

func TestParseStatsDropsMalformedProblemKeyPairs(t *testing.T) {
	stats := parseStats(gjson.Parse(`{"problemKeys":[["q",3],["only-one"],[1,2],["z","9"]]}`))
	require.Len(t, stats.ProblemKeys, 2)
	assert.Equal(t, "q", stats.ProblemKeys[0].KeyChar)
	assert.EqualValues(t, 3, stats.ProblemKeys[0].ErrorCount)
	// "9" as a string count still parses; gjson coerces numeric strings
	assert.Equal(t, "z", stats.ProblemKeys[1].KeyChar)
	assert.EqualValues(t, 9, stats.ProblemKeys[1].ErrorCount)
}

func TestParseLessonProgressKeepsRawTaskResults(t *testing.T) {
	v := gjson.Parse(`{"completedTasks":2,"lastTaskIndex":4,"taskResults":[{"taskId":"t1","wpm":55}]}`)
	item := parseLessonProgress("basics-1", v)
	assert.Equal(t, "basics-1", item.LessonID)
	assert.EqualValues(t, 2, item.CompletedTasks)
	require.NotNil(t, item.LastTaskIndex)
	assert.EqualValues(t, 4, *item.LastTaskIndex)
	assert.Equal(t, `[{"taskId":"t1","wpm":55}]`, item.TaskResultsJSON)
}

func TestParseLessonProgressDefaultsTaskResults(t *testing.T) {
	item := parseLessonProgress("basics-1", gjson.Parse(`{"taskResults":"oops"}`))
	assert.Equal(t, "[]", item.TaskResultsJSON)
	assert.Nil(t, item.LastTaskIndex)
}

func TestParseCourseProgressOptionalFields(t *testing.T) {
	item := parseCourseProgress("c1", gjson.Parse(`{"enrolledAt":"2024-01-01","completedStages":["a","b"]}`))
	assert.Equal(t, "c1", item.CourseID)
	assert.Nil(t, item.CurrentStageID)
	assert.Nil(t, item.CompletedAt)
	assert.Equal(t, `["a","b"]`, item.CompletedStagesJSON)
	assert.Equal(t, "[]", item.SkippedStagesJSON)
}

func TestParseActivityDefaults(t *testing.T) {
	item := parseActivity("2024-05-01", gjson.Parse(`{"practiceTime":1000}`))
	assert.Equal(t, "2024-05-01", item.Date)
	assert.EqualValues(t, 1000, item.PracticeTime)
	assert.Zero(t, item.Characters)
	assert.Zero(t, item.Sessions)
}
