package legacy

import (
	"github.com/tidwall/gjson"

	"github.com/example/typist/pkg/models"
)

// Legacy blobs are untrusted and heterogeneous: fields may be missing,
// null, or of the wrong type. Every extraction here defaults independently
// (zero/empty/absent) so one bad field never loses the rest of a record.
// gjson.Result returns zero values for missing and mistyped lookups, which
// is exactly that contract.

// optString returns a pointer to the field's string value, or nil when the
// field is missing or not a string.
func optString(v gjson.Result, key string) *string {
	f := v.Get(key)
	if f.Type != gjson.String {
		return nil
	}
	s := f.String()
	return &s
}

// optInt returns a pointer to the field's integer value, or nil when the
// field is missing or not numeric.
func optInt(v gjson.Result, key string) *int64 {
	f := v.Get(key)
	if f.Type != gjson.Number {
		return nil
	}
	n := f.Int()
	return &n
}

// optFloat returns a pointer to the field's numeric value, or nil when the
// field is missing or not numeric.
func optFloat(v gjson.Result, key string) *float64 {
	f := v.Get(key)
	if f.Type != gjson.Number {
		return nil
	}
	n := f.Float()
	return &n
}

// rawArray returns the field's raw JSON when it is an array, else fallback.
func rawArray(v gjson.Result, key, fallback string) string {
	f := v.Get(key)
	if f.IsArray() {
		return f.Raw
	}
	return fallback
}

// parseStats extracts a stats record from a legacy blob. The problemKeys
// field is an array of [keyChar, errorCount] pairs; malformed pairs are
// dropped individually.
func parseStats(v gjson.Result) models.UserStats {
	stats := models.UserStats{
		TotalPracticeTime:      v.Get("totalPracticeTime").Int(),
		TotalWordsTyped:        v.Get("totalWordsTyped").Int(),
		AverageWpm:             v.Get("averageWpm").Float(),
		AverageAccuracy:        v.Get("averageAccuracy").Float(),
		AverageTrueAccuracy:    v.Get("averageTrueAccuracy").Float(),
		TotalKeystrokes:        v.Get("totalKeystrokes").Int(),
		TotalBackspaces:        v.Get("totalBackspaces").Int(),
		TotalCorrectKeystrokes: v.Get("totalCorrectKeystrokes").Int(),
		LessonsCompleted:       v.Get("lessonsCompleted").Int(),
		CurrentStreak:          v.Get("currentStreak").Int(),
		LongestStreak:          v.Get("longestStreak").Int(),
		LastPracticeDate:       optString(v, "lastPracticeDate"),
	}
	for _, pair := range v.Get("problemKeys").Array() {
		elems := pair.Array()
		if len(elems) != 2 || elems[0].Type != gjson.String {
			continue
		}
		stats.ProblemKeys = append(stats.ProblemKeys, models.ProblemKey{
			KeyChar:    elems[0].String(),
			ErrorCount: elems[1].Int(),
		})
	}
	return stats
}

// parseLessonProgress extracts one lesson entry. lessonID is the key of the
// legacy progress map; v is the nested object stored under it.
func parseLessonProgress(lessonID string, v gjson.Result) models.LessonProgress {
	return models.LessonProgress{
		LessonID:        lessonID,
		CompletedTasks:  v.Get("completedTasks").Int(),
		TotalTasks:      v.Get("totalTasks").Int(),
		BestWpm:         v.Get("bestWpm").Float(),
		AverageAccuracy: v.Get("averageAccuracy").Float(),
		LastTaskIndex:   optInt(v, "lastTaskIndex"),
		TaskResultsJSON: rawArray(v, "taskResults", "[]"),
	}
}

// parseCourseProgress extracts one course entry keyed by courseID.
func parseCourseProgress(courseID string, v gjson.Result) models.CourseProgress {
	return models.CourseProgress{
		CourseID:            courseID,
		CurrentStageID:      optString(v, "currentStageId"),
		CompletedStagesJSON: rawArray(v, "completedStages", "[]"),
		SkippedStagesJSON:   rawArray(v, "skippedStages", "[]"),
		EnrolledAt:          v.Get("enrolledAt").String(),
		CompletedAt:         optString(v, "completedAt"),
	}
}

// parseSnippet extracts one snippet from a legacy snippets array element.
func parseSnippet(v gjson.Result) models.CustomSnippet {
	return models.CustomSnippet{
		ID:            v.Get("id").String(),
		Name:          v.Get("name").String(),
		Content:       v.Get("content").String(),
		Language:      optString(v, "language"),
		Mode:          v.Get("mode").String(),
		CreatedAt:     v.Get("createdAt").String(),
		PracticeCount: v.Get("practiceCount").Int(),
		BestWpm:       optFloat(v, "bestWpm"),
		BestAccuracy:  optFloat(v, "bestAccuracy"),
	}
}

// parseActivity extracts one activity entry keyed by date.
func parseActivity(date string, v gjson.Result) models.DailyActivity {
	return models.DailyActivity{
		Date:         date,
		PracticeTime: v.Get("practiceTime").Int(),
		Characters:   v.Get("characters").Int(),
		Sessions:     v.Get("sessions").Int(),
	}
}
