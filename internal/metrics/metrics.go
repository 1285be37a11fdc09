// Package metrics computes typing metrics for completed tasks. It is pure:
// the storage layer stores its output verbatim and never recomputes it.
package metrics

import (
	"math"
	"sort"

	"github.com/example/typist/pkg/models"
)

// PassingAccuracy is the default accuracy threshold for passing a task.
const PassingAccuracy = 0.85

// KeyError is one mistyped character observed during a task.
type KeyError struct {
	Index    int
	Expected string
	Typed    string
}

// CalculateResult computes the metrics for one completed task. Durations
// are milliseconds; one word is the standard five characters.
func CalculateResult(taskID, targetText string, startTime, endTime int64, errors []KeyError) models.TaskResult {
	duration := endTime - startTime
	minutes := float64(duration) / 60000.0

	totalChars := len([]rune(targetText))
	wordCount := float64(totalChars) / 5.0
	errorCount := len(errors)

	var rawWpm, wpm float64
	if minutes > 0 {
		rawWpm = wordCount / minutes
		wpm = math.Max(wordCount-float64(errorCount), 0) / minutes
	}

	accuracy := 1.0
	if totalChars > 0 {
		accuracy = math.Max(float64(totalChars-errorCount)/float64(totalChars), 0)
	}

	infos := make([]models.ErrorInfo, 0, len(errors))
	for _, e := range errors {
		infos = append(infos, models.ErrorInfo{
			Index:    e.Index,
			Expected: e.Expected,
			Typed:    e.Typed,
		})
	}

	accuracy = roundTo(accuracy, 3)
	return models.TaskResult{
		TaskID:      taskID,
		Wpm:         roundTo(wpm, 1),
		RawWpm:      roundTo(rawWpm, 1),
		Accuracy:    accuracy,
		Errors:      infos,
		Duration:    duration,
		CompletedAt: endTime,
		Passed:      accuracy >= PassingAccuracy,
	}
}

// CalculateWpm computes words per minute from a character count.
func CalculateWpm(charCount int, durationMs int64) float64 {
	minutes := float64(durationMs) / 60000.0
	if minutes <= 0 {
		return 0
	}
	return roundTo(float64(charCount)/5.0/minutes, 1)
}

// CalculateAccuracy computes the correct-to-total character ratio.
func CalculateAccuracy(correct, total int) float64 {
	if total <= 0 {
		return 1.0
	}
	return roundTo(float64(correct)/float64(total), 3)
}

// AnalyzeProblemKeys counts errors per expected key, most frequent first.
func AnalyzeProblemKeys(errors []models.ErrorInfo) []models.ProblemKey {
	counts := make(map[string]int64)
	for _, e := range errors {
		counts[e.Expected]++
	}
	keys := make([]models.ProblemKey, 0, len(counts))
	for ch, n := range counts {
		keys = append(keys, models.ProblemKey{KeyChar: ch, ErrorCount: n})
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ErrorCount != keys[j].ErrorCount {
			return keys[i].ErrorCount > keys[j].ErrorCount
		}
		return keys[i].KeyChar < keys[j].KeyChar
	})
	return keys
}

func roundTo(value float64, decimals int) float64 {
	multiplier := math.Pow(10, float64(decimals))
	return math.Round(value*multiplier) / multiplier
}
