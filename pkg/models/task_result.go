package models

// ErrorInfo records a single mistyped character within a task
type ErrorInfo struct {
	Index     int    `json:"index"`
	Expected  string `json:"expected"`
	Typed     string `json:"typed"`
	Timestamp int64  `json:"timestamp"`
}

// TaskResult holds the computed metrics for one completed typing task.
// The storage layer stores these verbatim inside LessonProgress.TaskResultsJSON.
type TaskResult struct {
	TaskID      string      `json:"taskId"`
	Wpm         float64     `json:"wpm"`
	RawWpm      float64     `json:"rawWpm"`
	Accuracy    float64     `json:"accuracy"`
	Errors      []ErrorInfo `json:"errors"`
	Duration    int64       `json:"duration"` // milliseconds
	CompletedAt int64       `json:"completedAt"`
	Passed      bool        `json:"passed"`
}
