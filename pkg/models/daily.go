package models

// DailyTestResult is a user's best daily typing test for one date
type DailyTestResult struct {
	UserID       int64   `json:"userId" db:"user_id"`
	Date         string  `json:"date" db:"date"`
	Wpm          float64 `json:"wpm" db:"wpm"`
	Accuracy     float64 `json:"accuracy" db:"accuracy"`
	TrueAccuracy float64 `json:"trueAccuracy" db:"true_accuracy"`
	Duration     int64   `json:"duration" db:"duration"` // milliseconds
	CompletedAt  int64   `json:"completedAt" db:"completed_at"`
}

// DailyActivity aggregates one user's practice for one date
type DailyActivity struct {
	Date         string `json:"date" db:"date"`
	PracticeTime int64  `json:"practiceTime" db:"practice_time"` // milliseconds
	Characters   int64  `json:"characters" db:"characters"`
	Sessions     int64  `json:"sessions" db:"sessions"`
}
