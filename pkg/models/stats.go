package models

// UserStats holds a user's aggregate typing statistics
type UserStats struct {
	TotalPracticeTime      int64        `json:"totalPracticeTime" db:"total_practice_time"` // milliseconds
	TotalWordsTyped        int64        `json:"totalWordsTyped" db:"total_words_typed"`
	AverageWpm             float64      `json:"averageWpm" db:"average_wpm"`
	AverageAccuracy        float64      `json:"averageAccuracy" db:"average_accuracy"`
	AverageTrueAccuracy    float64      `json:"averageTrueAccuracy" db:"average_true_accuracy"`
	TotalKeystrokes        int64        `json:"totalKeystrokes" db:"total_keystrokes"`
	TotalBackspaces        int64        `json:"totalBackspaces" db:"total_backspaces"`
	TotalCorrectKeystrokes int64        `json:"totalCorrectKeystrokes" db:"total_correct_keystrokes"`
	LessonsCompleted       int64        `json:"lessonsCompleted" db:"lessons_completed"`
	CurrentStreak          int64        `json:"currentStreak" db:"current_streak"`
	LongestStreak          int64        `json:"longestStreak" db:"longest_streak"`
	LastPracticeDate       *string      `json:"lastPracticeDate" db:"last_practice_date"`
	ProblemKeys            []ProblemKey `json:"problemKeys" db:"-"`
}

// ProblemKey counts typing errors for a single key
type ProblemKey struct {
	KeyChar    string `json:"keyChar" db:"key_char"`
	ErrorCount int64  `json:"errorCount" db:"error_count"`
}
