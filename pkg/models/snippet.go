package models

// CustomSnippet is a user-provided practice text
type CustomSnippet struct {
	ID            string   `json:"id" db:"id"`
	UserID        int64    `json:"userId" db:"user_id"`
	Name          string   `json:"name" db:"name"`
	Content       string   `json:"content" db:"content"`
	Language      *string  `json:"language" db:"language"`
	Mode          string   `json:"mode" db:"mode"`
	CreatedAt     string   `json:"createdAt" db:"created_at"`
	PracticeCount int64    `json:"practiceCount" db:"practice_count"`
	BestWpm       *float64 `json:"bestWpm" db:"best_wpm"`
	BestAccuracy  *float64 `json:"bestAccuracy" db:"best_accuracy"`
}
