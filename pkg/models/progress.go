package models

// LessonProgress tracks a user's progress within one lesson
type LessonProgress struct {
	LessonID        string  `json:"lessonId" db:"lesson_id"`
	CompletedTasks  int64   `json:"completedTasks" db:"completed_tasks"`
	TotalTasks      int64   `json:"totalTasks" db:"total_tasks"`
	BestWpm         float64 `json:"bestWpm" db:"best_wpm"`
	AverageAccuracy float64 `json:"averageAccuracy" db:"average_accuracy"`
	LastTaskIndex   *int64  `json:"lastTaskIndex" db:"last_task_index"`
	TaskResultsJSON string  `json:"taskResultsJson" db:"task_results_json"` // JSON array of TaskResult
}

// CourseProgress tracks a user's position within one course
type CourseProgress struct {
	CourseID            string  `json:"courseId" db:"course_id"`
	CurrentStageID      *string `json:"currentStageId" db:"current_stage_id"`
	CompletedStagesJSON string  `json:"completedStagesJson" db:"completed_stages_json"`
	SkippedStagesJSON   string  `json:"skippedStagesJson" db:"skipped_stages_json"`
	EnrolledAt          string  `json:"enrolledAt" db:"enrolled_at"`
	CompletedAt         *string `json:"completedAt" db:"completed_at"`
}
