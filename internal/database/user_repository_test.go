package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/typist/pkg/models"
)

func strPtr(s string) *string { return &s }

func TestUserCreateAndGetAll(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&models.UserProfile{
		ID: 1, Name: "Ada", Avatar: "cat", CreatedAt: "2024-01-01T00:00:00Z",
	}))
	require.NoError(t, repo.Create(&models.UserProfile{
		ID: 2, Name: "Grace", Avatar: "owl", CreatedAt: "2024-02-01T00:00:00Z",
	}))

	users, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ada", users[0].Name)
	assert.Nil(t, users[0].LastActiveAt)
}

func TestUserCreateDuplicateIDFailsWithConstraint(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	createTestUser(t, db, 1)

	err := repo.Create(&models.UserProfile{
		ID: 1, Name: "Again", Avatar: "dog", CreatedAt: "2024-03-01T00:00:00Z",
	})
	require.Error(t, err)
	assert.True(t, IsConstraint(err))
}

func TestUserPartialUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	createTestUser(t, db, 1)

	require.NoError(t, repo.Update(1, models.UserUpdate{Name: strPtr("Renamed")}))

	users, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Renamed", users[0].Name)
	assert.Equal(t, "robot", users[0].Avatar)
	assert.Nil(t, users[0].LastActiveAt)

	require.NoError(t, repo.Update(1, models.UserUpdate{
		LastActiveAt: strPtr("2024-06-01T12:00:00Z"),
	}))
	users, err = repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "Renamed", users[0].Name)
	require.NotNil(t, users[0].LastActiveAt)
	assert.Equal(t, "2024-06-01T12:00:00Z", *users[0].LastActiveAt)
}

func TestUserUpdateWithNoFieldsIsNoOp(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	createTestUser(t, db, 1)

	require.NoError(t, repo.Update(1, models.UserUpdate{}))

	users, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "user-1", users[0].Name)
}

func TestUserDeleteCascadesToOwnedRows(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)

	require.NoError(t, NewSettingsRepository(db).Save(1, `{"theme":"dark"}`))
	require.NoError(t, NewSettingsRepository(db).Save(2, `{"theme":"light"}`))
	require.NoError(t, NewStatsRepository(db).Save(1, &models.UserStats{
		AverageWpm:  55,
		ProblemKeys: []models.ProblemKey{{KeyChar: "q", ErrorCount: 3}},
	}))
	require.NoError(t, NewLessonProgressRepository(db).SaveAll(1, []models.LessonProgress{
		{LessonID: "basics-1", TaskResultsJSON: "[]"},
	}))
	require.NoError(t, NewCourseProgressRepository(db).SaveAll(1, []models.CourseProgress{
		{CourseID: "touch-typing", EnrolledAt: "2024-01-02"},
	}))
	require.NoError(t, NewSnippetRepository(db).SaveAll(1, []models.CustomSnippet{
		{ID: "snip-1", Name: "hello", Content: "hello world", Mode: "code", CreatedAt: "2024-01-03"},
	}))
	require.NoError(t, NewActivityRepository(db).SaveAll(1, []models.DailyActivity{
		{Date: "2024-01-04", PracticeTime: 600000, Characters: 1200, Sessions: 2},
	}))

	require.NoError(t, users.Delete(1))

	for _, table := range []string{
		"settings", "user_stats", "problem_keys", "lesson_progress",
		"course_progress", "custom_snippets", "daily_activity",
	} {
		var n int
		require.NoError(t, db.get(&n, "SELECT COUNT(*) FROM "+table+" WHERE user_id = 1"))
		assert.Zero(t, n, "leftover rows in %s", table)
	}

	// The other user's rows survive
	blob, err := NewSettingsRepository(db).Get(2)
	require.NoError(t, err)
	require.NotNil(t, blob)
	assert.Equal(t, `{"theme":"light"}`, *blob)
}

func TestChildRowForMissingUserFailsWithConstraint(t *testing.T) {
	db := openTestDB(t)

	err := NewSettingsRepository(db).Save(99, `{}`)
	require.Error(t, err)
	assert.True(t, IsConstraint(err))
}
