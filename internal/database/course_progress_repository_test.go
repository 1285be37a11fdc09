package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/typist/pkg/models"
)

func TestCourseProgressSaveAllAndDeletes(t *testing.T) {
	db := openTestDB(t)
	createTestUser(t, db, 1)
	repo := NewCourseProgressRepository(db)

	require.NoError(t, repo.SaveAll(1, []models.CourseProgress{
		{CourseID: "touch-typing", CurrentStageID: strPtr("stage-2"), EnrolledAt: "2024-01-10"},
		{CourseID: "numbers", EnrolledAt: "2024-02-10", CompletedAt: strPtr("2024-03-01")},
	}))

	items, err := repo.GetAllForUser(1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "numbers", items[0].CourseID)
	require.NotNil(t, items[0].CompletedAt)

	require.NoError(t, repo.Delete(1, "numbers"))
	items, err = repo.GetAllForUser(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "touch-typing", items[0].CourseID)

	require.NoError(t, repo.DeleteAllForUser(1))
	items, err = repo.GetAllForUser(1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCourseProgressStageJSONDefaults(t *testing.T) {
	db := openTestDB(t)
	createTestUser(t, db, 1)
	repo := NewCourseProgressRepository(db)

	require.NoError(t, repo.SaveAll(1, []models.CourseProgress{
		{CourseID: "c", EnrolledAt: "2024-01-01", CompletedStagesJSON: `["s1"]`, SkippedStagesJSON: "[]"},
	}))

	items, err := repo.GetAllForUser(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, `["s1"]`, items[0].CompletedStagesJSON)
	assert.Equal(t, "[]", items[0].SkippedStagesJSON)
	assert.Nil(t, items[0].CurrentStageID)
}
