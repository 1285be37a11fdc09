package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/typist/pkg/models"
)

func TestSettingsGetAbsentReturnsNil(t *testing.T) {
	db := openTestDB(t)
	createTestUser(t, db, 1)

	blob, err := NewSettingsRepository(db).Get(1)
	require.NoError(t, err)
	assert.Nil(t, blob)
}

func TestSettingsSaveOverwrites(t *testing.T) {
	db := openTestDB(t)
	createTestUser(t, db, 1)
	repo := NewSettingsRepository(db)

	require.NoError(t, repo.Save(1, `{"theme":"dark"}`))
	require.NoError(t, repo.Save(1, `{"theme":"light"}`))

	blob, err := repo.Get(1)
	require.NoError(t, err)
	require.NotNil(t, blob)
	assert.Equal(t, `{"theme":"light"}`, *blob)
}

func TestStatsGetAbsentReturnsNil(t *testing.T) {
	db := openTestDB(t)
	createTestUser(t, db, 1)

	stats, err := NewStatsRepository(db).Get(1)
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestStatsSaveRoundTrip(t *testing.T) {
	db := openTestDB(t)
	createTestUser(t, db, 1)
	repo := NewStatsRepository(db)

	in := &models.UserStats{
		TotalPracticeTime:      3600000,
		TotalWordsTyped:        1500,
		AverageWpm:             62.5,
		AverageAccuracy:        0.97,
		AverageTrueAccuracy:    0.95,
		TotalKeystrokes:        9000,
		TotalBackspaces:        120,
		TotalCorrectKeystrokes: 8700,
		LessonsCompleted:       4,
		CurrentStreak:          3,
		LongestStreak:          7,
		LastPracticeDate:       strPtr("2024-05-01"),
		ProblemKeys: []models.ProblemKey{
			{KeyChar: "z", ErrorCount: 9},
			{KeyChar: "q", ErrorCount: 4},
		},
	}
	require.NoError(t, repo.Save(1, in))

	out, err := repo.Get(1)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.AverageWpm, out.AverageWpm)
	assert.Equal(t, in.TotalPracticeTime, out.TotalPracticeTime)
	require.NotNil(t, out.LastPracticeDate)
	assert.Equal(t, "2024-05-01", *out.LastPracticeDate)
	require.Len(t, out.ProblemKeys, 2)
	assert.Equal(t, "z", out.ProblemKeys[0].KeyChar)
}

func TestStatsSaveReplacesProblemKeys(t *testing.T) {
	db := openTestDB(t)
	createTestUser(t, db, 1)
	repo := NewStatsRepository(db)

	require.NoError(t, repo.Save(1, &models.UserStats{
		ProblemKeys: []models.ProblemKey{
			{KeyChar: "a", ErrorCount: 1},
			{KeyChar: "b", ErrorCount: 2},
		},
	}))
	require.NoError(t, repo.Save(1, &models.UserStats{
		ProblemKeys: []models.ProblemKey{{KeyChar: "c", ErrorCount: 5}},
	}))

	out, err := repo.Get(1)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, out.ProblemKeys, 1)
	assert.Equal(t, "c", out.ProblemKeys[0].KeyChar)
}
