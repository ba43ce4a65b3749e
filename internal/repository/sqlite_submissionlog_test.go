package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssamant/pathway/internal/testutil"
)

func TestSubmissionLogRepo_RecordAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubmissionLogRepo(db)
	ctx := context.Background()

	rec := &SubmissionRecord{
		Degree:      "Bachelors",
		Major:       "Computer Science",
		BudgetLakhs: 25,
		ResultShape: "buckets",
		OptionCount: 5,
		TopCountry:  "Germany",
	}
	require.NoError(t, repo.Record(ctx, rec))
	assert.NotEmpty(t, rec.ID, "Record assigns an id")
	assert.False(t, rec.SubmittedAt.IsZero())

	got, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
	assert.Equal(t, "Germany", got[0].TopCountry)
	assert.False(t, got[0].Failed)
}

func TestSubmissionLogRepo_ListRecent_OrderAndLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubmissionLogRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Record(ctx, &SubmissionRecord{
			SubmittedAt: base.Add(time.Duration(i) * time.Hour),
			Major:       "General",
			TopCountry:  []string{"Germany", "Ireland", "UK"}[i],
		}))
	}

	got, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "UK", got[0].TopCountry)
	assert.Equal(t, "Ireland", got[1].TopCountry)
}

func TestSubmissionLogRepo_FailedSubmission(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubmissionLogRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, &SubmissionRecord{
		Major:         "General",
		Failed:        true,
		FailureReason: "advisor unavailable",
	}))

	got, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Failed)
	assert.Equal(t, "advisor unavailable", got[0].FailureReason)
}

func TestSubmissionLogRepo_ListRecent_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubmissionLogRepo(db)

	got, err := repo.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}
