package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssamant/pathway/internal/domain"
	"github.com/ssamant/pathway/internal/testutil"
)

func TestProfileRepo_Get_EmptyDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_SaveAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	draft := domain.DefaultDraft().
		WithDegree(domain.DegreeMasters).
		WithGPA("8.5").
		WithMajor("Data Science").
		WithBudget(4_000_000).
		WithFunding(domain.FundingLoan).
		ToggleCountry("Germany").
		ToggleCountry("Ireland")

	require.NoError(t, repo.Save(ctx, draft))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, draft, got)
}

func TestProfileRepo_SaveIsUpsert(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.DefaultDraft().WithMajor("Physics")))
	require.NoError(t, repo.Save(ctx, domain.DefaultDraft().WithMajor("Chemistry")))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Chemistry", got.Major)
}

func TestProfileRepo_EmptyCountriesRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.DefaultDraft()))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got.PreferredCountries)
}

func TestProfileRepo_Reset(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.DefaultDraft().WithMajor("Law")))
	require.NoError(t, repo.Reset(ctx))

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	// resetting an already-empty table is fine
	assert.NoError(t, repo.Reset(ctx))
}
