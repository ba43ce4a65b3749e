package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssamant/pathway/internal/advisor"
	"github.com/ssamant/pathway/internal/domain"
	"github.com/ssamant/pathway/internal/fixture"
	"github.com/ssamant/pathway/internal/repository"
	"github.com/ssamant/pathway/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB and a local fixture
// server for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	return testAppWith(t, fixture.NewHandler())
}

// testAppRanked serves the flat ranked shape instead of buckets.
func testAppRanked(t *testing.T) *App {
	t.Helper()
	inner := fixture.NewHandler()
	return testAppWith(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.RawQuery = "shape=ranked"
		inner.ServeHTTP(w, r)
	}))
}

func testAppWith(t *testing.T, handler http.Handler) *App {
	t.Helper()

	conn := testutil.NewTestDB(t)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := advisor.NewHTTPClient(advisor.Config{
		Endpoint:  srv.URL,
		TimeoutMs: 5000,
	}, nil)

	return &App{
		Advisor:       client,
		Profiles:      repository.NewSQLiteProfileRepo(conn),
		Submissions:   repository.NewSQLiteSubmissionLogRepo(conn),
		IsInteractive: func() bool { return true },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRecommendCmd_BucketsOutput(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "recommend", "--major", "Data Science", "--gpa", "8.5")
	require.NoError(t, err)

	assert.Contains(t, out, "SAFE BETS")
	assert.Contains(t, out, "FAST TRACK")
	assert.Contains(t, out, "MOONSHOTS")
	assert.Contains(t, out, "Germany")
	assert.Contains(t, out, "USA")
	assert.Contains(t, out, "pathways evaluated")
}

func TestRecommendCmd_RankedOutput(t *testing.T) {
	app := testAppRanked(t)

	out, err := executeCmd(t, app, "recommend", "--major", "CS", "--gpa", "9")
	require.NoError(t, err)

	assert.Contains(t, out, "★ BEST MATCH")
	assert.Contains(t, out, "Germany")
	assert.NotContains(t, out, "SAFE BETS")
}

func TestRecommendCmd_JSONOutput(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "recommend", "--major", "CS", "--gpa", "9", "--json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "success", doc["status"])
	assert.Contains(t, doc, "strategies")
}

func TestRecommendCmd_CountryFilter(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "recommend",
		"--major", "CS", "--gpa", "9", "--country", "Ireland")
	require.NoError(t, err)

	assert.Contains(t, out, "Ireland")
	assert.NotContains(t, out, "Germany")
}

func TestRecommendCmd_MissingMajorFails(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "recommend", "--gpa", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestRecommendCmd_SavesProfileAndLogs(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "recommend", "--major", "Data Science", "--gpa", "8.5")
	require.NoError(t, err)

	ctx := context.Background()
	draft, err := app.Profiles.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Data Science", draft.Major)
	assert.Equal(t, "8.5", draft.GPA)

	records, err := app.Submissions.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Failed)
	assert.Equal(t, "buckets", records[0].ResultShape)
	assert.Equal(t, 5, records[0].OptionCount)
}

func TestRecommendCmd_ServiceFailureLogged(t *testing.T) {
	app := testAppWith(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := executeCmd(t, app, "recommend", "--major", "CS", "--gpa", "9")
	require.Error(t, err)

	records, err := app.Submissions.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Failed)
	assert.NotEmpty(t, records[0].FailureReason)
}

func TestProfileCmd_ShowEmpty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved profile")
}

func TestProfileCmd_ShowAfterSave(t *testing.T) {
	app := testApp(t)

	draft := domain.DefaultDraft().
		WithDegree(domain.DegreeMasters).
		WithGPA("8.5").
		WithMajor("Data Science").
		WithBudget(4_000_000)
	require.NoError(t, app.Profiles.Save(context.Background(), draft))

	out, err := executeCmd(t, app, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Masters")
	assert.Contains(t, out, "Data Science")
	assert.Contains(t, out, "8.5")
	assert.Contains(t, out, "40 Lakhs")
}

func TestProfileCmd_Reset(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	require.NoError(t, app.Profiles.Save(ctx, domain.DefaultDraft().WithMajor("CS")))

	out, err := executeCmd(t, app, "profile", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Profile reset")

	_, err = app.Profiles.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHistoryCmd_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No submissions yet")
}

func TestHistoryCmd_ListsRuns(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "recommend", "--major", "CS", "--gpa", "9")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "CS")
	assert.Contains(t, out, "5 options")
	assert.Contains(t, out, "top:")
}

func TestRootCmd_NonInteractiveRefusesTUI(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	_, err := executeCmd(t, app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a terminal")
}
