package fixture

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssamant/pathway/internal/contract"
)

func postRecommend(t *testing.T, srv *httptest.Server, path, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, respBody
}

const validBody = `{"degree":"Bachelors","gpa":8.5,"major":"Computer Science","budget":25,"priority":"High ROI","funding_source":"Self"}`

func TestServer_RecommendBuckets(t *testing.T) {
	srv := httptest.NewServer(NewHandler())
	defer srv.Close()

	resp, body := postRecommend(t, srv, "/api/recommend", validBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rs, err := contract.DecodeRecommendResponse(body)
	require.NoError(t, err)
	assert.Equal(t, contract.ShapeBuckets, rs.Shape)
	assert.Equal(t, len(Options), rs.Len())
	require.NotNil(t, rs.Meta)
	assert.Equal(t, len(Options), rs.Meta.TotalOptions)
	assert.NotEmpty(t, rs.ConsultantNote)

	// buckets come back ordered by score
	require.Len(t, rs.Buckets.SafeBets, 2)
	assert.Equal(t, "Germany", rs.Buckets.SafeBets[0].Key())
	assert.Equal(t, "Australia", rs.Buckets.SafeBets[1].Key())
}

func TestServer_RecommendRanked(t *testing.T) {
	srv := httptest.NewServer(NewHandler())
	defer srv.Close()

	resp, body := postRecommend(t, srv, "/api/recommend?shape=ranked", validBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rs, err := contract.DecodeRecommendResponse(body)
	require.NoError(t, err)
	assert.Equal(t, contract.ShapeRanked, rs.Shape)
	require.Equal(t, len(Options), len(rs.Ranked))
	assert.Equal(t, "Germany", rs.Ranked[0].Key(), "highest score first")
}

func TestServer_RecommendFiltersByCountries(t *testing.T) {
	srv := httptest.NewServer(NewHandler())
	defer srv.Close()

	body := `{"degree":"Bachelors","gpa":8.5,"major":"CS","budget":25,"priority":"High ROI","funding_source":"Self","countries":["Ireland","USA"]}`
	resp, raw := postRecommend(t, srv, "/api/recommend", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rs, err := contract.DecodeRecommendResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, 2, rs.Len())
	assert.Empty(t, rs.Buckets.SafeBets)
	require.Len(t, rs.Buckets.FastTrack, 1)
	assert.Equal(t, "Ireland", rs.Buckets.FastTrack[0].Key())
}

func TestServer_RecommendEmptyBucketStillPresent(t *testing.T) {
	srv := httptest.NewServer(NewHandler())
	defer srv.Close()

	body := `{"degree":"Bachelors","gpa":8.5,"major":"CS","budget":25,"priority":"High ROI","funding_source":"Self","countries":["Germany"]}`
	_, raw := postRecommend(t, srv, "/api/recommend", body)

	assert.Contains(t, string(raw), `"fast_track":[]`)
	assert.Contains(t, string(raw), `"moonshots":[]`)
}

func TestServer_RecommendRejectsMissingMajor(t *testing.T) {
	srv := httptest.NewServer(NewHandler())
	defer srv.Close()

	resp, raw := postRecommend(t, srv, "/api/recommend", `{"degree":"Bachelors","gpa":8.5,"budget":25}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, err := contract.DecodeRecommendResponse(raw)
	assert.ErrorIs(t, err, contract.ErrBadStatus)
}

func TestServer_RecommendRejectsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(NewHandler())
	defer srv.Close()

	resp, _ := postRecommend(t, srv, "/api/recommend", `{"gpa":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Health(t *testing.T) {
	srv := httptest.NewServer(NewHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
