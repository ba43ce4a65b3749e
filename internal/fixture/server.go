package fixture

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ssamant/pathway/internal/contract"
)

// NewHandler returns the fixture server's HTTP handler. It speaks the
// advisor's wire contract: POST /api/recommend with a profile body,
// responding with the bucketed shape by default or the flat ranked shape
// when ?shape=ranked is given.
func NewHandler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)
	r.Post("/api/recommend", handleRecommend)

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req contract.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Major == "" {
		httpError(w, http.StatusBadRequest, "major is required")
		return
	}

	options := selectOptions(req.Countries)

	w.Header().Set("Content-Type", "application/json")
	if r.URL.Query().Get("shape") == "ranked" {
		json.NewEncoder(w).Encode(rankedResponse(options))
		return
	}
	json.NewEncoder(w).Encode(bucketsResponse(options))
}

// selectOptions filters the catalog down to the requested countries, or
// returns everything when no preference was sent.
func selectOptions(countries []string) []contract.PathwayOption {
	if len(countries) == 0 {
		return Options
	}
	wanted := make(map[string]bool, len(countries))
	for _, c := range countries {
		wanted[c] = true
	}
	var out []contract.PathwayOption
	for _, o := range Options {
		if wanted[o.Country] {
			out = append(out, o)
		}
	}
	return out
}

func bucketsResponse(options []contract.PathwayOption) map[string]any {
	buckets := contract.Buckets{
		SafeBets:  []contract.PathwayOption{},
		FastTrack: []contract.PathwayOption{},
		Moonshots: []contract.PathwayOption{},
	}
	for _, o := range options {
		switch bucketOf[o.Country] {
		case "safe_bets":
			buckets.SafeBets = append(buckets.SafeBets, o)
		case "fast_track":
			buckets.FastTrack = append(buckets.FastTrack, o)
		case "moonshots":
			buckets.Moonshots = append(buckets.Moonshots, o)
		}
	}
	sortByScore(buckets.SafeBets)
	sortByScore(buckets.FastTrack)
	sortByScore(buckets.Moonshots)

	return map[string]any{
		"status":          "success",
		"strategies":      buckets,
		"consultant_note": consultantNote,
		"risk_advisory":   riskAdvisory,
		"meta": contract.Meta{
			TotalOptions:  len(options),
			SafeCount:     len(buckets.SafeBets),
			FastCount:     len(buckets.FastTrack),
			MoonshotCount: len(buckets.Moonshots),
		},
	}
}

func rankedResponse(options []contract.PathwayOption) map[string]any {
	ranked := append([]contract.PathwayOption(nil), options...)
	sortByScore(ranked)
	if ranked == nil {
		ranked = []contract.PathwayOption{}
	}
	return map[string]any{
		"status":          "success",
		"recommendations": ranked,
		"consultant_note": consultantNote,
	}
}

func sortByScore(opts []contract.PathwayOption) {
	sort.SliceStable(opts, func(i, j int) bool {
		return opts[i].MatchScore > opts[j].MatchScore
	})
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": msg})
}
