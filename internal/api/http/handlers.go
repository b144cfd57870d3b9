package http

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/m-zajac/ghcard/internal/app"
	"github.com/m-zajac/ghcard/internal/card"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
	Cached int    `json:"cached"`
}

// NewStatsHandler creates handlerfunc returning aggregated stats as json.
func NewStatsHandler(
	getLogin func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		login := getLogin(r)

		stats, err := service.Stats(r.Context(), login)
		if err != nil {
			status := errorStatus(err)
			if status == http.StatusInternalServerError {
				requestLogger(r, l).Errorf("fetching stats for %s: %v", login, err)
			}
			writeJSON(w, status, errorResponse{Error: errorMessage(err)})
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// NewCardHandler creates handlerfunc returning svg card.
// Failed requests get an error card, so embedding pages always receive an image.
func NewCardHandler(
	getLogin func(*http.Request) string,
	service Service,
	maxAge time.Duration,
	l logrus.FieldLogger,
) http.HandlerFunc {
	cacheControl := fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))

	return func(w http.ResponseWriter, r *http.Request) {
		login := getLogin(r)
		opts := getRenderOptions(r)

		svg, err := service.Card(r.Context(), login, opts)
		if err != nil {
			status := errorStatus(err)
			if status == http.StatusInternalServerError {
				requestLogger(r, l).Errorf("generating card for %s: %v", login, err)
			}

			w.Header().Set("Content-Type", "image/svg+xml")
			w.WriteHeader(status)
			_, _ = w.Write(card.RenderError(errorMessage(err)))
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", cacheControl)
		_, _ = w.Write(svg)
	}
}

// NewHealthHandler creates handlerfunc reporting service status and number of cached profiles.
func NewHealthHandler(cacheLen func() int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cached int
		if cacheLen != nil {
			cached = cacheLen()
		}

		writeJSON(w, http.StatusOK, healthResponse{
			Status: "ok",
			Cached: cached,
		})
	}
}

func getRenderOptions(r *http.Request) app.RenderOptions {
	return app.RenderOptions{
		ShowName:       getBoolParam(r, "show_name", true),
		ShowStats:      getBoolParam(r, "stats", true),
		ShowLanguages:  getBoolParam(r, "languages", true),
		ShowStreak:     getBoolParam(r, "streak", true),
		ShowActivity:   getBoolParam(r, "activity", true),
		IncludePrivate: getBoolParam(r, "include_private", false),
		FullWidth:      getBoolParam(r, "full_width", false),
		Accent:         r.URL.Query().Get("accent"),
	}
}

// getBoolParam reads flag from url query.
// Flags enabled by default are switched off only by "false", disabled ones are switched on only by "true".
func getBoolParam(r *http.Request, name string, defaultValue bool) bool {
	v := r.URL.Query().Get(name)
	if defaultValue {
		return v != "false"
	}
	return v == "true"
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}
