package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/ghcard/internal/api/http/mock"
	"github.com/m-zajac/ghcard/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func TestNewStatsHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		setupMock       func(*mock.MockService)
		wantStatus      int
		wantBody        string
		wantContentType string
	}{
		{
			name: "valid response",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Stats(gomock.Any(), "octocat").
					Return(&app.AggregatedStats{Login: "octocat", Name: "The Octocat", TotalStars: 5}, nil)
			},
			wantStatus:      http.StatusOK,
			wantBody:        `"login":"octocat","name":"The Octocat"`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "bad request",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Stats(gomock.Any(), "octocat").
					Return(nil, app.InvalidRequestError("invalid username"))
			},
			wantStatus:      http.StatusBadRequest,
			wantBody:        `{"error":"Invalid username"}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "not found",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Stats(gomock.Any(), "octocat").
					Return(nil, app.NotFoundError("user octocat not found"))
			},
			wantStatus:      http.StatusNotFound,
			wantBody:        `{"error":"User not found"}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "upstream rate limit",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Stats(gomock.Any(), "octocat").
					Return(nil, app.TooManyRequestsError("rate limited"))
			},
			wantStatus:      http.StatusTooManyRequests,
			wantBody:        `{"error":"GitHub API rate limit exceeded, please try again later."}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "service error",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Stats(gomock.Any(), "octocat").
					Return(nil, errors.New("token secret leaked"))
			},
			wantStatus:      http.StatusInternalServerError,
			wantBody:        `{"error":"Failed to load GitHub stats"}`,
			wantContentType: "application/json; charset=utf-8",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			tt.setupMock(s)

			handler := NewStatsHandler(
				func(*http.Request) string {
					return "octocat"
				},
				s,
				newTestLogger(),
			)
			req := httptest.NewRequest(http.MethodGet, "/api/stats/octocat", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantContentType, w.Header().Get("Content-type"))
			assert.Contains(t, strings.Trim(w.Body.String(), "\n"), tt.wantBody)
		})
	}
}

func TestNewCardHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		url              string
		setupMock        func(*mock.MockService)
		wantStatus       int
		wantBody         string
		wantCacheControl string
	}{
		{
			name: "default options",
			url:  "/api/card/octocat",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Card(gomock.Any(), "octocat", app.RenderOptions{
						ShowName:      true,
						ShowStats:     true,
						ShowLanguages: true,
						ShowStreak:    true,
						ShowActivity:  true,
					}).
					Return([]byte("<svg/>"), nil)
			},
			wantStatus:       http.StatusOK,
			wantBody:         "<svg/>",
			wantCacheControl: "public, max-age=600",
		},
		{
			name: "options from url query",
			url:  "/api/card/octocat?stats=false&languages=0&streak=false&activity=false&show_name=false&include_private=true&full_width=true&accent=ff0000",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Card(gomock.Any(), "octocat", app.RenderOptions{
						ShowLanguages:  true,
						IncludePrivate: true,
						FullWidth:      true,
						Accent:         "ff0000",
					}).
					Return([]byte("<svg/>"), nil)
			},
			wantStatus:       http.StatusOK,
			wantBody:         "<svg/>",
			wantCacheControl: "public, max-age=600",
		},
		{
			name: "flags enabled only by exact true",
			url:  "/api/card/octocat?include_private=1&full_width=yes",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Card(gomock.Any(), "octocat", app.RenderOptions{
						ShowName:      true,
						ShowStats:     true,
						ShowLanguages: true,
						ShowStreak:    true,
						ShowActivity:  true,
					}).
					Return([]byte("<svg/>"), nil)
			},
			wantStatus:       http.StatusOK,
			wantBody:         "<svg/>",
			wantCacheControl: "public, max-age=600",
		},
		{
			name: "not found renders error card",
			url:  "/api/card/octocat",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Card(gomock.Any(), "octocat", gomock.Any()).
					Return(nil, app.NotFoundError("not found"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   ">User not found</text>",
		},
		{
			name: "service error renders error card",
			url:  "/api/card/octocat",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Card(gomock.Any(), "octocat", gomock.Any()).
					Return(nil, errors.New("error"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   ">Failed to load GitHub stats</text>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			tt.setupMock(s)

			handler := NewCardHandler(
				func(*http.Request) string {
					return "octocat"
				},
				s,
				10*time.Minute,
				newTestLogger(),
			)
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantCacheControl, w.Header().Get("Cache-Control"))
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestNewHealthHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cacheLen func() int
		wantBody string
	}{
		{
			name:     "cached profiles",
			cacheLen: func() int { return 3 },
			wantBody: `{"status":"ok","cached":3}`,
		},
		{
			name:     "no cache",
			wantBody: `{"status":"ok","cached":0}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			w := httptest.NewRecorder()

			NewHealthHandler(tt.cacheLen)(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
